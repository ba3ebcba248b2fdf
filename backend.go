package radar

import "io"

// Backend is the drawing surface a Plan is replayed onto. Backends own
// their output: Begin discards anything drawn before, so each update fully
// replaces the previous picture.
//
// Backends are created via NewBackend(name) and registered with Register
// in their init functions:
//
//	func init() {
//	    radar.Register("svg", func() radar.Backend {
//	        return NewBackend()
//	    })
//	}
type Backend interface {
	// Begin clears prior output and prepares a surface of the given size.
	Begin(width, height float64) error

	// End finalizes the output. Output methods such as WriteTo are valid
	// only after End.
	End() error

	DrawRing(cmd RingCommand)
	DrawBullet(cmd BulletCommand)
	DrawSpoke(cmd SpokeCommand)
	DrawLabel(cmd LabelCommand)
	DrawSeries(cmd SeriesCommand)
	DrawIcon(cmd IconCommand)
}

// WriterBackend extends Backend with the ability to write the rendered
// output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content. Call it only after End.
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content. Call it only after End.
	SaveToFile(path string) error
}
