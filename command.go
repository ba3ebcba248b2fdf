package radar

// CommandType identifies the kind of a drawing command.
type CommandType uint8

const (
	CmdRing   CommandType = iota // Unfilled grid polygon
	CmdBullet                    // Filled circle on an outer vertex
	CmdSpoke                     // Line from the center to an outer vertex
	CmdLabel                     // Text label
	CmdSeries                    // Filled series polygon
	CmdIcon                      // Icon image
)

var commandTypeNames = [...]string{
	CmdRing:   "Ring",
	CmdBullet: "Bullet",
	CmdSpoke:  "Spoke",
	CmdLabel:  "Label",
	CmdSeries: "Series",
	CmdIcon:   "Icon",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is implemented by every drawing command. Commands are plain
// values; a backend translates them into its output format.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// RingCommand strokes a closed grid polygon without fill.
type RingCommand struct {
	Level       int
	Points      []Point
	Stroke      Color
	StrokeWidth float64
}

// Type implements Command.
func (RingCommand) Type() CommandType { return CmdRing }

// BulletCommand fills a small circle.
type BulletCommand struct {
	Center Point
	Radius float64
	Fill   Color
}

// Type implements Command.
func (BulletCommand) Type() CommandType { return CmdBullet }

// SpokeCommand strokes a straight line.
type SpokeCommand struct {
	From, To    Point
	Stroke      Color
	StrokeWidth float64
}

// Type implements Command.
func (SpokeCommand) Type() CommandType { return CmdSpoke }

// LabelCommand draws text whose baseline anchor is Pos shifted by DX.
type LabelCommand struct {
	Kind   LabelKind
	Pos    Point
	DX     float64
	Text   string
	Fill   Color
	Anchor Anchor
}

// Type implements Command.
func (LabelCommand) Type() CommandType { return CmdLabel }

// SeriesCommand fills and strokes a series polygon.
type SeriesCommand struct {
	Name        string
	Role        Role
	Points      []Point
	Stroke      Color
	StrokeWidth float64
	Fill        Color
	FillOpacity float64
}

// Type implements Command.
func (SeriesCommand) Type() CommandType { return CmdSeries }

// IconCommand draws the icon registered under Icon into the rectangle
// at Pos (top-left) with the given size.
type IconCommand struct {
	Layer         string
	Index         int
	Icon          string
	Pos           Point
	Width, Height float64
}

// Type implements Command.
func (IconCommand) Type() CommandType { return CmdIcon }
