// Package text draws and measures chart labels.
//
// The pipeline follows a separation of concerns:
//
//   - Source: heavyweight parsed font, shared across faces
//   - Face: lightweight font instance at a specific size
//
// Glyph outlines are rasterized with golang.org/x/image/font. Label widths,
// needed to center text on its anchor point, come from HarfBuzz shaping
// via go-text/typesetting so kerning is taken into account. Bidirectional
// runs are reordered with golang.org/x/text/unicode/bidi before drawing.
//
// # Example usage
//
//	src, err := text.DefaultSource()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	face, err := src.Face(12)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer face.Close()
//
//	w := face.Measure("Torino")
//	face.Draw(img, "Torino", x-w/2, y, color.Black)
package text
