package glyphterm

// Cell is one character position of a Dense terminal.
type Cell struct {
	// Glyph is a CP437 code, used directly as the atlas index.
	Glyph uint8

	Foreground Color
	Background Color
}

// DefaultCell is what Clear fills a terminal with: a white space on black.
var DefaultCell = Cell{Glyph: ' ', Foreground: White, Background: Black}

// FreeCell is one entry of a Sparse terminal. Unlike Cell it is placed at a
// continuous position and may be rotated.
type FreeCell struct {
	Glyph      uint8
	Foreground Color
	Background Color

	// HasBackground controls whether a background quad is drawn under
	// the glyph. A black background is drawn when set.
	HasBackground bool

	// X and Y are measured in cells; fractional values place the glyph
	// between grid positions.
	X, Y float64

	// Angle is the rotation around the cell center in degrees, clockwise.
	Angle float64
}
