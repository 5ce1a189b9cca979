package glyphterm

import "image"

const (
	// GlyphsPerRow is the number of glyph columns in a font atlas.
	// An atlas holding all 256 codes is GlyphsPerRow cells wide and
	// 256/GlyphsPerRow cells tall.
	GlyphsPerRow = 16

	// SolidGlyph is the CP437 full block. Background quads sample it so
	// that the background color fills the whole cell.
	SolidGlyph uint8 = 219
)

// GlyphOrigin returns the top-left pixel of glyph g in an atlas with
// cells of cw×ch pixels.
func GlyphOrigin(g uint8, cw, ch int) image.Point {
	return image.Point{
		X: int(g%GlyphsPerRow) * cw,
		Y: int(g/GlyphsPerRow) * ch,
	}
}

// GlyphRect returns the atlas rectangle of glyph g.
func GlyphRect(g uint8, cw, ch int) image.Rectangle {
	o := GlyphOrigin(g, cw, ch)
	return image.Rect(o.X, o.Y, o.X+cw, o.Y+ch)
}
