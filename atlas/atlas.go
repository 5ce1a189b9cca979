// Package atlas builds CP437 glyph atlases for glyphterm terminals.
//
// An atlas is a 16×16 grid of fixed-size cells, one per CP437 code, drawn
// in opaque white on a transparent background so that terminals can tint
// glyphs with any foreground color. Box drawing, block and shade glyphs are
// drawn geometrically so that they join seamlessly across cells whatever
// the font; everything else is taken from a font.Face.
//
// Example:
//
//	res := glyphterm.DefaultResources()
//	if err := res.LoadAtlas("8x16", atlas.Basic(), atlas.BasicCellWidth, atlas.BasicCellHeight); err != nil {
//	    return err
//	}
package atlas

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphterm"
)

// Cell size of the Basic atlas.
const (
	BasicCellWidth  = 8
	BasicCellHeight = 16
)

// ErrInvalidCellSize is returned for non-positive cell dimensions.
var ErrInvalidCellSize = errors.New("atlas: invalid cell size")

// Build renders all 256 CP437 glyphs of face into a new atlas with cells of
// cw×ch pixels. Glyphs are centered horizontally and share a baseline that
// centers the face's line height in the cell. Glyphs larger than the cell
// are clipped. Codes whose character the face lacks get whatever the face
// draws instead, usually its replacement glyph, or stay empty.
func Build(face font.Face, cw, ch int) (*image.NRGBA, error) {
	if cw <= 0 || ch <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidCellSize, cw, ch)
	}

	img := image.NewNRGBA(image.Rect(0, 0, glyphterm.GlyphsPerRow*cw, 256/glyphterm.GlyphsPerRow*ch))

	m := face.Metrics()
	baseline := (ch-m.Height.Ceil())/2 + m.Ascent.Ceil()

	missing := 0
	for code := 0; code < 256; code++ {
		g := uint8(code)
		cell := glyphterm.GlyphRect(g, cw, ch)
		if drawShape(img, cell, g) {
			continue
		}
		if !drawGlyph(img, cell, face, glyphterm.GlyphRune(g), baseline) {
			missing++
		}
	}

	glyphterm.Logger().Debug("atlas built", "cell_width", cw, "cell_height", ch, "missing", missing)
	return img, nil
}

// drawGlyph draws r from face into cell. It reports false if the face has
// no glyph for r.
func drawGlyph(dst *image.NRGBA, cell image.Rectangle, face font.Face, r rune, baseline int) bool {
	if r == ' ' || r == '\u00a0' {
		return true
	}

	adv, ok := face.GlyphAdvance(r)
	if !ok {
		return false
	}
	x := cell.Min.X + (cell.Dx()-adv.Round())/2
	dot := fixed.P(x, cell.Min.Y+baseline)

	dr, mask, maskp, _, ok := face.Glyph(dot, r)
	if !ok {
		return false
	}
	clipped := dr.Intersect(cell)
	if clipped.Empty() {
		return true
	}
	maskp = maskp.Add(clipped.Min.Sub(dr.Min))
	xdraw.DrawMask(dst, clipped, image.NewUniform(color.White), image.Point{}, mask, maskp, xdraw.Over)
	return true
}

// Basic returns an 8×16 atlas drawn from the 7×13 face bundled with
// golang.org/x/image. It covers ASCII and the geometric CP437 glyphs,
// which is enough for text, boxes and backgrounds.
func Basic() *image.NRGBA {
	img, err := Build(basicfont.Face7x13, BasicCellWidth, BasicCellHeight)
	if err != nil {
		// The basic cell size is valid.
		panic(err)
	}
	return img
}

// FromTTF parses a TrueType or OpenType font and builds an atlas with cells
// of cw×ch pixels from it at the given size in points (72 DPI, so one point
// is one pixel).
func FromTTF(data []byte, size float64, cw, ch int) (*image.NRGBA, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("atlas: failed to parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("atlas: failed to create font face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	return Build(face, cw, ch)
}
