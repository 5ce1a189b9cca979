package glyphterm

import "github.com/gogpu/glyphterm/surface"

// Presentation controls how a terminal's finished image is composited onto
// its destination. It never affects cell contents, and changing it does not
// mark a terminal dirty.
type Presentation struct {
	// OffsetX and OffsetY translate the terminal image, in destination pixels.
	OffsetX, OffsetY int

	// Scale is the uniform scale factor of the composite. It is also the
	// display scale used by ResizePixels. Non-positive values mean 1.
	Scale float64

	// Tint multiplies the terminal image.
	Tint Color

	// Alpha multiplies the terminal image alpha. Dense terminals also use
	// it as the background alpha when rebuilding.
	Alpha uint8

	// Visible terminals are drawn; invisible ones make Render a no-op.
	Visible bool
}

// DefaultPresentation returns an untransformed, fully opaque, visible
// presentation.
func DefaultPresentation() Presentation {
	return Presentation{
		Scale:   1,
		Tint:    White,
		Alpha:   255,
		Visible: true,
	}
}

func (p Presentation) scale() float64 {
	if p.Scale <= 0 {
		return 1
	}
	return p.Scale
}

// sprite returns the compositor sprite that draws tex with this presentation.
func (p Presentation) sprite(tex *surface.Texture) surface.Sprite {
	s := p.scale()
	return surface.Sprite{
		Texture:  tex,
		Position: surface.Pt(float64(p.OffsetX), float64(p.OffsetY)),
		Scale:    surface.Pt(s, s),
		Color:    p.Tint.WithAlpha(p.Alpha),
	}
}
