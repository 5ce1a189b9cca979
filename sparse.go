package glyphterm

import "github.com/gogpu/glyphterm/surface"

// Sparse is a terminal of freely placed glyphs. Each FreeCell is drawn as
// a rotated sprite around its cell center; entries later in the list draw
// over earlier ones. The size only bounds the offscreen surface, not the
// number of entries.
//
// Example:
//
//	fx := glyphterm.NewSparse("8x16", 80, 25)
//	fx.Add(glyphterm.FreeCell{Glyph: '*', Foreground: glyphterm.Yellow, X: 10.5, Y: 3, Angle: 45})
//	if err := fx.Render(window); err != nil {
//	    return err
//	}
type Sparse struct {
	base

	cells []FreeCell

	// rebuilds counts full redraws of the offscreen surface.
	rebuilds int
}

// NewSparse creates an empty w×h sparse terminal drawing glyphs from the
// font registered under fontTag.
func NewSparse(fontTag string, w, h int, opts ...Option) *Sparse {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Sparse{base: newBase(fontTag, o)}
	s.ResizeChars(w, h)
	return s
}

// ResizePixels resizes the terminal to the number of whole cells that fit
// in pxW×pxH pixels at the presentation scale.
func (s *Sparse) ResizePixels(pxW, pxH int) error {
	w, h, err := s.cellCounts(pxW, pxH)
	if err != nil {
		return err
	}
	s.ResizeChars(w, h)
	return nil
}

// ResizeChars sets the size to w×h cells and removes all entries.
func (s *Sparse) ResizeChars(w, h int) {
	s.dirty = true
	s.width, s.height = max(w, 0), max(h, 0)
	s.cells = nil
	s.laidOut = false

	Logger().Debug("sparse terminal resized", "font", s.fontTag, "width", s.width, "height", s.height)

	if f, err := s.resolveFont(); err == nil {
		if err := s.createBacking(f); err != nil {
			Logger().Warn("sparse layout deferred", "font", s.fontTag, "err", err)
		}
	}
}

// Add appends c, drawing it over every existing entry.
func (s *Sparse) Add(c FreeCell) {
	s.dirty = true
	s.cells = append(s.cells, c)
}

// SetCells replaces all entries with a copy of cells.
func (s *Sparse) SetCells(cells []FreeCell) {
	s.dirty = true
	s.cells = append(s.cells[:0:0], cells...)
}

// Cells returns the entries in drawing order. The slice is owned by the
// terminal and must not be modified.
func (s *Sparse) Cells() []FreeCell {
	return s.cells
}

// Len returns the number of entries.
func (s *Sparse) Len() int {
	return len(s.cells)
}

// Clear removes all entries.
func (s *Sparse) Clear() {
	s.dirty = true
	s.cells = s.cells[:0]
}

// Render composites the terminal onto dst. If the terminal is dirty the
// offscreen surface is cleared and every entry redrawn first; otherwise
// the previous image is reused.
func (s *Sparse) Render(dst surface.Target) error {
	if !s.pres.Visible {
		return nil
	}

	s.invalidate()
	if s.dirty {
		f, tex, err := s.resolve()
		if err != nil {
			return s.fail("sparse", err)
		}
		if s.needsLayout(f) {
			if err := s.createBacking(f); err != nil {
				return s.fail("sparse", err)
			}
		}
		s.redraw(f, tex)
	}

	s.composite(dst)
	s.dirty = false
	return nil
}

func (s *Sparse) redraw(f Font, tex *surface.Texture) {
	s.rebuilds++

	cw, ch := float64(f.CellWidth), float64(f.CellHeight)
	origin := surface.Pt(cw/2, ch/2)
	solid := GlyphRect(SolidGlyph, f.CellWidth, f.CellHeight)

	s.clearBacking()
	for _, c := range s.cells {
		pos := surface.Pt(c.X*cw+cw/2, c.Y*ch+ch/2)

		if c.HasBackground {
			s.backing.DrawSprite(surface.Sprite{
				Texture:  tex,
				Src:      solid,
				Origin:   origin,
				Position: pos,
				Rotation: c.Angle,
				Color:    c.Background.WithAlpha(255),
			})
		}
		s.backing.DrawSprite(surface.Sprite{
			Texture:  tex,
			Src:      GlyphRect(c.Glyph, f.CellWidth, f.CellHeight),
			Origin:   origin,
			Position: pos,
			Rotation: c.Angle,
			Color:    c.Foreground.WithAlpha(255),
		})
	}
	s.backing.Display()
}

var _ Terminal = (*Sparse)(nil)
