package glyphterm

import (
	"image/color"

	"github.com/gogpu/glyphterm/surface"
)

// Dense is a rectangular grid terminal. Cells are stored row-major and
// rendered as one batch of textured quads: when backgrounds are enabled,
// one background quad per cell sampling SolidGlyph, followed by one glyph
// quad per cell.
//
// Quad positions depend only on the size and font, so they are laid out
// once per resize. A render after any mutation refreshes colors and glyph
// texture coordinates for every cell and redraws the offscreen surface.
//
// Example:
//
//	term := glyphterm.NewDense("8x16", 80, 25)
//	term.Clear()
//	term.Box(0, 0, 79, 24, glyphterm.White, glyphterm.Black, true)
//	term.PrintCenter(12, "Hello", glyphterm.Yellow, glyphterm.Black)
//	if err := term.Render(window); err != nil {
//	    return err
//	}
type Dense struct {
	base

	background bool

	// buffer holds width*(height+1) cells; only the first width*height
	// are rendered.
	buffer   []Cell
	vertices []surface.Vertex

	// rebuilds counts full vertex refreshes.
	rebuilds int
}

// NewDense creates a w×h terminal drawing glyphs from the font registered
// under fontTag. The font does not need to be loaded yet; it is resolved
// on first render.
func NewDense(fontTag string, w, h int, opts ...Option) *Dense {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := &Dense{
		base:       newBase(fontTag, o),
		background: o.background,
	}
	d.ResizeChars(w, h)
	return d
}

// HasBackground reports whether cell backgrounds are drawn.
func (d *Dense) HasBackground() bool {
	return d.background
}

// ResizePixels resizes the terminal to the number of whole cells that fit
// in pxW×pxH pixels at the presentation scale.
func (d *Dense) ResizePixels(pxW, pxH int) error {
	w, h, err := d.cellCounts(pxW, pxH)
	if err != nil {
		return err
	}
	d.ResizeChars(w, h)
	return nil
}

// ResizeChars sets the size to w×h cells. Contents are discarded and every
// cell is reset to DefaultCell.
func (d *Dense) ResizeChars(w, h int) {
	w, h = max(w, 0), max(h, 0)

	d.dirty = true
	d.width, d.height = w, h
	d.buffer = make([]Cell, w*(h+1))
	for i := range d.buffer {
		d.buffer[i] = DefaultCell
	}

	n := w * h * 4
	if d.background {
		n *= 2
	}
	d.vertices = make([]surface.Vertex, n)
	d.laidOut = false

	Logger().Debug("dense terminal resized", "font", d.fontTag, "width", w, "height", h)

	// Geometry needs the cell size. Without a font it is built by the
	// first render that can resolve one.
	if f, err := d.resolveFont(); err == nil {
		if err := d.layout(f); err != nil {
			Logger().Warn("dense layout deferred", "font", d.fontTag, "err", err)
		}
	}
}

// layout recreates the offscreen surface and precomputes quad positions
// and the background texture coordinates.
func (d *Dense) layout(f Font) error {
	if err := d.createBacking(f); err != nil {
		return err
	}

	cw, ch := f.CellWidth, f.CellHeight
	n := d.width * d.height
	fg := 0
	if d.background {
		fg = n * 4
	}

	solid := GlyphRect(SolidGlyph, cw, ch)
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			idx := (y*d.width + x) * 4
			x0, y0 := float64(x*cw), float64(y*ch)
			x1, y1 := float64((x+1)*cw), float64((y+1)*ch)

			setQuadPositions(d.vertices[fg+idx:fg+idx+4], x0, y0, x1, y1)
			if d.background {
				q := d.vertices[idx : idx+4]
				setQuadPositions(q, x0, y0, x1, y1)
				setQuadTexCoords(q, solid.Min.X, solid.Min.Y, solid.Max.X, solid.Max.Y)
			}
		}
	}

	Logger().Debug("dense layout built", "font", d.fontTag, "cells", n, "vertices", len(d.vertices))
	return nil
}

// Clear resets every cell to DefaultCell.
func (d *Dense) Clear() {
	d.ClearWith(DefaultCell)
}

// ClearWith sets every cell to c.
func (d *Dense) ClearWith(c Cell) {
	d.dirty = true
	for i := range d.buffer {
		d.buffer[i] = c
	}
}

// At returns the buffer index of cell (x, y). It does not check bounds;
// an x outside the row addresses a cell on another row.
func (d *Dense) At(x, y int) int {
	return y*d.width + x
}

// SetChar writes c at buffer index idx. Indices outside the buffer are
// ignored. The terminal is marked dirty either way.
func (d *Dense) SetChar(idx int, c Cell) {
	d.dirty = true
	if idx < 0 || idx >= len(d.buffer) {
		return
	}
	d.buffer[idx] = c
}

// SetCharAt writes c at cell (x, y).
func (d *Dense) SetCharAt(x, y int, c Cell) {
	d.SetChar(d.At(x, y), c)
}

// Cell returns the cell at buffer index idx.
func (d *Dense) Cell(idx int) (Cell, bool) {
	if idx < 0 || idx >= len(d.buffer) {
		return Cell{}, false
	}
	return d.buffer[idx], true
}

// Len returns the buffer length, width*(height+1).
func (d *Dense) Len() int {
	return len(d.buffer)
}

// Vertices returns the quad batch as of the last render. The slice is
// owned by the terminal and must not be modified.
func (d *Dense) Vertices() []surface.Vertex {
	return d.vertices
}

// Render composites the terminal onto dst. If the terminal is dirty the
// quad batch is refreshed from the cells and redrawn first. A failed
// render leaves the cells and the dirty flag untouched.
func (d *Dense) Render(dst surface.Target) error {
	if !d.pres.Visible {
		return nil
	}

	d.invalidate()
	if d.dirty {
		f, tex, err := d.resolve()
		if err != nil {
			return d.fail("dense", err)
		}
		if d.needsLayout(f) {
			if err := d.layout(f); err != nil {
				return d.fail("dense", err)
			}
		}
		d.rebuild(f, tex)
	}

	d.composite(dst)
	d.dirty = false
	return nil
}

// rebuild refreshes colors and glyph texture coordinates for every visible
// cell and redraws the offscreen surface.
func (d *Dense) rebuild(f Font, tex *surface.Texture) {
	d.rebuilds++

	cw, ch := f.CellWidth, f.CellHeight
	n := d.width * d.height
	fg := 0
	if d.background {
		fg = n * 4
	}

	for idx := 0; idx < n; idx++ {
		c := d.buffer[idx]

		if d.background {
			q := d.vertices[idx*4 : idx*4+4]
			setQuadColor(q, c.Background.WithAlpha(d.backgroundAlpha(c.Background)))
		}

		r := GlyphRect(c.Glyph, cw, ch)
		q := d.vertices[fg+idx*4 : fg+idx*4+4]
		setQuadTexCoords(q, r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
		setQuadColor(q, c.Foreground.WithAlpha(255))
	}

	d.clearBacking()
	d.backing.DrawQuads(d.vertices, tex)
	d.backing.Display()
}

// backgroundAlpha is transparent for black backgrounds so that unset
// cells do not cover what is behind the terminal.
func (d *Dense) backgroundAlpha(bg Color) uint8 {
	if d.pres.Alpha == 0 || bg.IsBlack() {
		return 0
	}
	return d.pres.Alpha
}

// Quads are wound top-left, top-right, bottom-right, bottom-left.

func setQuadPositions(q []surface.Vertex, x0, y0, x1, y1 float64) {
	q[0].Position = surface.Pt(x0, y0)
	q[1].Position = surface.Pt(x1, y0)
	q[2].Position = surface.Pt(x1, y1)
	q[3].Position = surface.Pt(x0, y1)
}

func setQuadTexCoords(q []surface.Vertex, u0, v0, u1, v1 int) {
	q[0].TexCoords = surface.Pt(float64(u0), float64(v0))
	q[1].TexCoords = surface.Pt(float64(u1), float64(v0))
	q[2].TexCoords = surface.Pt(float64(u1), float64(v1))
	q[3].TexCoords = surface.Pt(float64(u0), float64(v1))
}

func setQuadColor(q []surface.Vertex, c color.NRGBA) {
	for i := range q {
		q[i].Color = c
	}
}

var _ Terminal = (*Dense)(nil)
