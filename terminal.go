package glyphterm

import (
	"fmt"
	"image/color"

	"github.com/gogpu/glyphterm/surface"
)

// Terminal is a character display that can be resized, mutated and
// rendered. Dense and Sparse implement it with different cell storage.
//
// Terminals are NOT thread-safe. Mutation and Render are expected to run
// on the goroutine that owns the destination surface.
type Terminal interface {
	// ResizePixels sizes the terminal to fit a pxW×pxH pixel area at the
	// current presentation scale. It fails when the font is unknown.
	ResizePixels(pxW, pxH int) error

	// ResizeChars sets the size in cells, discarding all contents.
	ResizeChars(w, h int)

	// Size returns the size in cells.
	Size() (w, h int)

	// Clear resets the contents.
	Clear()

	// Dirty reports whether the next Render rebuilds the image.
	Dirty() bool

	// Render composites the terminal onto dst, rebuilding its image first
	// if anything changed since the last successful render.
	Render(dst surface.Target) error

	Presentation() Presentation
	SetPresentation(p Presentation)

	// Close releases the offscreen surface.
	Close() error
}

// base holds what both terminal kinds share: sizing, the font handles
// resolved from the registries, the offscreen surface and the compositor.
type base struct {
	fontTag  string
	fonts    FontRegistry
	textures TextureRegistry
	factory  surface.SurfaceFactory
	pres     Presentation

	width, height int
	dirty         bool

	// Cached, non-owning registry handles. font is valid when hasFont.
	font     Font
	hasFont  bool
	tex      *surface.Texture
	fontGen  uint64
	texGen   uint64
	gensSeen bool

	// backing is the offscreen surface. layoutFont records the cell size it
	// and any derived geometry were built for.
	backing    surface.Surface
	laidOut    bool
	layoutFont Font
}

func newBase(fontTag string, o options) base {
	return base{
		fontTag:  fontTag,
		fonts:    o.fonts,
		textures: o.textures,
		factory:  o.factory,
		pres:     o.presentation,
		dirty:    true,
	}
}

// FontTag returns the tag the terminal resolves its font with.
func (b *base) FontTag() string {
	return b.fontTag
}

// Size returns the size in cells.
func (b *base) Size() (w, h int) {
	return b.width, b.height
}

// Dirty reports whether the next Render rebuilds the image.
func (b *base) Dirty() bool {
	return b.dirty
}

// Presentation returns the current presentation.
func (b *base) Presentation() Presentation {
	return b.pres
}

// SetPresentation replaces the presentation. It takes effect at the next
// Render and does not mark the terminal dirty.
func (b *base) SetPresentation(p Presentation) {
	b.pres = p
}

// Close releases the offscreen surface. The terminal may still be used;
// the next render recreates the surface.
func (b *base) Close() error {
	if b.backing == nil {
		return nil
	}
	err := b.backing.Close()
	b.backing = nil
	b.laidOut = false
	b.dirty = true
	return err
}

// invalidate drops cached handles when a registry reports a new
// generation. It marks the terminal dirty so the image is rebuilt with
// whatever the registries hold now.
func (b *base) invalidate() {
	fg, fok := generationOf(b.fonts)
	tg, tok := generationOf(b.textures)
	if !fok && !tok {
		return
	}
	if b.gensSeen && fg == b.fontGen && tg == b.texGen {
		return
	}
	if b.gensSeen && (b.hasFont || b.tex != nil) {
		Logger().Debug("registry changed, dropping cached font", "font", b.fontTag)
		b.dirty = true
	}
	b.fontGen, b.texGen, b.gensSeen = fg, tg, true
	b.hasFont = false
	b.tex = nil
}

func generationOf(r any) (uint64, bool) {
	if g, ok := r.(generationer); ok {
		return g.Generation(), true
	}
	return 0, false
}

// resolveFont returns the cached font, looking it up on first use.
func (b *base) resolveFont() (Font, error) {
	b.invalidate()
	if b.hasFont {
		return b.font, nil
	}

	f, ok := b.fonts.Font(b.fontTag)
	if !ok || !f.valid() {
		return Font{}, &FontNotLoadedError{Tag: b.fontTag}
	}
	b.font, b.hasFont = f, true
	Logger().Debug("font resolved", "font", b.fontTag, "cell_width", f.CellWidth, "cell_height", f.CellHeight)
	return f, nil
}

// resolve returns the font and its atlas texture.
func (b *base) resolve() (Font, *surface.Texture, error) {
	f, err := b.resolveFont()
	if err != nil {
		return Font{}, nil, err
	}
	if b.tex == nil {
		tex, ok := b.textures.Texture(f.TextureTag)
		if !ok || tex == nil {
			return Font{}, nil, &TextureNotLoadedError{Tag: f.TextureTag}
		}
		b.tex = tex
	}
	return f, b.tex, nil
}

// cellCounts converts a pixel area into cells of the resolved font at the
// presentation scale.
func (b *base) cellCounts(pxW, pxH int) (w, h int, err error) {
	f, err := b.resolveFont()
	if err != nil {
		return 0, 0, err
	}
	s := b.pres.scale()
	w = int(float64(pxW) / (float64(f.CellWidth) * s))
	h = int(float64(pxH) / (float64(f.CellHeight) * s))
	return max(w, 0), max(h, 0), nil
}

// needsLayout reports whether the offscreen surface is missing or was
// built for another cell size.
func (b *base) needsLayout(f Font) bool {
	return !b.laidOut || b.backing == nil ||
		b.layoutFont.CellWidth != f.CellWidth || b.layoutFont.CellHeight != f.CellHeight
}

// createBacking replaces the offscreen surface with one of width*cw ×
// height*ch pixels.
func (b *base) createBacking(f Font) error {
	opts := surface.DefaultOptions(b.width*f.CellWidth, b.height*f.CellHeight)

	var (
		s   surface.Surface
		err error
	)
	if b.factory != nil {
		s, err = b.factory(opts)
	} else {
		s, err = surface.NewSurfaceWithOptions(opts)
	}
	if err != nil {
		return fmt.Errorf("glyphterm: create offscreen surface: %w", err)
	}

	if b.backing != nil {
		if cerr := b.backing.Close(); cerr != nil {
			Logger().Warn("close offscreen surface", "err", cerr)
		}
	}
	b.backing = s
	b.layoutFont = f
	b.laidOut = true
	return nil
}

// fail logs a render failure and returns err unchanged.
func (b *base) fail(kind string, err error) error {
	Logger().Warn("render failed", "terminal", kind, "font", b.fontTag, "err", err)
	return err
}

// composite draws the published offscreen surface onto dst with the
// presentation transform.
func (b *base) composite(dst surface.Target) {
	if b.backing == nil || dst == nil {
		return
	}
	dst.DrawSprite(b.pres.sprite(b.backing.Texture()))
}

// clearBacking clears the offscreen surface to transparent.
func (b *base) clearBacking() {
	b.backing.Clear(color.Transparent)
}
