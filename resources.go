package glyphterm

import (
	"fmt"
	"image"
	"sync"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/glyphterm/surface"
)

// Font describes a fixed-cell glyph atlas.
type Font struct {
	// CellWidth and CellHeight are the glyph cell size in atlas pixels.
	CellWidth, CellHeight int

	// TextureTag names the atlas texture in the texture registry.
	TextureTag string
}

func (f Font) valid() bool {
	return f.CellWidth > 0 && f.CellHeight > 0 && f.TextureTag != ""
}

// FontRegistry resolves font tags.
//
// A registry may also implement
//
//	Generation() uint64
//
// Terminals drop their cached font whenever the returned value changes.
type FontRegistry interface {
	Font(tag string) (Font, bool)
}

// TextureRegistry resolves texture tags. Like FontRegistry it may report a
// Generation to invalidate cached textures.
type TextureRegistry interface {
	Texture(tag string) (*surface.Texture, bool)
}

// generationer is the optional invalidation hook of the registries.
type generationer interface {
	Generation() uint64
}

// Resources is an in-memory FontRegistry and TextureRegistry.
//
// Resources is safe for concurrent use. Every change bumps the generation,
// so terminals using it pick up replaced fonts and textures on their next
// render.
type Resources struct {
	mu         sync.RWMutex
	fonts      map[string]Font
	textures   map[string]*surface.Texture
	generation uint64
}

// NewResources creates an empty registry.
func NewResources() *Resources {
	return &Resources{
		fonts:    make(map[string]Font),
		textures: make(map[string]*surface.Texture),
	}
}

var defaultResources = NewResources()

// DefaultResources returns the registry terminals use unless configured
// otherwise with WithResources, WithFonts or WithTextures.
func DefaultResources() *Resources {
	return defaultResources
}

// LoadFont registers f under tag, replacing any previous font.
func (r *Resources) LoadFont(tag string, f Font) error {
	if !f.valid() {
		return fmt.Errorf("%w: %q cell %dx%d texture %q", ErrInvalidFont, tag, f.CellWidth, f.CellHeight, f.TextureTag)
	}

	r.mu.Lock()
	r.fonts[tag] = f
	r.generation++
	r.mu.Unlock()

	Logger().Debug("font loaded", "tag", tag, "cell_width", f.CellWidth, "cell_height", f.CellHeight)
	return nil
}

// LoadTexture copies img into a texture registered under tag.
func (r *Resources) LoadTexture(tag string, img image.Image) (*surface.Texture, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	tex := surface.NewTexture(img)

	r.mu.Lock()
	r.textures[tag] = tex
	r.generation++
	r.mu.Unlock()

	Logger().Debug("texture loaded", "tag", tag, "width", tex.Width(), "height", tex.Height())
	return tex, nil
}

// LoadAtlas registers img as a 16×16 glyph atlas with cells of cw×ch pixels.
// Both the texture and the font are registered under tag. An image of any
// other size is rescaled with nearest-neighbor sampling so that glyph edges
// stay crisp.
func (r *Resources) LoadAtlas(tag string, img image.Image, cw, ch int) error {
	if img == nil {
		return ErrNilImage
	}
	f := Font{CellWidth: cw, CellHeight: ch, TextureTag: tag}
	if !f.valid() {
		return fmt.Errorf("%w: %q cell %dx%d", ErrInvalidFont, tag, cw, ch)
	}

	want := image.Rect(0, 0, GlyphsPerRow*cw, 256/GlyphsPerRow*ch)
	if img.Bounds().Size() != want.Size() {
		scaled := image.NewNRGBA(want)
		xdraw.NearestNeighbor.Scale(scaled, want, img, img.Bounds(), xdraw.Src, nil)
		img = scaled
	}

	if _, err := r.LoadTexture(tag, img); err != nil {
		return err
	}
	return r.LoadFont(tag, f)
}

// Font implements FontRegistry.
func (r *Resources) Font(tag string) (Font, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.fonts[tag]
	return f, ok
}

// Texture implements TextureRegistry.
func (r *Resources) Texture(tag string) (*surface.Texture, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.textures[tag]
	return t, ok
}

// RemoveFont unregisters the font under tag.
func (r *Resources) RemoveFont(tag string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.fonts[tag]; ok {
		delete(r.fonts, tag)
		r.generation++
	}
}

// RemoveTexture unregisters the texture under tag.
func (r *Resources) RemoveTexture(tag string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.textures[tag]; ok {
		delete(r.textures, tag)
		r.generation++
	}
}

// Generation returns a counter that changes whenever the registry does.
func (r *Resources) Generation() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.generation
}
