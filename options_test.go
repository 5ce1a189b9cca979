package glyphterm

import (
	"testing"

	"github.com/gogpu/glyphterm/surface"
)

// TestDefaultOptions tests the defaults a terminal is created with.
func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()

	if !o.background {
		t.Error("background = false, want true")
	}
	if o.fonts != FontRegistry(DefaultResources()) || o.textures != TextureRegistry(DefaultResources()) {
		t.Error("registries are not DefaultResources()")
	}
	if o.factory != nil {
		t.Error("factory is set, want registry selection")
	}
	if o.presentation != DefaultPresentation() {
		t.Errorf("presentation = %+v, want %+v", o.presentation, DefaultPresentation())
	}
}

// TestOptionsNilRegistries tests that nil registries keep the defaults.
func TestOptionsNilRegistries(t *testing.T) {
	o := defaultOptions()
	WithFonts(nil)(&o)
	WithTextures(nil)(&o)
	WithResources(nil)(&o)

	if o.fonts == nil || o.textures == nil {
		t.Error("nil registry option replaced the default")
	}
}

// TestWithSurfaceFactory tests dependency injection of the offscreen surface.
func TestWithSurfaceFactory(t *testing.T) {
	var got []surface.Options
	factory := func(opts surface.Options) (surface.Surface, error) {
		got = append(got, opts)
		return surface.NewImageSurface(opts.Width, opts.Height), nil
	}

	d := NewDense(testFont, 5, 3, WithResources(testResources(t)), WithSurfaceFactory(factory))
	d.ResizeChars(7, 2)

	if len(got) != 2 {
		t.Fatalf("factory called %d times, want 2", len(got))
	}
	if got[1].Width != 7*testCW || got[1].Height != 2*testCH {
		t.Errorf("offscreen size = %dx%d, want %dx%d", got[1].Width, got[1].Height, 7*testCW, 2*testCH)
	}
}

// TestSparseIgnoresBackgroundOption tests that sparse cells decide their own background.
func TestSparseIgnoresBackgroundOption(t *testing.T) {
	s := newTestSparse(t, 1, 1, WithBackground(false))
	s.Add(FreeCell{Glyph: ' ', Background: Blue, HasBackground: true})

	img := render(t, s, 2, 2)
	if got := img.NRGBAAt(0, 0); got != opaqueBlue {
		t.Errorf("pixel = %v, want blue", got)
	}
}
