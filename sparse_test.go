package glyphterm

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/glyphterm/surface"
)

func TestSparseOrdering(t *testing.T) {
	s := newTestSparse(t, 2, 2)
	s.Add(FreeCell{Glyph: 'A', Foreground: Red, X: 1, Y: 1})
	s.Add(FreeCell{Glyph: 'B', Foreground: Blue, X: 1, Y: 1})

	img := render(t, s, 4, 4)
	if got := img.NRGBAAt(2, 2); got != opaqueBlue {
		t.Errorf("pixel(2,2) = %v, want the later entry's blue", got)
	}
	if got := img.NRGBAAt(0, 0); got.A != 0 {
		t.Errorf("pixel(0,0) = %v, want transparent", got)
	}
}

func TestSparseBackground(t *testing.T) {
	s := newTestSparse(t, 2, 1)
	s.Add(FreeCell{Glyph: ' ', Foreground: White, Background: Blue, HasBackground: true})
	s.Add(FreeCell{Glyph: ' ', Foreground: White, Background: Red, X: 1})

	img := render(t, s, 4, 2)
	if got := img.NRGBAAt(1, 1); got != opaqueBlue {
		t.Errorf("pixel(1,1) = %v, want blue background", got)
	}
	if got := img.NRGBAAt(2, 0); got.A != 0 {
		t.Errorf("pixel(2,0) = %v, want no background when HasBackground is false", got)
	}
}

func TestSparseBlackBackgroundIsDrawn(t *testing.T) {
	s := newTestSparse(t, 1, 1)
	s.Add(FreeCell{Glyph: ' ', Background: Black, HasBackground: true})

	img := render(t, s, 2, 2)
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("pixel = %v, want opaque black", got)
	}
}

func TestSparseFractionalPosition(t *testing.T) {
	s := newTestSparse(t, 3, 1)
	s.Add(FreeCell{Glyph: 'A', Foreground: White, X: 0.5})

	img := render(t, s, 6, 2)
	tests := []struct {
		x    int
		want uint8
	}{
		{0, 0},
		{1, 255},
		{2, 255},
		{3, 0},
	}
	for _, tt := range tests {
		if got := img.NRGBAAt(tt.x, 0).A; got != tt.want {
			t.Errorf("pixel(%d,0) alpha = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestSparseRotation(t *testing.T) {
	tests := []struct {
		angle float64
		x, y  int
	}{
		{0, 0, 0},
		{90, 1, 0},
		{180, 1, 1},
		{270, 0, 1},
		{-90, 0, 1},
	}

	for _, tt := range tests {
		s := newTestSparse(t, 1, 1)
		// Glyph 1 only has its top-left pixel set.
		s.Add(FreeCell{Glyph: 1, Foreground: White, Angle: tt.angle})

		img := render(t, s, 2, 2)
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				want := uint8(0)
				if x == tt.x && y == tt.y {
					want = 255
				}
				if got := img.NRGBAAt(x, y).A; got != want {
					t.Errorf("angle %v: pixel(%d,%d) alpha = %d, want %d", tt.angle, x, y, got, want)
				}
			}
		}
	}
}

func TestSparseResizeEmpties(t *testing.T) {
	s := newTestSparse(t, 4, 4)
	s.Add(FreeCell{Glyph: 'A'})
	s.Add(FreeCell{Glyph: 'B'})
	render(t, s, 8, 8)

	s.ResizeChars(6, 2)
	if s.Len() != 0 {
		t.Errorf("Len() = %d after resize, want 0", s.Len())
	}
	if w, h := s.Size(); w != 6 || h != 2 {
		t.Errorf("Size() = %dx%d, want 6x2", w, h)
	}
	if !s.Dirty() {
		t.Error("Dirty() = false after resize, want true")
	}
}

func TestSparseMutators(t *testing.T) {
	s := newTestSparse(t, 4, 4)
	cells := []FreeCell{{Glyph: 'a'}, {Glyph: 'b'}, {Glyph: 'c'}}

	s.SetCells(cells)
	cells[0].Glyph = 'z'
	if got := s.Cells()[0].Glyph; got != 'a' {
		t.Errorf("Cells()[0].Glyph = %q, want a copy holding 'a'", got)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}

	render(t, s, 8, 8)
	s.Clear()
	if s.Len() != 0 || !s.Dirty() {
		t.Errorf("after Clear: Len() = %d, Dirty() = %v; want 0, true", s.Len(), s.Dirty())
	}
}

func TestSparseRenderReusesImage(t *testing.T) {
	s := newTestSparse(t, 2, 1)
	s.Add(FreeCell{Glyph: 'A', Foreground: Red})

	first := render(t, s, 4, 2)
	second := render(t, s, 4, 2)
	if s.rebuilds != 1 {
		t.Errorf("rebuilds = %d, want 1", s.rebuilds)
	}
	if string(first.Pix) != string(second.Pix) {
		t.Error("second render differs from first")
	}
	if got := second.NRGBAAt(0, 0); got != opaqueRed {
		t.Errorf("pixel(0,0) = %v, want red from the previous image", got)
	}
}

func TestSparseRenderMissingFont(t *testing.T) {
	res := NewResources()
	s := NewSparse(testFont, 2, 1, WithResources(res), WithSurfaceFactory(imageFactory))
	s.Add(FreeCell{Glyph: 'A', Foreground: Red})

	err := s.Render(surface.NewImageSurface(4, 2))
	if !errors.Is(err, ErrFontNotLoaded) {
		t.Fatalf("Render() = %v, want ErrFontNotLoaded", err)
	}
	if s.Len() != 1 || !s.Dirty() {
		t.Errorf("after failed render: Len() = %d, Dirty() = %v; want 1, true", s.Len(), s.Dirty())
	}

	if err := res.LoadAtlas(testFont, testAtlas(), testCW, testCH); err != nil {
		t.Fatalf("LoadAtlas() = %v", err)
	}
	img := render(t, s, 4, 2)
	if got := img.NRGBAAt(0, 0); got != opaqueRed {
		t.Errorf("pixel(0,0) = %v, want red", got)
	}
}

func TestSparseResizePixels(t *testing.T) {
	s := newTestSparse(t, 1, 1)
	if err := s.ResizePixels(17, 9); err != nil {
		t.Fatalf("ResizePixels() = %v", err)
	}
	if w, h := s.Size(); w != 8 || h != 4 {
		t.Errorf("Size() = %dx%d, want 8x4", w, h)
	}

	missing := NewSparse("nope", 1, 1, WithResources(NewResources()))
	if err := missing.ResizePixels(10, 10); !errors.Is(err, ErrFontNotLoaded) {
		t.Errorf("ResizePixels() = %v, want ErrFontNotLoaded", err)
	}
}

func TestSparseRenderInvisible(t *testing.T) {
	p := DefaultPresentation()
	p.Visible = false
	s := newTestSparse(t, 1, 1, WithPresentation(p))
	s.Add(FreeCell{Glyph: 'A', Foreground: White})

	img := render(t, s, 2, 2)
	if got := img.NRGBAAt(0, 0); got.A != 0 {
		t.Errorf("pixel = %v, want nothing drawn", got)
	}
	if s.rebuilds != 0 {
		t.Errorf("rebuilds = %d, want 0", s.rebuilds)
	}
}
