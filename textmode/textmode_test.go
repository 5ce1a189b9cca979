package textmode

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/glyphterm"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() = %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func newDense(t *testing.T, w, h int) *glyphterm.Dense {
	t.Helper()
	d := glyphterm.NewDense("none", w, h, glyphterm.WithResources(glyphterm.NewResources()))
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func newSparse(t *testing.T, w, h int) *glyphterm.Sparse {
	t.Helper()
	s := glyphterm.NewSparse("none", w, h, glyphterm.WithResources(glyphterm.NewResources()))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStyle(t *testing.T) {
	fg, bg, _ := Style(glyphterm.Cell{Glyph: 'x', Foreground: glyphterm.Red, Background: glyphterm.RGB(1, 2, 3)}).Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("foreground = %v, want red", fg)
	}
	if bg != tcell.NewRGBColor(1, 2, 3) {
		t.Errorf("background = %v, want #010203", bg)
	}
}

func TestDrawDense(t *testing.T) {
	screen := newScreen(t, 10, 5)
	d := newDense(t, 4, 2)
	d.Print(0, 0, "hi", glyphterm.Yellow, glyphterm.Blue)
	d.SetCharAt(3, 1, glyphterm.Cell{Glyph: 1, Foreground: glyphterm.White, Background: glyphterm.Black})
	d.SetCharAt(2, 1, glyphterm.Cell{Glyph: 196, Foreground: glyphterm.White, Background: glyphterm.Black})

	DrawDense(screen, d, 1, 2)

	tests := []struct {
		x, y int
		want rune
	}{
		{1, 2, 'h'},
		{2, 2, 'i'},
		{3, 2, ' '},
		{3, 3, '─'},
		{4, 3, '☺'},
	}
	for _, tt := range tests {
		r, _, _, _ := screen.GetContent(tt.x, tt.y)
		if r != tt.want {
			t.Errorf("GetContent(%d, %d) = %q, want %q", tt.x, tt.y, r, tt.want)
		}
	}

	_, _, style, _ := screen.GetContent(1, 2)
	fg, bg, _ := style.Decompose()
	if fg != Color(glyphterm.Yellow) || bg != Color(glyphterm.Blue) {
		t.Errorf("style = %v on %v, want yellow on blue", fg, bg)
	}

	// Untouched screen cells stay empty.
	if r, _, _, _ := screen.GetContent(0, 0); r != ' ' {
		t.Errorf("GetContent(0, 0) = %q, want ' '", r)
	}
}

func TestDrawDenseClipped(t *testing.T) {
	screen := newScreen(t, 3, 1)
	d := newDense(t, 5, 2)
	d.Print(0, 0, "abcde", glyphterm.White, glyphterm.Black)

	DrawDense(screen, d, 1, 0)

	if r, _, _, _ := screen.GetContent(2, 0); r != 'b' {
		t.Errorf("GetContent(2, 0) = %q, want 'b'", r)
	}
}

func TestDrawInvisible(t *testing.T) {
	screen := newScreen(t, 4, 4)

	d := newDense(t, 2, 2)
	d.Print(0, 0, "x", glyphterm.White, glyphterm.Black)
	p := d.Presentation()
	p.Visible = false
	d.SetPresentation(p)

	s := newSparse(t, 2, 2)
	s.Add(glyphterm.FreeCell{Glyph: 'y', Foreground: glyphterm.White, X: 1, Y: 1})
	s.SetPresentation(p)

	DrawDense(screen, d, 0, 0)
	DrawSparse(screen, s, 0, 0)

	for _, pt := range [][2]int{{0, 0}, {1, 1}} {
		if r, _, _, _ := screen.GetContent(pt[0], pt[1]); r != ' ' {
			t.Errorf("GetContent(%d, %d) = %q, want ' '", pt[0], pt[1], r)
		}
	}
}

func TestDrawSparse(t *testing.T) {
	screen := newScreen(t, 8, 4)
	under := tcell.StyleDefault.Background(tcell.NewRGBColor(0, 0, 255))
	screen.SetContent(3, 1, '.', nil, under)

	s := newSparse(t, 8, 4)
	s.Add(glyphterm.FreeCell{Glyph: '@', Foreground: glyphterm.Red, Background: glyphterm.Green, HasBackground: true, X: 0.4, Y: 0.6})
	s.Add(glyphterm.FreeCell{Glyph: '*', Foreground: glyphterm.Yellow, X: 2.5, Y: 1, Angle: 45})
	s.Add(glyphterm.FreeCell{Glyph: '#', Foreground: glyphterm.White, X: 5, Y: 2})
	s.Add(glyphterm.FreeCell{Glyph: '%', Foreground: glyphterm.White, X: 5, Y: 2})

	DrawSparse(screen, s, 0, 0)

	tests := []struct {
		x, y int
		want rune
	}{
		{0, 1, '@'},
		{3, 1, '*'},
		{5, 2, '%'},
	}
	for _, tt := range tests {
		r, _, _, _ := screen.GetContent(tt.x, tt.y)
		if r != tt.want {
			t.Errorf("GetContent(%d, %d) = %q, want %q", tt.x, tt.y, r, tt.want)
		}
	}

	_, _, style, _ := screen.GetContent(0, 1)
	if _, bg, _ := style.Decompose(); bg != Color(glyphterm.Green) {
		t.Errorf("background at (0, 1) = %v, want green", bg)
	}

	_, _, style, _ = screen.GetContent(3, 1)
	fg, bg, _ := style.Decompose()
	if fg != Color(glyphterm.Yellow) {
		t.Errorf("foreground at (3, 1) = %v, want yellow", fg)
	}
	if bg != tcell.NewRGBColor(0, 0, 255) {
		t.Errorf("background at (3, 1) = %v, want the blue already on screen", bg)
	}
}
