// Package textmode mirrors glyphterm terminals onto a character terminal
// through tcell, for headless play, debugging and SSH sessions.
//
// Each terminal cell becomes one screen cell: the CP437 glyph is translated
// to its Unicode character and the colors to 24-bit tcell colors. Pixel
// level presentation (offset, scale, tint) has no text mode equivalent and
// is ignored; an invisible terminal draws nothing.
//
// Example:
//
//	screen, err := tcell.NewScreen()
//	...
//	textmode.DrawDense(screen, console, 0, 0)
//	textmode.DrawSparse(screen, effects, 0, 0)
//	screen.Show()
package textmode

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/glyphterm"
)

// Color converts a terminal color to a 24-bit tcell color.
func Color(c glyphterm.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Style returns the tcell style of a cell.
func Style(c glyphterm.Cell) tcell.Style {
	return tcell.StyleDefault.Foreground(Color(c.Foreground)).Background(Color(c.Background))
}

// DrawDense draws every cell of d with its top-left cell at (ox, oy).
// Cells falling outside the screen are dropped by the screen.
func DrawDense(screen tcell.Screen, d *glyphterm.Dense, ox, oy int) {
	if !d.Presentation().Visible {
		return
	}

	w, h := d.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, ok := d.Cell(d.At(x, y))
			if !ok {
				continue
			}
			screen.SetContent(ox+x, oy+y, glyphterm.GlyphRune(c.Glyph), nil, Style(c))
		}
	}
}

// DrawSparse draws the entries of s in order, each at its position rounded
// to the nearest cell and offset by (ox, oy). Rotation is ignored. Entries
// without a background keep the background already on screen.
func DrawSparse(screen tcell.Screen, s *glyphterm.Sparse, ox, oy int) {
	if !s.Presentation().Visible {
		return
	}

	for _, c := range s.Cells() {
		x := ox + int(math.Round(c.X))
		y := oy + int(math.Round(c.Y))

		style := tcell.StyleDefault.Foreground(Color(c.Foreground))
		if c.HasBackground {
			style = style.Background(Color(c.Background))
		} else {
			_, _, under, _ := screen.GetContent(x, y)
			_, bg, _ := under.Decompose()
			style = style.Background(bg)
		}
		screen.SetContent(x, y, glyphterm.GlyphRune(c.Glyph), nil, style)
	}
}
