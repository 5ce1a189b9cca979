// Command glyphdemo renders a console panel with a particle overlay using
// glyphterm and writes the result to a PNG, or shows it in the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/glyphterm"
	"github.com/gogpu/glyphterm/atlas"
	"github.com/gogpu/glyphterm/surface"
	"github.com/gogpu/glyphterm/textmode"
)

const fontTag = "demo"

func main() {
	var (
		cols     = flag.Int("cols", 60, "terminal width in cells")
		rows     = flag.Int("rows", 20, "terminal height in cells")
		output   = flag.String("output", "glyphdemo.png", "output file")
		fontPath = flag.String("font", "", "TrueType font for the atlas (default: built-in 8x16)")
		size     = flag.Float64("size", 14, "font size in points, with -font")
		cellW    = flag.Int("cellw", 9, "cell width in pixels, with -font")
		cellH    = flag.Int("cellh", 18, "cell height in pixels, with -font")
		scale    = flag.Float64("scale", 1, "presentation scale")
		tty      = flag.Bool("tty", false, "show in this terminal instead of writing a PNG")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		glyphterm.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cw, ch, err := loadAtlas(*fontPath, *size, *cellW, *cellH)
	if err != nil {
		log.Fatalf("Failed to load atlas: %v", err)
	}

	pres := glyphterm.DefaultPresentation()
	pres.Scale = *scale

	console := glyphterm.NewDense(fontTag, *cols, *rows, glyphterm.WithPresentation(pres))
	defer console.Close()
	drawConsole(console)

	effects := glyphterm.NewSparse(fontTag, *cols, *rows, glyphterm.WithPresentation(pres))
	defer effects.Close()
	drawEffects(effects, *cols, *rows)

	if *tty {
		if err := showText(console, effects); err != nil {
			log.Fatalf("Failed to show: %v", err)
		}
		return
	}

	w := int(math.Ceil(float64(*cols*cw) * *scale))
	h := int(math.Ceil(float64(*rows*ch) * *scale))
	window := surface.NewImageSurface(w, h)
	defer window.Close()
	window.Clear(glyphterm.Black)

	for _, term := range []glyphterm.Terminal{console, effects} {
		if err := term.Render(window); err != nil {
			log.Fatalf("Failed to render: %v", err)
		}
	}

	if err := window.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, w, h)
}

// loadAtlas registers the demo font and returns its cell size.
func loadAtlas(path string, size float64, cw, ch int) (int, int, error) {
	res := glyphterm.DefaultResources()
	if path == "" {
		err := res.LoadAtlas(fontTag, atlas.Basic(), atlas.BasicCellWidth, atlas.BasicCellHeight)
		return atlas.BasicCellWidth, atlas.BasicCellHeight, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, err
	}
	img, err := atlas.FromTTF(data, size, cw, ch)
	if err != nil {
		return 0, 0, err
	}
	return cw, ch, res.LoadAtlas(fontTag, img, cw, ch)
}

func drawConsole(d *glyphterm.Dense) {
	w, h := d.Size()

	// Background gradient
	for y := 0; y < h; y++ {
		bg := glyphterm.Lerp(glyphterm.RGB(10, 20, 60), glyphterm.RGB(40, 10, 40), float64(y)/float64(max(h-1, 1)))
		d.Fill(0, y, w, y+1, ' ', glyphterm.White, bg)
	}

	d.Box(0, 0, w-1, h-1, glyphterm.Grey, glyphterm.Black, true)
	d.PrintCenter(0, " glyphterm ", glyphterm.Yellow, glyphterm.Black)

	d.Box(2, 2, 24, 6, glyphterm.Cyan, glyphterm.DarkGrey, false)
	d.Print(4, 3, "HP  ", glyphterm.White, glyphterm.DarkGrey)
	d.Fill(8, 3, 22, 4, glyphterm.SolidGlyph, glyphterm.Red, glyphterm.DarkGrey)
	d.Print(4, 5, "Gold: 1,337", glyphterm.Orange, glyphterm.DarkGrey)
	d.Print(4, 6, "☺ ♥ ♦ ♣ ♠ ░▒▓█", glyphterm.Green, glyphterm.DarkGrey)

	d.PrintCenter(h-2, "Press any key", glyphterm.Hex("#8f8"), glyphterm.Black)
}

func drawEffects(s *glyphterm.Sparse, cols, rows int) {
	cx, cy := float64(cols)*0.7, float64(rows)*0.5
	n := 24
	for i := 0; i < n; i++ {
		a := float64(i) / float64(n) * 2 * math.Pi
		r := float64(rows) * 0.3
		s.Add(glyphterm.FreeCell{
			Glyph:      '*',
			Foreground: glyphterm.Lerp(glyphterm.Yellow, glyphterm.Magenta, float64(i)/float64(n)),
			X:          cx + math.Cos(a)*r*2,
			Y:          cy + math.Sin(a)*r,
			Angle:      a * 180 / math.Pi,
		})
	}
	s.Add(glyphterm.FreeCell{
		Glyph:         '@',
		Foreground:    glyphterm.White,
		Background:    glyphterm.DarkGreen,
		HasBackground: true,
		X:             cx,
		Y:             cy,
	})
}

// showText mirrors the terminals onto the controlling terminal until a key
// is pressed.
func showText(console *glyphterm.Dense, effects *glyphterm.Sparse) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	for {
		screen.Clear()
		textmode.DrawDense(screen, console, 0, 0)
		textmode.DrawSparse(screen, effects, 0, 0)
		screen.Show()

		switch screen.PollEvent().(type) {
		case *tcell.EventKey:
			return nil
		case nil:
			return nil
		}
	}
}
