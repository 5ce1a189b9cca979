// Package glyphterm provides virtual character terminals for tile and
// roguelike style applications.
//
// # Overview
//
// A terminal is a grid of colored glyphs drawn from a font atlas: a
// texture holding the 256 CP437 glyphs in 16 columns of fixed-size cells.
// Terminals render into an offscreen surface and composite that surface
// onto a destination with an offset, a uniform scale, a tint and an alpha.
// Several terminals can be layered onto the same destination.
//
// Two storage strategies share one rendering contract ([Terminal]):
//   - [Dense]: a fixed grid of [Cell] values rendered as one quad batch.
//     Use it for maps, panels and text.
//   - [Sparse]: an ordered list of [FreeCell] values at fractional
//     positions, optionally rotated. Use it for effects and overlays.
//
// Mutations mark a terminal dirty; Render rebuilds the image only when
// dirty and otherwise reuses the previous one.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/glyphterm"
//	    "github.com/gogpu/glyphterm/atlas"
//	    "github.com/gogpu/glyphterm/surface"
//	)
//
//	res := glyphterm.DefaultResources()
//	if err := res.LoadAtlas("8x16", atlas.Basic(), 8, 16); err != nil {
//	    return err
//	}
//
//	term := glyphterm.NewDense("8x16", 80, 25)
//	term.Print(1, 1, "Hello, world", glyphterm.White, glyphterm.Blue)
//
//	window := surface.NewImageSurface(640, 400)
//	if err := term.Render(window); err != nil {
//	    return err
//	}
//
// # Resources
//
// Terminals refer to their font by tag. The tag is resolved on first use
// in a [FontRegistry], and the font's atlas in a [TextureRegistry]. The
// resolved handles are cached until the registry reports a new generation.
// [Resources] implements both registries.
//
// # Coordinate System
//
// Cells are addressed (x, y) with the origin at the top-left. Rotation
// angles are in degrees and turn clockwise on screen.
package glyphterm
