// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the drawing targets glyph terminals render into.
//
// A terminal never rasterizes anything itself. It builds textured quads
// (or sprites) addressed into a glyph atlas and hands them to a Surface,
// its offscreen buffer, and later hands a single Sprite of that buffer to
// a Target, the final destination. This separation allows:
//
//   - CPU-based software rendering (ImageSurface)
//   - GPU presentation of the composited frame (see package gpupresent)
//   - Test doubles that record what was drawn
//
// # Quads and sprites
//
// DrawQuads consumes vertices four at a time. Each quad is treated as a
// parallelogram spanned by its vertices 0, 1 and 3, textured with the
// matching texture coordinates and flat-shaded with the color of vertex 0.
// Every quad produced by a terminal (axis-aligned cells and rotated
// sprites) is a parallelogram.
//
// A Sprite is a texture sub-rectangle placed with an origin, position,
// rotation (degrees, clockwise in screen space) and scale, modulated by a
// color. It is converted to a single quad.
//
// # Registry
//
// Backends register a factory under a name and priority:
//
//	surface.Register("image", 10, func(opts surface.Options) (surface.Surface, error) {
//	    return surface.NewImageSurface(opts.Width, opts.Height), nil
//	}, nil)
//
//	// Later:
//	s, err := surface.NewSurface(640, 400)
//
// The built-in "image" backend is always registered.
//
// # Usage
//
//	s := surface.NewImageSurface(64, 64)
//	defer s.Close()
//
//	s.Clear(color.Transparent)
//	s.DrawSprite(surface.Sprite{
//	    Texture: atlas,
//	    Src:     image.Rect(56, 8, 64, 16),
//	    Scale:   surface.Pt(1, 1),
//	    Color:   color.NRGBA{255, 0, 0, 255},
//	})
//	s.Display()
//	frame := s.Texture()
package surface
