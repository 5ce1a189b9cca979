// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"
)

// Point represents a 2D point with float64 coordinates.
type Point struct {
	X, Y float64
}

// Pt creates a Point from x, y coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Vertex is one corner of a textured quad.
type Vertex struct {
	// Position is the corner in surface pixels.
	Position Point

	// TexCoords is the corner in texture pixels.
	TexCoords Point

	// Color modulates the sampled texel. Only the first vertex of a
	// quad is used.
	Color color.NRGBA
}

// Sprite is a transformed sub-rectangle of a texture.
//
// The transform applied to a source pixel p (relative to Src.Min) is
//
//	Position + Rotate(Rotation) * Scale * (p - Origin)
type Sprite struct {
	// Texture is the sampled texture. Nil sprites are not drawn.
	Texture *Texture

	// Src is the source rectangle. An empty rectangle means the whole texture.
	Src image.Rectangle

	// Origin is the local pivot, relative to Src.Min and before scaling.
	Origin Point

	// Position is where Origin lands on the target.
	Position Point

	// Rotation in degrees, clockwise on a y-down surface.
	Rotation float64

	// Scale factors. A zero Scale is treated as (1, 1).
	Scale Point

	// Color multiplies every sampled texel, alpha included.
	Color color.NRGBA
}

// Matrix returns the sprite's local-to-target transform.
func (s Sprite) Matrix() Matrix {
	scale := s.Scale
	if scale == (Point{}) {
		scale = Pt(1, 1)
	}
	return Translate(s.Position.X, s.Position.Y).
		Multiply(RotateDegrees(s.Rotation)).
		Multiply(Scale(scale.X, scale.Y)).
		Multiply(Translate(-s.Origin.X, -s.Origin.Y))
}

// Quad returns the four vertices the sprite is drawn with, in the
// top-left, top-right, bottom-right, bottom-left order of its source rect.
func (s Sprite) Quad() [4]Vertex {
	src := s.Src
	if src.Empty() && s.Texture != nil {
		src = s.Texture.Bounds()
	}
	w := float64(src.Dx())
	h := float64(src.Dy())
	m := s.Matrix()

	u0, v0 := float64(src.Min.X), float64(src.Min.Y)
	u1, v1 := float64(src.Max.X), float64(src.Max.Y)

	return [4]Vertex{
		{Position: m.TransformPoint(Pt(0, 0)), TexCoords: Pt(u0, v0), Color: s.Color},
		{Position: m.TransformPoint(Pt(w, 0)), TexCoords: Pt(u1, v0), Color: s.Color},
		{Position: m.TransformPoint(Pt(w, h)), TexCoords: Pt(u1, v1), Color: s.Color},
		{Position: m.TransformPoint(Pt(0, h)), TexCoords: Pt(u0, v1), Color: s.Color},
	}
}

// Options configures surface creation.
type Options struct {
	// Width is the surface width in pixels.
	Width int

	// Height is the surface height in pixels.
	Height int

	// Custom options for specific backends.
	Custom map[string]any
}

// DefaultOptions returns Options with default values.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:  width,
		Height: height,
	}
}
