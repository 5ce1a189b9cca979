// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// ImageSurface is a CPU-based surface that renders to an *image.NRGBA.
//
// Pixels are stored with straight (non-premultiplied) alpha. Quads are
// sampled with nearest-neighbor filtering at pixel centers, so a quad that
// maps texels 1:1 onto pixels reproduces the texture exactly.
//
// Example:
//
//	s := surface.NewImageSurface(640, 400)
//	defer s.Close()
//
//	s.Clear(color.Transparent)
//	s.DrawQuads(vertices, atlas)
//	s.Display()
//	frame := s.Texture()
type ImageSurface struct {
	width  int
	height int
	img    *image.NRGBA

	// front holds the content published by Display
	front *Texture

	// closed tracks if Close has been called
	closed bool
}

// NewImageSurface creates a new CPU-based surface with the given dimensions.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	return &ImageSurface{
		width:  width,
		height: height,
		img:    image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// Clear fills the entire surface with the given color.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}

	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	pix := s.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = n.R
		pix[i+1] = n.G
		pix[i+2] = n.B
		pix[i+3] = n.A
	}
}

// DrawQuads draws vertices as independent quads sampling tex.
func (s *ImageSurface) DrawQuads(vertices []Vertex, tex *Texture) {
	if s.closed || tex == nil {
		return
	}

	for i := 0; i+4 <= len(vertices); i += 4 {
		s.drawQuad(vertices[i], vertices[i+1], vertices[i+3], tex)
	}
}

// DrawSprite draws a single transformed sprite.
func (s *ImageSurface) DrawSprite(sp Sprite) {
	if s.closed || sp.Texture == nil {
		return
	}

	q := sp.Quad()
	s.drawQuad(q[0], q[1], q[3], sp.Texture)
}

// Display publishes the back buffer.
func (s *ImageSurface) Display() {
	if s.closed {
		return
	}

	if s.front == nil {
		s.front = NewBlankTexture(s.width, s.height)
	}
	copy(s.front.img.Pix, s.img.Pix)
}

// Texture returns the content published by the last Display.
func (s *ImageSurface) Texture() *Texture {
	if s.front == nil {
		s.front = NewBlankTexture(s.width, s.height)
	}
	return s.front
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.NRGBA {
	if s.closed {
		return nil
	}

	result := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	copy(result.Pix, s.img.Pix)
	return result
}

// Close releases resources associated with the surface.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = nil
	s.front = nil
	return nil
}

// Image returns the underlying back buffer.
// This is a direct reference, not a copy.
func (s *ImageSurface) Image() *image.NRGBA {
	return s.img
}

// SavePNG writes the back buffer to a PNG file.
func (s *ImageSurface) SavePNG(path string) error {
	if s.closed {
		return ErrSurfaceClosed
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, s.Snapshot())
}

// Verify ImageSurface implements Surface interface.
var _ Surface = (*ImageSurface)(nil)
