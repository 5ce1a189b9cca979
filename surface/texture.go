// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Texture is an immutable-by-convention NRGBA pixel source for quads and
// sprites. Its bounds always start at (0, 0).
type Texture struct {
	img *image.NRGBA
}

// NewTexture copies img into a new texture. The copy is rebased so that
// img.Bounds().Min maps to texel (0, 0).
func NewTexture(img image.Image) *Texture {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return &Texture{img: dst}
}

// NewBlankTexture returns a fully transparent texture.
func NewBlankTexture(width, height int) *Texture {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Texture{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the texture width in texels.
func (t *Texture) Width() int {
	return t.img.Rect.Dx()
}

// Height returns the texture height in texels.
func (t *Texture) Height() int {
	return t.img.Rect.Dy()
}

// Bounds returns the texture rectangle.
func (t *Texture) Bounds() image.Rectangle {
	return t.img.Rect
}

// At returns the texel at (x, y). Out-of-range texels are transparent.
func (t *Texture) At(x, y int) color.NRGBA {
	return t.img.NRGBAAt(x, y)
}

// Image returns the backing image. This is a direct reference, not a copy.
func (t *Texture) Image() *image.NRGBA {
	return t.img
}
