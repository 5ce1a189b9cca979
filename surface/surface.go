// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
)

// Target is anything a finished terminal image can be composited onto.
//
// Targets are NOT thread-safe.
type Target interface {
	// DrawSprite draws a textured, transformed and color-modulated
	// rectangle using source-over blending.
	DrawSprite(s Sprite)
}

// Surface is an offscreen render texture.
//
// Drawing goes to a back buffer; Display publishes the back buffer so
// that Texture returns it. Content persists across Display calls until
// the next Clear.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
type Surface interface {
	Target

	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Clear fills the entire back buffer with the given color,
	// replacing (not blending) what was there.
	Clear(c color.Color)

	// DrawQuads draws vertices as independent quads, four per quad,
	// sampling tex. A trailing partial quad is ignored.
	DrawQuads(vertices []Vertex, tex *Texture)

	// Display publishes the back buffer to the texture returned by Texture.
	Display()

	// Texture returns the content published by the last Display.
	// Before the first Display it is fully transparent.
	Texture() *Texture

	// Snapshot returns a copy of the back buffer.
	Snapshot() *image.NRGBA

	// Close releases all resources associated with the surface.
	// Close is idempotent; multiple calls are safe.
	Close() error
}
