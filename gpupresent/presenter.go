// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpupresent

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/glyphterm"
	"github.com/gogpu/glyphterm/surface"
)

// Common errors returned by Presenter operations.
var (
	// ErrPresenterClosed is returned when operations are attempted on a closed presenter.
	ErrPresenterClosed = errors.New("gpupresent: presenter is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("gpupresent: invalid dimensions")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("gpupresent: nil DeviceProvider")

	// ErrNoTextureCreator is returned when a texture is needed and the draw
	// context has no gpucontext.TextureCreator.
	ErrNoTextureCreator = errors.New("gpupresent: draw context has no texture creator")

	// ErrTextureCreationFailed is returned when texture creation fails.
	ErrTextureCreationFailed = errors.New("gpupresent: texture creation failed")
)

// textureDestroyer matches gogpu.Texture.Destroy.
type textureDestroyer interface {
	Destroy()
}

// Presenter is a surface.Target backed by a GPU texture.
//
// Terminals render onto the presenter like onto any other target; Flush
// uploads the composited frame and RenderTo draws it into the window.
//
// Presenter is NOT safe for concurrent use.
type Presenter struct {
	frame    *surface.ImageSurface
	provider gpucontext.DeviceProvider

	texture    gpucontext.Texture
	oldTexture gpucontext.Texture // replaced by Resize, destroyed after the next upload

	dirty       bool // frame changed since the last upload
	sizeChanged bool // texture must be recreated
	width       int
	height      int
	closed      bool
}

// New creates a width×height presenter. The provider should come from
// gogpu.App.GPUContextProvider().
func New(provider gpucontext.DeviceProvider, width, height int) (*Presenter, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	return &Presenter{
		frame:    surface.NewImageSurface(width, height),
		provider: provider,
		width:    width,
		height:   height,
		dirty:    true,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(provider gpucontext.DeviceProvider, width, height int) *Presenter {
	p, err := New(provider, width, height)
	if err != nil {
		panic(err)
	}
	return p
}

// Width returns the frame width in pixels.
func (p *Presenter) Width() int {
	return p.width
}

// Height returns the frame height in pixels.
func (p *Presenter) Height() int {
	return p.height
}

// Size returns width and height as a convenience.
func (p *Presenter) Size() (width, height int) {
	return p.width, p.height
}

// Frame returns the CPU frame, or nil if the presenter is closed.
// Call MarkDirty after drawing on it directly.
func (p *Presenter) Frame() *surface.ImageSurface {
	if p.closed {
		return nil
	}
	return p.frame
}

// DrawSprite draws a sprite onto the frame and marks it for upload.
func (p *Presenter) DrawSprite(s surface.Sprite) {
	if p.closed {
		return
	}
	p.frame.DrawSprite(s)
	p.dirty = true
}

// Clear fills the frame with c.
func (p *Presenter) Clear(c color.Color) {
	if p.closed {
		return
	}
	p.frame.Clear(c)
	p.dirty = true
}

// Compose clears the frame to transparent and renders terms onto it in
// order, so that later terminals cover earlier ones. Every terminal is
// rendered even if an earlier one fails; the first error is returned.
func (p *Presenter) Compose(terms ...glyphterm.Terminal) error {
	if p.closed {
		return ErrPresenterClosed
	}

	p.Clear(color.Transparent)
	var first error
	for _, t := range terms {
		if err := t.Render(p); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// MarkDirty flags the frame for upload on the next Flush.
func (p *Presenter) MarkDirty() {
	p.dirty = true
}

// IsDirty reports whether the frame has changes not yet uploaded.
func (p *Presenter) IsDirty() bool {
	return p.dirty
}

// Resize changes the frame size. The frame is cleared and the texture is
// recreated on the next Flush.
func (p *Presenter) Resize(width, height int) error {
	if p.closed {
		return ErrPresenterClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if p.width == width && p.height == height {
		return nil
	}

	_ = p.frame.Close()
	p.frame = surface.NewImageSurface(width, height)
	p.width = width
	p.height = height
	p.sizeChanged = true
	p.dirty = true
	return nil
}

// Flush uploads the frame if it changed and returns the texture holding it.
// The texture is created with creator the first time and after a resize;
// otherwise it is updated in place.
func (p *Presenter) Flush(creator gpucontext.TextureCreator) (gpucontext.Texture, error) {
	if p.closed {
		return nil, ErrPresenterClosed
	}

	if p.sizeChanged {
		if p.texture != nil {
			destroy(p.oldTexture)
			p.oldTexture = p.texture
			p.texture = nil
		}
		p.sizeChanged = false
	}

	if !p.dirty && p.texture != nil {
		return p.texture, nil
	}

	data := p.frame.Image().Pix

	if p.texture != nil {
		if updater, ok := p.texture.(gpucontext.TextureUpdater); ok {
			if err := updater.UpdateData(data); err != nil {
				return nil, fmt.Errorf("gpupresent: texture update failed: %w", err)
			}
			p.dirty = false
			return p.texture, nil
		}
		// Not updatable: replace it.
		destroy(p.oldTexture)
		p.oldTexture = p.texture
		p.texture = nil
	}

	if creator == nil {
		return nil, ErrNoTextureCreator
	}
	tex, err := creator.NewTextureFromRGBA(p.width, p.height, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTextureCreationFailed, err)
	}
	glyphterm.Logger().Debug("presenter texture created", "width", p.width, "height", p.height)

	p.texture = tex
	// The upload has completed, so the GPU no longer reads the old texture.
	destroy(p.oldTexture)
	p.oldTexture = nil

	p.dirty = false
	return p.texture, nil
}

// Texture returns the current GPU texture without flushing, or nil if
// none has been created yet.
func (p *Presenter) Texture() gpucontext.Texture {
	return p.texture
}

// Provider returns the DeviceProvider of the presenter, or nil if it is
// closed.
func (p *Presenter) Provider() gpucontext.DeviceProvider {
	if p.closed {
		return nil
	}
	return p.provider
}

// Close releases the frame and the GPU textures.
// Close is idempotent; multiple calls are safe.
func (p *Presenter) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	destroy(p.oldTexture)
	p.oldTexture = nil
	destroy(p.texture)
	p.texture = nil

	if p.frame != nil {
		_ = p.frame.Close()
		p.frame = nil
	}

	p.provider = nil
	return nil
}

func destroy(tex gpucontext.Texture) {
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}

var _ surface.Target = (*Presenter)(nil)
