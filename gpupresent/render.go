// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpupresent

import "github.com/gogpu/gpucontext"

// RenderTo uploads the frame if needed and draws it at (0, 0).
//
// The dc parameter should be obtained from gogpu.Context.AsTextureDrawer().
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    presenter.RenderTo(dc.AsTextureDrawer())
//	})
func (p *Presenter) RenderTo(dc gpucontext.TextureDrawer) error {
	return p.RenderToPosition(dc, 0, 0)
}

// RenderToPosition is like RenderTo but draws the frame with its top-left
// corner at (x, y) in window pixels.
func (p *Presenter) RenderToPosition(dc gpucontext.TextureDrawer, x, y float32) error {
	if p.closed {
		return ErrPresenterClosed
	}

	tex, err := p.Flush(dc.TextureCreator())
	if err != nil {
		return err
	}
	return dc.DrawTexture(tex, x, y)
}
