// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpupresent shows glyphterm terminals in gogpu GPU-accelerated
// windows.
//
// Terminals are composited on the CPU into a window-sized frame, which is
// uploaded to a GPU texture and drawn by the window's draw context:
//
//	Terminal.Render -> Presenter frame (CPU) -> GPU Texture -> Window
//
// # Usage
//
//	p, err := gpupresent.New(app.GPUContextProvider(), 1280, 800)
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    if err := p.Compose(console, effects); err != nil {
//	        log.Println(err)
//	    }
//	    _ = p.RenderTo(dc.AsTextureDrawer())
//	})
//
// # Thread Safety
//
// Presenter is NOT safe for concurrent use. Use it from the window's draw
// goroutine.
//
// # Performance Notes
//
//   - The GPU texture is created lazily on the first Flush
//   - Frames are only uploaded when something was drawn since the last upload
//   - After Resize the old texture is destroyed once its replacement exists
//
// The package depends on gpucontext interfaces only, so it does not import
// gogpu itself.
package gpupresent
