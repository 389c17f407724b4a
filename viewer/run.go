// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package viewer

import (
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ppm"
)

// Run opens the window and blocks until it is closed.
//
// Rendering is event driven: frames are produced for window events only.
// Pressing Space toggles filtering; a short animation token makes the
// event loop produce the frame that shows the change.
func (v *Viewer) Run() error {
	width, height := v.WindowSize()
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(v.Title()).
		WithSize(width, height).
		WithContinuousRender(false))

	var redraw *gogpu.AnimationToken

	app.OnDraw(func(dc *gogpu.Context) {
		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}

		if v.canvas == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			if err := v.openCanvas(provider, w, h); err != nil {
				ppm.Logger().Warn("viewer: canvas unavailable", "err", err)
				return
			}
		}

		painted, err := v.update(v.canvas, w, h)
		if err != nil {
			ppm.Logger().Warn("viewer: frame skipped", "err", err)
			return
		}
		if painted {
			ppm.Logger().Debug("viewer: repainted", "width", w, "height", h, "smooth", v.opts.Smooth)
		}

		if err := v.canvas.RenderTo(dc.AsTextureDrawer()); err != nil {
			ppm.Logger().Warn("viewer: render", "err", err)
		}

		if redraw != nil {
			redraw.Stop()
			redraw = nil
		}
	})

	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if key != gpucontext.KeySpace {
			return
		}
		v.ToggleSmooth()
		if redraw == nil {
			redraw = app.StartAnimation()
		}
	})

	app.OnClose(func() {
		if redraw != nil {
			redraw.Stop()
		}
		_ = v.Close()
	})

	return app.Run()
}
