// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package viewer shows a decoded pixmap in a gogpu window.
//
// The data flow is:
//
//	ppm.Image -> image.RGBA (once) -> gg pixmap (scaled) -> ggcanvas.Canvas -> Window
//
// The pixels are copied out of the ppm.Image a single time, when the Viewer
// is created. The window renders on events only, and the canvas is repainted
// only on the first frame, after a resize, or when the filtering mode is
// toggled with the Space key. Other frames reuse the uploaded texture.
//
// # Usage
//
//	img, err := ppm.DecodeFile("photo.ppm")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v, err := viewer.New(img, viewer.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := v.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// A Viewer is driven from the gogpu event loop and is NOT safe for
// concurrent use.
package viewer
