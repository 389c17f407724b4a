// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package viewer

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"
	"golang.org/x/image/draw"

	"github.com/gogpu/ppm"
)

// Common errors returned by New.
var (
	// ErrEmptyImage is returned for images with zero width or height.
	ErrEmptyImage = errors.New("viewer: image has no pixels")

	// ErrInvalidZoom is returned when Options.Zoom is below 1.
	ErrInvalidZoom = errors.New("viewer: zoom must be at least 1")
)

// Options controls how the image is presented.
type Options struct {
	// Zoom is the integer magnification of the initial window size.
	Zoom int

	// Smooth selects bilinear filtering when the window is not an exact
	// multiple of the image size. The default keeps pixels sharp.
	Smooth bool
}

// DefaultOptions returns options for a 1:1 window with sharp pixels.
func DefaultOptions() Options {
	return Options{
		Zoom:   1,
		Smooth: false,
	}
}

// surface is the part of ggcanvas.Canvas the viewer paints on.
type surface interface {
	Size() (width, height int)
	Resize(width, height int) error
	Draw(fn func(*gg.Context)) error
}

// Viewer holds one image and the GPU canvas showing it.
type Viewer struct {
	img    *ppm.Image
	src    *image.RGBA
	opts   Options
	canvas *ggcanvas.Canvas
	dirty  bool // canvas must be repainted
}

// New copies the pixels of img once and prepares a Viewer.
// No window is opened until Run.
func New(img *ppm.Image, opts Options) (*Viewer, error) {
	if img.Width() == 0 || img.Height() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyImage, img.Title())
	}
	if opts.Zoom < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidZoom, opts.Zoom)
	}

	src := image.NewRGBA(img.Bounds())
	img.Draw(src.Pix)

	return &Viewer{
		img:   img,
		src:   src,
		opts:  opts,
		dirty: true,
	}, nil
}

// Title returns the window title.
func (v *Viewer) Title() string {
	return v.img.Title()
}

// WindowSize returns the initial window size in pixels.
func (v *Viewer) WindowSize() (width, height int) {
	return int(v.img.Width()) * v.opts.Zoom, int(v.img.Height()) * v.opts.Zoom
}

// Frame returns the RGBA copy of the pixels the viewer paints from.
func (v *Viewer) Frame() *image.RGBA {
	return v.src
}

// ToggleSmooth switches between sharp and bilinear filtering and schedules
// a repaint.
func (v *Viewer) ToggleSmooth() {
	v.opts.Smooth = !v.opts.Smooth
	v.dirty = true
}

// openCanvas creates the canvas on the first frame.
func (v *Viewer) openCanvas(provider gpucontext.DeviceProvider, width, height int) error {
	if v.canvas != nil {
		return nil
	}
	c, err := ggcanvas.New(provider, width, height)
	if err != nil {
		return fmt.Errorf("viewer: create canvas: %w", err)
	}
	v.canvas = c
	v.dirty = true
	ppm.Logger().Debug("viewer: canvas created", "width", width, "height", height)
	return nil
}

// update brings s to width x height and repaints it if needed. It reports
// whether a repaint happened.
func (v *Viewer) update(s surface, width, height int) (bool, error) {
	if cw, ch := s.Size(); cw != width || ch != height {
		if err := s.Resize(width, height); err != nil {
			return false, fmt.Errorf("viewer: resize: %w", err)
		}
		v.dirty = true
	}
	if !v.dirty {
		return false, nil
	}
	if err := s.Draw(func(cc *gg.Context) { v.paint(cc, width, height) }); err != nil {
		return false, fmt.Errorf("viewer: draw: %w", err)
	}
	v.dirty = false
	return true, nil
}

// paint stretches the image over the whole canvas, writing straight into
// the canvas pixmap. The image is opaque, so no blending is needed.
func (v *Viewer) paint(cc *gg.Context, width, height int) {
	pm := cc.ResizeTarget()
	dst := &image.RGBA{
		Pix:    pm.Data(),
		Stride: pm.Width() * 4,
		Rect:   image.Rect(0, 0, pm.Width(), pm.Height()),
	}

	var scaler draw.Interpolator = draw.NearestNeighbor
	if v.opts.Smooth {
		scaler = draw.ApproxBiLinear
	}
	scaler.Scale(dst, image.Rect(0, 0, width, height), v.src, v.src.Bounds(), draw.Src, nil)
}

// Close releases the canvas. It is safe to call more than once.
func (v *Viewer) Close() error {
	if v.canvas == nil {
		return nil
	}
	err := v.canvas.Close()
	v.canvas = nil
	return err
}
