package convert

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	netpbm "github.com/lmittmann/ppm"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/gogpu/ppm"
)

// Export errors.
var (
	// ErrUnsupportedFormat is returned for unknown file extensions.
	ErrUnsupportedFormat = errors.New("convert: unsupported format")

	// ErrEmptyImage is returned for images with zero width or height,
	// which none of the target formats can hold.
	ErrEmptyImage = errors.New("convert: empty image")

	// ErrInvalidZoom is returned for a zoom factor below 1.
	ErrInvalidZoom = errors.New("convert: zoom must be at least 1")
)

// Zoom magnifies src by an integer factor with nearest-neighbour sampling,
// keeping every source pixel a sharp square. A factor of 1 returns src.
func Zoom(src image.Image, factor int) (image.Image, error) {
	if factor < 1 {
		return nil, ErrInvalidZoom
	}
	if factor == 1 {
		return src, nil
	}
	sr := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, sr.Dx()*factor, sr.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, sr, draw.Src, nil)
	return dst, nil
}

// Encode writes img to w in format f, magnified by zoom.
func Encode(w io.Writer, img *ppm.Image, f Format, zoom int) error {
	if img.Width() == 0 || img.Height() == 0 {
		return ErrEmptyImage
	}
	src, err := Zoom(img.ToRGBA(), zoom)
	if err != nil {
		return err
	}

	switch f {
	case FormatPNG:
		err = png.Encode(w, src)
	case FormatBMP:
		err = bmp.Encode(w, src)
	case FormatTIFF:
		err = tiff.Encode(w, src, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case FormatPPM:
		err = netpbm.Encode(w, src)
	case FormatP3:
		err = ppm.Encode(w, ppm.FromImage(img.Name(), src))
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("convert: encode %v: %w", f, err)
	}
	return nil
}

// Save writes img to path, choosing the format from the extension.
func Save(path string, img *ppm.Image, zoom int) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	out, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("convert: create file: %w", err)
	}
	if err := Encode(out, img, f, zoom); err != nil {
		_ = out.Close()
		return err
	}

	ppm.Logger().Debug("convert: saved", "path", path, "format", f.String(), "zoom", zoom)
	return out.Close()
}
