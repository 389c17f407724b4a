// Package convert writes decoded pixmaps to other image formats.
package convert

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an export file format.
type Format uint8

const (
	// FormatPNG is a PNG file (image/png).
	FormatPNG Format = iota

	// FormatBMP is an uncompressed Windows bitmap.
	FormatBMP

	// FormatTIFF is a deflate-compressed TIFF.
	FormatTIFF

	// FormatPPM is a binary (P6) pixmap.
	FormatPPM

	// FormatP3 is an ASCII (P3) pixmap, the same format the decoder reads.
	FormatP3
)

// String returns the conventional extension without the dot.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	case FormatPPM:
		return "ppm"
	case FormatP3:
		return "p3"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	case ".ppm":
		return FormatPPM, nil
	case ".pnm", ".p3":
		return FormatP3, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
