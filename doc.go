// Package ppm decodes ASCII Portable Pixmap (P3) images into RGBA pixel
// buffers.
//
// # Overview
//
// A P3 file is plain text:
//
//	P3
//	<width> <height>
//	<maxval>
//	<r> <g> <b> <r> <g> <b> ...
//
// Lines starting with '#' are comments and may appear anywhere, including
// between data lines. The data section is read as one stream of decimal
// samples; lines do not need to hold whole pixels.
//
// The decoder is lenient about whitespace: a trailing '\r' on any line is
// dropped, data samples may be separated by runs of spaces or tabs, and
// blank data lines are skipped. Header lines still need the exact layout.
//
// # Quick Start
//
//	img, err := ppm.DecodeFile("photo.ppm")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	frame := make([]byte, img.Len()*4)
//	img.Draw(frame)
//
// # Samples and maxval
//
// Samples must lie in [0,255] and are used as output bytes directly. The
// declared maxval is recorded but does not rescale samples unless
// WithMaxValueScaling is given.
//
// # Errors
//
// Decoding is all or nothing. Format problems are reported as *FormatError
// wrapping ErrInvalidMagic, ErrInvalidDimension, ErrInvalidMaxValue,
// ErrInvalidSampleValue, ErrMalformedLine or ErrPixelCount.
//
// # Related packages
//
//   - viewer: shows an Image in a gogpu window
//   - cmd/ppmview: command line viewer and converter
package ppm

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
