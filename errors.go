package ppm

import (
	"errors"
	"fmt"
)

// Format errors. Every decode failure wraps exactly one of these, so callers
// can test for them with errors.Is.
var (
	// ErrInvalidMagic is returned when the first line is not exactly "P3".
	ErrInvalidMagic = errors.New("ppm: invalid magic")

	// ErrInvalidDimension is returned when the size line is not two unsigned integers.
	ErrInvalidDimension = errors.New("ppm: invalid dimension")

	// ErrInvalidMaxValue is returned when the max value line is not one unsigned integer.
	ErrInvalidMaxValue = errors.New("ppm: invalid max value")

	// ErrInvalidSampleValue is returned when a data token is not an integer in [0,255].
	ErrInvalidSampleValue = errors.New("ppm: invalid sample value")

	// ErrMalformedLine is returned for empty header lines and truncated headers.
	ErrMalformedLine = errors.New("ppm: malformed line")

	// ErrPixelCount is returned when the data section does not hold
	// exactly width*height pixels.
	ErrPixelCount = errors.New("ppm: pixel count mismatch")
)

// FormatError describes where in the input a decode failed.
type FormatError struct {
	// Line is the 1-based physical line number, counting comments.
	// Zero means the error is not tied to a single line.
	Line int

	// Token is the offending text, if any.
	Token string

	// Err is one of the package sentinel errors.
	Err error
}

func (e *FormatError) Error() string {
	switch {
	case e.Line > 0 && e.Token != "":
		return fmt.Sprintf("%v at line %d: %q", e.Err, e.Line, e.Token)
	case e.Line > 0:
		return fmt.Sprintf("%v at line %d", e.Err, e.Line)
	case e.Token != "":
		return fmt.Sprintf("%v: %s", e.Err, e.Token)
	default:
		return e.Err.Error()
	}
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func formatError(err error, line int, token []byte) *FormatError {
	return &FormatError{Line: line, Token: string(token), Err: err}
}
