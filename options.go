package ppm

// FlushPolicy decides when a partially assembled pixel is emitted.
type FlushPolicy uint8

const (
	// FlushAtEOF treats the whole data section as one token stream.
	// A partial pixel carries over to the next line and is flushed only
	// once, at end of input.
	FlushAtEOF FlushPolicy = iota

	// FlushPerLine decodes every data line on its own. The channels start
	// at zero on each line, and a line that does not end on a whole pixel
	// emits one more: its last sample becomes blue, and red and green keep
	// whatever the line left in them. "1 2 3 4" gives (1,2,3) and (1,2,4);
	// "10 20" gives (10,0,20). Files whose lines hold whole pixels decode
	// the same under both policies.
	FlushPerLine
)

// String returns the flag spelling of the policy.
func (p FlushPolicy) String() string {
	switch p {
	case FlushAtEOF:
		return "eof"
	case FlushPerLine:
		return "line"
	default:
		return "unknown"
	}
}

// ParseFlushPolicy parses "eof" or "line".
func ParseFlushPolicy(s string) (FlushPolicy, bool) {
	switch s {
	case "eof":
		return FlushAtEOF, true
	case "line":
		return FlushPerLine, true
	default:
		return 0, false
	}
}

// DecodeOption configures Decode.
//
// Example:
//
//	img, err := ppm.Decode(data, "legacy.ppm", ppm.WithFlushPolicy(ppm.FlushPerLine))
type DecodeOption func(*decodeOptions)

// decodeOptions holds optional configuration for a decode pass.
type decodeOptions struct {
	flush FlushPolicy
	scale bool
}

// defaultDecodeOptions returns the default decode options.
func defaultDecodeOptions() decodeOptions {
	return decodeOptions{
		flush: FlushAtEOF,
		scale: false,
	}
}

// WithFlushPolicy selects how partial pixels at line ends are handled.
func WithFlushPolicy(p FlushPolicy) DecodeOption {
	return func(o *decodeOptions) {
		o.flush = p
	}
}

// WithMaxValueScaling enables rescaling of samples from [0,maxval] to
// [0,255]. Samples above maxval are rejected when scaling is on.
// Samples are still limited to [0,255] whatever the declared maxval, so
// with a maxval above 255 only the low end of the range can be expressed.
// By default samples pass through unchanged whatever the declared maxval.
func WithMaxValueScaling(enabled bool) DecodeOption {
	return func(o *decodeOptions) {
		o.scale = enabled
	}
}
