package ppm

import "bytes"

// magic is the only accepted format identifier.
var magic = []byte("P3")

// header holds the three header fields.
type header struct {
	width    uint32
	height   uint32
	maxValue uint32
}

func parseMagic(line []byte) error {
	if !bytes.Equal(line, magic) {
		return ErrInvalidMagic
	}
	return nil
}

// parseSize splits on the first space only. Anything after it, including
// further whitespace, belongs to the height and must parse as a number.
func parseSize(line []byte, h *header) error {
	w, rest, found := bytes.Cut(line, []byte{' '})
	if !found {
		return ErrInvalidDimension
	}
	width, ok := parseUint32(w)
	if !ok {
		return ErrInvalidDimension
	}
	height, ok := parseUint32(rest)
	if !ok {
		return ErrInvalidDimension
	}
	h.width, h.height = width, height
	return nil
}

func parseMaxValue(line []byte, h *header) error {
	v, ok := parseUint32(line)
	if !ok {
		return ErrInvalidMaxValue
	}
	h.maxValue = v
	return nil
}
