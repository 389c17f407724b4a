package ppm

// parseUint parses an unsigned decimal integer directly from ASCII bytes.
// An optional leading '+' is accepted. It reports false for empty input,
// any non-digit byte, or a value above limit.
func parseUint(b []byte, limit uint64) (uint64, bool) {
	if len(b) > 0 && b[0] == '+' {
		b = b[1:]
	}
	if len(b) == 0 {
		return 0, false
	}

	var n uint64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + uint64(c-'0')
		if n > limit {
			return 0, false
		}
	}
	return n, true
}

// parseUint32 parses a header number.
func parseUint32(b []byte) (uint32, bool) {
	n, ok := parseUint(b, 1<<32-1)
	return uint32(n), ok
}

// parseSample parses one 8-bit channel value.
func parseSample(b []byte) (uint8, bool) {
	n, ok := parseUint(b, 255)
	return uint8(n), ok
}

// isSeparator reports whether c separates data tokens.
func isSeparator(c byte) bool {
	return c == ' ' || c == '\t'
}
