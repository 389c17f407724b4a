package ppm

// lineReader walks a byte buffer one logical line at a time.
//
// Lines are split on '\n', which is consumed. A final line without a
// terminating newline is still returned, but a trailing newline does not
// produce an extra empty line. A '\r' right before the newline is dropped.
// The reader cannot be rewound.
type lineReader struct {
	data []byte
	pos  int
	line int // physical number of the last returned line
}

func newLineReader(data []byte) *lineReader {
	return &lineReader{data: data}
}

// next returns the next physical line, including comments.
func (r *lineReader) next() ([]byte, bool) {
	if r.pos >= len(r.data) {
		return nil, false
	}

	start := r.pos
	end := start
	for end < len(r.data) && r.data[end] != '\n' {
		end++
	}

	r.pos = end
	if r.pos < len(r.data) {
		r.pos++ // newline
	}
	r.line++

	if end > start && r.data[end-1] == '\r' {
		end--
	}
	return r.data[start:end], true
}

// nextContent returns the next line that is not a comment.
// Empty lines are returned; the caller decides what they mean.
func (r *lineReader) nextContent() ([]byte, bool) {
	for {
		line, ok := r.next()
		if !ok {
			return nil, false
		}
		if isComment(line) {
			continue
		}
		return line, true
	}
}

// lineNumber returns the 1-based number of the last returned line.
func (r *lineReader) lineNumber() int {
	return r.line
}

func isComment(line []byte) bool {
	return len(line) > 0 && line[0] == '#'
}
