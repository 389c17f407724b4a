package ppm

import (
	"fmt"
	"os"
	"path/filepath"
)

// decodeState is the position of the decoder in the file. It only moves
// forward; the data state is kept until the input runs out.
type decodeState uint8

const (
	stateMagic decodeState = iota
	stateSize
	stateMax
	stateData
)

func (s decodeState) String() string {
	switch s {
	case stateMagic:
		return "magic"
	case stateSize:
		return "size"
	case stateMax:
		return "max value"
	case stateData:
		return "data"
	}
	return fmt.Sprintf("decodeState(%d)", uint8(s))
}

// DecodeFile reads the file at path and decodes it. The path becomes the
// image name.
func DecodeFile(path string, opts ...DecodeOption) (*Image, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("ppm: read file: %w", err)
	}
	return Decode(data, path, opts...)
}

// Decode decodes an ASCII (P3) pixmap held entirely in data. The name is
// only used for diagnostics and the window title.
//
// Decoding is all or nothing: on error no Image is returned. Format errors
// are *FormatError values wrapping one of the Err* sentinels.
func Decode(data []byte, name string, opts ...DecodeOption) (*Image, error) {
	o := defaultDecodeOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := &decoder{
		opts:  o,
		lines: newLineReader(data),
	}
	if err := d.run(len(data)); err != nil {
		return nil, err
	}

	Logger().Debug("ppm: decoded",
		"name", name,
		"width", d.hdr.width,
		"height", d.hdr.height,
		"pixels", len(d.pixels))

	return &Image{
		name:     name,
		maxValue: d.hdr.maxValue,
		width:    d.hdr.width,
		height:   d.hdr.height,
		pixels:   d.pixels,
	}, nil
}

// decoder carries the state of one decode pass.
type decoder struct {
	opts  decodeOptions
	lines *lineReader
	state decodeState
	hdr   header

	// acc keeps its values after a pixel is emitted. Under FlushPerLine it
	// is zeroed at the start of every line and the line flush reuses what is
	// left in it for channels the line did not supply.
	acc    [3]uint8
	n      int
	pixels []Pixel
}

func (d *decoder) run(inputSize int) error {
	for {
		line, ok := d.lines.nextContent()
		if !ok {
			break
		}

		switch d.state {
		case stateMagic:
			if err := d.headerLine(line, parseMagic); err != nil {
				return err
			}
			d.state = stateSize
		case stateSize:
			if err := d.headerLine(line, func(b []byte) error { return parseSize(b, &d.hdr) }); err != nil {
				return err
			}
			d.state = stateMax
		case stateMax:
			if err := d.headerLine(line, func(b []byte) error { return parseMaxValue(b, &d.hdr) }); err != nil {
				return err
			}
			if d.opts.scale && d.hdr.maxValue == 0 {
				return d.fail(ErrInvalidMaxValue, line)
			}
			d.beginData(inputSize)
			d.state = stateData
		case stateData:
			if err := d.dataLine(line); err != nil {
				return err
			}
		}
	}

	return d.finish()
}

// headerLine applies parse to a header line, rejecting empty lines first.
func (d *decoder) headerLine(line []byte, parse func([]byte) error) error {
	if len(line) == 0 {
		return d.fail(ErrMalformedLine, nil)
	}
	if err := parse(line); err != nil {
		return d.fail(err, line)
	}
	return nil
}

func (d *decoder) beginData(inputSize int) {
	want := uint64(d.hdr.width) * uint64(d.hdr.height)
	// Each pixel needs at least six bytes of text ("0 0 0 "), so the input
	// size bounds how many pixels can really follow.
	if limit := uint64(inputSize/6 + 1); want > limit {
		want = limit
	}
	d.pixels = make([]Pixel, 0, want)

	Logger().Debug("ppm: header parsed",
		"width", d.hdr.width,
		"height", d.hdr.height,
		"max", d.hdr.maxValue,
		"flush", d.opts.flush.String())
	if d.hdr.maxValue != 255 && !d.opts.scale {
		Logger().Debug("ppm: samples passed through unscaled", "max", d.hdr.maxValue)
	}
}

// dataLine feeds the tokens of one data line into the accumulator.
func (d *decoder) dataLine(line []byte) error {
	perLine := d.opts.flush == FlushPerLine
	if perLine {
		d.acc = [3]uint8{}
	}

	var replaced uint8 // value the latest token overwrote in acc
	i := 0
	for i < len(line) {
		for i < len(line) && isSeparator(line[i]) {
			i++
		}
		start := i
		for i < len(line) && !isSeparator(line[i]) {
			i++
		}
		if start == i {
			break
		}

		tok := line[start:i]
		v, ok := d.sample(tok)
		if !ok {
			return d.fail(ErrInvalidSampleValue, tok)
		}
		replaced = d.acc[d.n]
		d.acc[d.n] = v
		d.n++
		if d.n == len(d.acc) {
			d.emit()
		}
	}

	if perLine && d.n > 0 {
		// The last token of a line is always blue; the slot it was
		// read into gets its previous value back.
		last := d.acc[d.n-1]
		d.acc[d.n-1] = replaced
		d.acc[2] = last
		d.emit()
	}
	return nil
}

// sample parses one token, rescaling it when maxval scaling is enabled.
func (d *decoder) sample(tok []byte) (uint8, bool) {
	v, ok := parseSample(tok)
	if !ok || !d.opts.scale {
		return v, ok
	}
	maxValue := d.hdr.maxValue
	if uint32(v) > maxValue {
		return 0, false
	}
	return uint8((uint32(v)*255 + maxValue/2) / maxValue), true
}

func (d *decoder) emit() {
	d.pixels = append(d.pixels, Pixel{d.acc[0], d.acc[1], d.acc[2], 255})
	d.n = 0
}

func (d *decoder) finish() error {
	if d.state != stateData {
		return &FormatError{
			Token: fmt.Sprintf("input ends before %s line", d.state),
			Err:   ErrMalformedLine,
		}
	}
	if d.n > 0 {
		d.emit()
	}

	want := uint64(d.hdr.width) * uint64(d.hdr.height)
	if uint64(len(d.pixels)) != want {
		return &FormatError{
			Token: fmt.Sprintf("got %d pixels, want %d", len(d.pixels), want),
			Err:   ErrPixelCount,
		}
	}
	return nil
}

func (d *decoder) fail(err error, token []byte) error {
	return formatError(err, d.lines.lineNumber(), token)
}
