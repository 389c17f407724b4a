package ppm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineWidth is the longest data line Encode writes, as recommended by
// the Netpbm format description.
const maxLineWidth = 70

// Encode writes img as an ASCII (P3) pixmap with maxval 255. The image name,
// if any, is written as a comment after the magic line. Data lines never
// split a pixel, so the output decodes the same under every FlushPolicy.
// Alpha is dropped.
func Encode(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s\n", magic)
	if img.name != "" {
		name := strings.ReplaceAll(img.name, "\n", " ")
		fmt.Fprintf(bw, "# %s\n", name)
	}
	fmt.Fprintf(bw, "%d %d\n255\n", img.width, img.height)

	line := make([]byte, 0, maxLineWidth+1)
	var px []byte
	for _, p := range img.pixels {
		px = px[:0]
		for c := range 3 {
			if c > 0 {
				px = append(px, ' ')
			}
			px = strconv.AppendUint(px, uint64(p[c]), 10)
		}

		if len(line) > 0 && len(line)+1+len(px) > maxLineWidth {
			line = append(line, '\n')
			if _, err := bw.Write(line); err != nil {
				return fmt.Errorf("ppm: encode: %w", err)
			}
			line = line[:0]
		}
		if len(line) > 0 {
			line = append(line, ' ')
		}
		line = append(line, px...)
	}
	if len(line) > 0 {
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("ppm: encode: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("ppm: encode: %w", err)
	}
	return nil
}
