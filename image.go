package ppm

import (
	"fmt"
	"image"
	"image/color"
	"slices"
)

// Pixel is one RGBA quad: red, green, blue, alpha.
type Pixel [4]uint8

// RGBA converts the pixel to a standard library color.
func (p Pixel) RGBA() color.RGBA {
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Image is a decoded pixmap. Pixels are stored row-major starting at the
// top-left corner. An Image is never modified after Decode returns it, so
// it is safe for concurrent reads.
type Image struct {
	name     string
	maxValue uint32
	width    uint32
	height   uint32
	pixels   []Pixel
}

// Name returns the source name given to Decode.
func (img *Image) Name() string {
	return img.name
}

// MaxValue returns the declared maximum sample value.
func (img *Image) MaxValue() uint32 {
	return img.maxValue
}

// Width returns the width in pixels.
func (img *Image) Width() uint32 {
	return img.width
}

// Height returns the height in pixels.
func (img *Image) Height() uint32 {
	return img.height
}

// Len returns the number of pixels, always Width()*Height().
func (img *Image) Len() int {
	return len(img.pixels)
}

// Pixel returns the i-th pixel in row-major order.
func (img *Image) Pixel(i int) Pixel {
	return img.pixels[i]
}

// Pixels returns a copy of all pixels.
func (img *Image) Pixels() []Pixel {
	return slices.Clone(img.pixels)
}

// Title returns "<name> - <width> x <height>".
func (img *Image) Title() string {
	return fmt.Sprintf("%s - %d x %d", img.name, img.width, img.height)
}

// Draw copies the pixels in order into frame, four bytes per pixel.
// frame is expected to hold exactly Width()*Height()*4 bytes; if it is
// shorter only the pixels that fit are copied. It returns the number of
// pixels copied. The image itself is not modified.
func (img *Image) Draw(frame []byte) int {
	n := min(len(frame)/4, len(img.pixels))
	for i := range n {
		copy(frame[i*4:i*4+4], img.pixels[i][:])
	}
	return n
}

// FromImage creates an Image from any image.Image. Colors are converted to
// non-premultiplied 8-bit RGB with alpha forced to 255, and maxval is 255.
func FromImage(name string, src image.Image) *Image {
	b := src.Bounds()
	img := &Image{
		name:     name,
		maxValue: 255,
		width:    uint32(b.Dx()),
		height:   uint32(b.Dy()),
		pixels:   make([]Pixel, 0, b.Dx()*b.Dy()),
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			img.pixels = append(img.pixels, Pixel{c.R, c.G, c.B, 255})
		}
	}
	return img
}

// ToRGBA converts the image to an *image.RGBA.
func (img *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(img.Bounds())
	img.Draw(rgba.Pix)
	return rgba
}

// At implements the image.Image interface.
func (img *Image) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= int(img.width) || y >= int(img.height) {
		return color.RGBA{}
	}
	return img.pixels[y*int(img.width)+x].RGBA()
}

// Bounds implements the image.Image interface.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(img.width), int(img.height))
}

// ColorModel implements the image.Image interface.
func (img *Image) ColorModel() color.Model {
	return color.RGBAModel
}
