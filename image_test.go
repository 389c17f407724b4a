package ppm

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestImageDraw(t *testing.T) {
	img := mustDecode(t, "P3\n2 1\n255\n10 20 30 40 50 60\n")

	frame := make([]byte, 2*1*4)
	if n := img.Draw(frame); n != 2 {
		t.Errorf("Draw() = %d, want 2", n)
	}
	want := []byte{10, 20, 30, 255, 40, 50, 60, 255}
	if !bytes.Equal(frame, want) {
		t.Errorf("frame = %v, want %v", frame, want)
	}

	// Drawing is read-only on the image and can be repeated.
	again := make([]byte, len(frame))
	img.Draw(again)
	if !bytes.Equal(again, want) {
		t.Errorf("second Draw() frame = %v, want %v", again, want)
	}
}

func TestImageDrawShortFrame(t *testing.T) {
	img := mustDecode(t, "P3\n2 1\n255\n10 20 30 40 50 60\n")

	frame := []byte{9, 9, 9, 9, 9, 9}
	if n := img.Draw(frame); n != 1 {
		t.Errorf("Draw() = %d, want 1", n)
	}
	want := []byte{10, 20, 30, 255, 9, 9}
	if !bytes.Equal(frame, want) {
		t.Errorf("frame = %v, want %v", frame, want)
	}
	if n := img.Draw(nil); n != 0 {
		t.Errorf("Draw(nil) = %d, want 0", n)
	}
}

func TestImageLenMatchesArea(t *testing.T) {
	img := mustDecode(t, "P3\n3 2\n255\n"+
		"1 1 1 2 2 2 3 3 3\n4 4 4 5 5 5 6 6 6\n")
	if got, want := img.Len(), int(img.Width()*img.Height()); got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
}

func TestImageAtAndBounds(t *testing.T) {
	img := mustDecode(t, "P3\n2 2\n255\n1 2 3 4 5 6\n7 8 9 10 11 12\n")

	if got := img.Bounds(); got != image.Rect(0, 0, 2, 2) {
		t.Errorf("Bounds() = %v, want (0,0)-(2,2)", got)
	}
	if img.ColorModel() != color.RGBAModel {
		t.Error("ColorModel() is not color.RGBAModel")
	}
	if got := img.At(0, 1); got != (color.RGBA{7, 8, 9, 255}) {
		t.Errorf("At(0, 1) = %v, want {7 8 9 255}", got)
	}
	if got := img.At(1, 0); got != (color.RGBA{4, 5, 6, 255}) {
		t.Errorf("At(1, 0) = %v, want {4 5 6 255}", got)
	}
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if got := img.At(p.X, p.Y); got != (color.RGBA{}) {
			t.Errorf("At(%d, %d) = %v, want transparent", p.X, p.Y, got)
		}
	}
}

func TestImageToRGBA(t *testing.T) {
	img := mustDecode(t, "P3\n2 1\n255\n10 20 30 40 50 60\n")
	rgba := img.ToRGBA()

	want := []byte{10, 20, 30, 255, 40, 50, 60, 255}
	if !bytes.Equal(rgba.Pix, want) {
		t.Errorf("ToRGBA().Pix = %v, want %v", rgba.Pix, want)
	}
}

func TestImagePixelsIsCopy(t *testing.T) {
	img := mustDecode(t, "P3\n1 1\n255\n1 2 3\n")
	px := img.Pixels()
	px[0] = Pixel{}
	if got := img.Pixel(0); got != (Pixel{1, 2, 3, 255}) {
		t.Errorf("Pixel(0) = %v after editing the copy, want [1 2 3 255]", got)
	}
}

func TestImageTitle(t *testing.T) {
	img, err := Decode([]byte("P3\n640 0\n255\n"), "photos/cat.ppm")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := img.Title(), "photos/cat.ppm - 640 x 0"; got != want {
		t.Errorf("Title() = %q, want %q", got, want)
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	src.SetNRGBA(5, 5, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	src.SetNRGBA(6, 5, color.NRGBA{R: 1, G: 2, B: 3, A: 128})

	img := FromImage("copy", src)
	if img.Width() != 2 || img.Height() != 1 || img.MaxValue() != 255 {
		t.Fatalf("FromImage() = %dx%d max %d, want 2x1 max 255", img.Width(), img.Height(), img.MaxValue())
	}
	want := []Pixel{{200, 100, 50, 255}, {1, 2, 3, 255}}
	if diff := cmp.Diff(want, img.Pixels()); diff != "" {
		t.Errorf("pixels mismatch (-want +got):\n%s", diff)
	}
}
