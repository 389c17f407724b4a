package convert

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	netpbm "github.com/lmittmann/ppm"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/ppm"
)

func testImage(t *testing.T) *ppm.Image {
	t.Helper()
	img, err := ppm.Decode([]byte("P3\n2 2\n255\n255 0 0 0 255 0\n0 0 255 10 20 30\n"), "quad.ppm")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	return img
}

// samePixels compares got with img scaled by zoom.
func samePixels(t *testing.T, img *ppm.Image, got image.Image, zoom int) {
	t.Helper()
	b := got.Bounds()
	if b.Dx() != int(img.Width())*zoom || b.Dy() != int(img.Height())*zoom {
		t.Fatalf("decoded size = %dx%d, want %dx%d", b.Dx(), b.Dy(), int(img.Width())*zoom, int(img.Height())*zoom)
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			want := color.RGBAModel.Convert(img.At(x/zoom, y/zoom)).(color.RGBA)
			have := color.RGBAModel.Convert(got.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			if have != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, have, want)
			}
		}
	}
}

func TestEncodeFormats(t *testing.T) {
	img := testImage(t)

	decoders := map[Format]func(io.Reader) (image.Image, error){
		FormatPNG:  png.Decode,
		FormatBMP:  bmp.Decode,
		FormatTIFF: tiff.Decode,
		FormatPPM:  netpbm.Decode,
		FormatP3: func(r io.Reader) (image.Image, error) {
			data, err := io.ReadAll(r)
			if err != nil {
				return nil, err
			}
			return ppm.Decode(data, "p3")
		},
	}

	for f, decode := range decoders {
		for _, zoom := range []int{1, 3} {
			var buf bytes.Buffer
			if err := Encode(&buf, img, f, zoom); err != nil {
				t.Fatalf("Encode(%v, zoom %d) error = %v", f, zoom, err)
			}
			got, err := decode(&buf)
			if err != nil {
				t.Fatalf("decode %v output: %v", f, err)
			}
			samePixels(t, img, got, zoom)
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	img := testImage(t)

	if err := Encode(io.Discard, img, FormatPNG, 0); !errors.Is(err, ErrInvalidZoom) {
		t.Errorf("zoom 0: err = %v, want ErrInvalidZoom", err)
	}
	if err := Encode(io.Discard, img, Format(42), 1); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("unknown format: err = %v, want ErrUnsupportedFormat", err)
	}

	empty, err := ppm.Decode([]byte("P3\n0 4\n255\n"), "empty")
	if err != nil {
		t.Fatal(err)
	}
	if err := Encode(io.Discard, empty, FormatPNG, 1); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("empty image: err = %v, want ErrEmptyImage", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"out.png", FormatPNG},
		{"OUT.PNG", FormatPNG},
		{"a/b.bmp", FormatBMP},
		{"scan.tif", FormatTIFF},
		{"scan.tiff", FormatTIFF},
		{"raw.ppm", FormatPPM},
		{"text.pnm", FormatP3},
		{"text.p3", FormatP3},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if err != nil || got != tt.want {
			t.Errorf("FormatFromPath(%q) = (%v, %v), want %v", tt.path, got, err, tt.want)
		}
	}

	for _, path := range []string{"image.jpg", "noext", ""} {
		if _, err := FormatFromPath(path); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("FormatFromPath(%q) err = %v, want ErrUnsupportedFormat", path, err)
		}
	}
}

func TestSave(t *testing.T) {
	img := testImage(t)
	path := filepath.Join(t.TempDir(), "out.png")

	if err := Save(path, img, 2); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	got, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	samePixels(t, img, got, 2)
}

func TestSaveLogsThroughPPMLogger(t *testing.T) {
	orig := ppm.Logger()
	t.Cleanup(func() { ppm.SetLogger(orig) })

	var buf bytes.Buffer
	ppm.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	path := filepath.Join(t.TempDir(), "out.bmp")
	if err := Save(path, testImage(t), 1); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"convert: saved", "format=bmp"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestSaveUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	if err := Save(path, testImage(t), 1); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save(.gif) err = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Save(.gif) left a file behind: %v", err)
	}
}

func TestZoomOne(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	got, err := Zoom(src, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got != image.Image(src) {
		t.Error("Zoom(src, 1) did not return src")
	}
}

func TestFormatString(t *testing.T) {
	if got := FormatTIFF.String(); got != "tiff" {
		t.Errorf("FormatTIFF.String() = %q, want tiff", got)
	}
	if got := Format(42).String(); got != "Format(42)" {
		t.Errorf("Format(42).String() = %q, want Format(42)", got)
	}
}
