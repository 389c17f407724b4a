// Command ppmview shows an ASCII PPM (P3) image in a window, or converts it.
//
// Usage:
//
//	ppmview [flags] FILE.ppm
//
// With --info the header is printed instead; with --export the image is
// written to another file (format from the extension) and no window opens.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/ppm"
	"github.com/gogpu/ppm/internal/convert"
	"github.com/gogpu/ppm/viewer"
)

const (
	// Flags.
	flagDebug       = "debug"
	flagFlush       = "flush"
	flagScaleMaxval = "scale-maxval"
	flagZoom        = "zoom"
	flagSmooth      = "smooth"
	flagExport      = "export"
	flagInfo        = "info"
)

var errMissingFile = errors.New("expected exactly one .ppm file argument")

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "ppmview: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "ppmview",
		Usage:     "view an ASCII PPM (P3) image",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "enable debug logging",
			},
			&cli.StringFlag{
				Name:  flagFlush,
				Value: ppm.FlushAtEOF.String(),
				Usage: "when to emit a partial pixel: `eof` or line",
			},
			&cli.BoolFlag{
				Name:  flagScaleMaxval,
				Usage: "rescale samples from [0,maxval] to [0,255]",
			},
			&cli.IntFlag{
				Name:  flagZoom,
				Value: 1,
				Usage: "integer magnification for the window and exports",
			},
			&cli.BoolFlag{
				Name:  flagSmooth,
				Usage: "start the viewer with bilinear filtering",
			},
			&cli.StringFlag{
				Name:  flagExport,
				Usage: "write the image to `FILE` (.png, .bmp, .tif, .ppm, .pnm) instead of showing it",
			},
			&cli.BoolFlag{
				Name:  flagInfo,
				Usage: "print the image header and exit",
			},
		},
		Before: func(c *cli.Context) error {
			level := slog.LevelWarn
			if c.Bool(flagDebug) {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(errWriter(c), &slog.HandlerOptions{Level: level}))
			ppm.SetLogger(logger)
			gg.SetLogger(logger)
			return nil
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return errMissingFile
	}

	policy, ok := ppm.ParseFlushPolicy(c.String(flagFlush))
	if !ok {
		return fmt.Errorf("invalid --%s %q: want eof or line", flagFlush, c.String(flagFlush))
	}

	img, err := ppm.DecodeFile(c.Args().First(),
		ppm.WithFlushPolicy(policy),
		ppm.WithMaxValueScaling(c.Bool(flagScaleMaxval)))
	if err != nil {
		return err
	}

	if c.Bool(flagInfo) {
		return printInfo(c.App.Writer, img)
	}

	zoom := c.Int(flagZoom)
	if out := c.String(flagExport); out != "" {
		return convert.Save(out, img, zoom)
	}

	v, err := viewer.New(img, viewer.Options{Zoom: zoom, Smooth: c.Bool(flagSmooth)})
	if err != nil {
		return err
	}
	return v.Run()
}

// printInfo writes a short header summary with grouped digits.
func printInfo(w io.Writer, img *ppm.Image) error {
	p := message.NewPrinter(language.English)
	_, err := p.Fprintf(w, "%s\nmax value: %d\npixels: %d\n", img.Title(), img.MaxValue(), img.Len())
	return err
}

func errWriter(c *cli.Context) io.Writer {
	if c.App.ErrWriter != nil {
		return c.App.ErrWriter
	}
	return os.Stderr
}
