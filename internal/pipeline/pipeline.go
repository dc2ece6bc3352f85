// Package pipeline orchestrates a bleed-generation run: rasterize the
// input, process each page through the bleed core, and write the results.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/ironsheep/cardbleed/internal/bleed"
	"github.com/ironsheep/cardbleed/internal/rasterize"
)

// Options configures a single run.
type Options struct {
	// Width and Height give the physical size of the source card in any
	// consistent unit. Required.
	Width  float64
	Height float64

	// BleedWidth and BleedHeight give the physical size of the output,
	// bounded by [1x, 3x] of Width and Height. Zero means no added bleed
	// on that axis.
	BleedWidth  float64
	BleedHeight float64

	// CropStrategy picks the governing pixel density when the source's
	// pixels aren't square.
	CropStrategy bleed.CropStrategy

	// DPI is the rendering resolution for PDF inputs. Ignored for raster
	// inputs, whose pixel dimensions are taken as-is.
	DPI int

	// Strip lists edges to shave one pixel from before bleed generation.
	Strip []bleed.Edge

	// InputFile is a raster image or a PDF; OutputDir receives one PNG per
	// page and is created if absent.
	InputFile string
	OutputDir string
}

// Runner processes input files into bleed images.
type Runner struct {
	log *zap.SugaredLogger
}

// New creates a Runner that reports progress through log.
func New(log *zap.SugaredLogger) *Runner {
	return &Runner{log: log}
}

// Run processes every page of the input sequentially. The first failure
// aborts the run; pages already written stay on disk.
func (r *Runner) Run(opts Options) error {
	data, err := os.ReadFile(opts.InputFile)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	pages, err := rasterize.Pages(data, opts.DPI)
	if err != nil {
		return err
	}
	r.log.Infof("processing %d page(s) from %s", len(pages), opts.InputFile)

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	padWidth := len(strconv.Itoa(len(pages)))
	for i, page := range pages {
		name := filenameFor(i, padWidth)

		img, err := bleed.StripPixels(page, opts.Strip...)
		if err != nil {
			return err
		}

		out, err := bleed.AddDimensionedBleed(img, opts.Width, opts.Height,
			opts.BleedWidth, opts.BleedHeight, opts.CropStrategy)
		if err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}

		path := filepath.Join(opts.OutputDir, name)
		if err := imaging.Save(out, path); err != nil {
			return fmt.Errorf("failed to save %s: %w", path, err)
		}
		r.log.Infof("wrote %s (%dx%d)", path, out.Bounds().Dx(), out.Bounds().Dy())
	}
	return nil
}
