// Package rasterize turns an input file's bytes into in-memory images.
//
// Raster formats (PNG, JPEG, GIF) decode to a single image. Anything the
// image decoders don't recognize is parsed as a PDF and every page is
// rendered at the requested resolution, one image per page.
package rasterize

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	"image/png"

	"github.com/novvoo/go-poppler/pkg/pdf"
)

// Pages decodes data into one image per page.
//
// A recognized raster image yields exactly one page. Unrecognized bytes are
// parsed as a PDF and rendered page by page at dpi. If the bytes are
// neither, the returned error carries both failure causes; a rendering
// failure on any page fails the whole call.
func Pages(data []byte, dpi int) ([]image.Image, error) {
	img, _, decodeErr := image.Decode(bytes.NewReader(data))
	if decodeErr == nil {
		return []image.Image{img}, nil
	}

	doc, pdfErr := pdf.NewDocument(data)
	if pdfErr != nil {
		return nil, fmt.Errorf("input is neither a raster image (%v) nor a PDF: %w", decodeErr, pdfErr)
	}
	defer doc.Close()

	renderer := pdf.NewPageRenderer(doc, pdf.RenderOptions{
		DPI:    float64(dpi),
		Format: "png",
	})

	rendered, err := renderer.RenderPages(1, doc.NumPages())
	if err != nil {
		return nil, fmt.Errorf("failed to render PDF pages: %w", err)
	}

	pages := make([]image.Image, 0, len(rendered))
	for _, page := range rendered {
		img, err := png.Decode(bytes.NewReader(page.Data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode rendered page %d: %w", page.PageNum, err)
		}
		pages = append(pages, img)
	}
	return pages, nil
}
