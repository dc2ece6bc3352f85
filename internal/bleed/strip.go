package bleed

import (
	"image"

	"github.com/disintegration/imaging"
)

// StripPixels removes exactly one row or column of pixels from each named
// edge. Duplicate edges collapse; the crop box is computed once, so naming
// opposite edges shrinks that axis by two. With no edges the result is a
// copy equivalent to the input.
//
// Unknown edge values fail with ErrInvalidArgument.
//
// Card scans often carry a line of anti-aliased or cut-line pixels at the
// border; stripping them before Frill keeps the artifact out of the
// mirrored bleed.
func StripPixels(img image.Image, edges ...Edge) (*image.NRGBA, error) {
	var left, top, right, bottom int

	for _, edge := range edges {
		e, err := ParseEdge(string(edge))
		if err != nil {
			return nil, err
		}
		switch e {
		case EdgeLeft:
			left = 1
		case EdgeTop:
			top = 1
		case EdgeRight:
			right = 1
		case EdgeBottom:
			bottom = 1
		}
	}

	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	return imaging.Crop(img, image.Rect(left, top, w-right, h-bottom)), nil
}
