package bleed

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// AddBleed surrounds the image with a mirrored bleed border so that the
// result is exactly width x height pixels with the source centered in it.
//
// A width or height of 0 defaults to the corresponding source dimension
// (no border on that axis). Each requested dimension must lie between 1x
// and 3x the source dimension; violations fail with ErrInvalidArgument.
//
// The border is split evenly between the two sides of each axis using
// floor division, so an odd size difference leaves the extra pixel on the
// right or bottom side.
func AddBleed(img image.Image, width, height int) (*image.NRGBA, error) {
	srcW := img.Bounds().Dx()
	srcH := img.Bounds().Dy()

	if width == 0 {
		width = srcW
	}
	if height == 0 {
		height = srcH
	}

	if err := checkBleedBounds("width", width, srcW); err != nil {
		return nil, err
	}
	if err := checkBleedBounds("height", height, srcH); err != nil {
		return nil, err
	}

	borderW := (width - srcW) / 2
	borderH := (height - srcH) / 2

	x0 := srcW - borderW
	y0 := srcH - borderH
	return imaging.Crop(Frill(img), image.Rect(x0, y0, x0+width, y0+height)), nil
}

func checkBleedBounds(name string, dim, src int) error {
	if dim < src {
		return fmt.Errorf("%w: bleed %s %d is smaller than the source %s %d", ErrInvalidArgument, name, dim, name, src)
	}
	if dim > 3*src {
		return fmt.Errorf("%w: bleed %s %d exceeds three times the source %s %d", ErrInvalidArgument, name, dim, name, src)
	}
	return nil
}

// AddDimensionedBleed surrounds the image with a mirrored bleed border
// specified in physical units rather than pixels.
//
// width and height give the physical size of the source image in any
// consistent positive unit. bleedWidth and bleedHeight give the physical
// size of the result; a value of 0 defaults to the corresponding source
// dimension. Each must lie between 1x and 3x the source dimension.
//
// When the source's horizontal and vertical pixel densities differ, the
// strategy picks which one converts the bleed size to pixels: see
// StrategySmaller and StrategyLarger. Converted pixel counts are truncated
// to integers before delegating to AddBleed.
func AddDimensionedBleed(img image.Image, width, height, bleedWidth, bleedHeight float64, strategy CropStrategy) (*image.NRGBA, error) {
	cs, err := ParseCropStrategy(string(strategy))
	if err != nil {
		return nil, err
	}

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: source dimensions must be positive; got %g x %g", ErrInvalidArgument, width, height)
	}

	if bleedWidth == 0 {
		bleedWidth = width
	}
	if bleedHeight == 0 {
		bleedHeight = height
	}

	if err := checkDimensionedBounds("width", bleedWidth, width); err != nil {
		return nil, err
	}
	if err := checkDimensionedBounds("height", bleedHeight, height); err != nil {
		return nil, err
	}

	ppiW := float64(img.Bounds().Dx()) / width
	ppiH := float64(img.Bounds().Dy()) / height

	ppi := ppiW
	switch cs {
	case StrategySmaller:
		if ppiH < ppi {
			ppi = ppiH
		}
	case StrategyLarger:
		if ppiH > ppi {
			ppi = ppiH
		}
	}

	return AddBleed(img, int(bleedWidth*ppi), int(bleedHeight*ppi))
}

func checkDimensionedBounds(name string, dim, src float64) error {
	if dim < src {
		return fmt.Errorf("%w: bleed %s %g is smaller than the source %s %g", ErrInvalidArgument, name, dim, name, src)
	}
	if dim > 3*src {
		return fmt.Errorf("%w: bleed %s %g exceeds three times the source %s %g", ErrInvalidArgument, name, dim, name, src)
	}
	return nil
}
