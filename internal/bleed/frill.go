package bleed

import (
	"image"

	"github.com/disintegration/imaging"
)

// Frill tiles the image 3x3 with mirror reflections of itself. The result
// is exactly (3W, 3H) for a WxH source, the center WxH cell is the source
// pixel-for-pixel, and every interior seam is mirror-continuous: pixels at
// equal offsets on either side of a seam are reflections of each other.
//
// The construction mirrors across the left and right edges and crops to a
// (3W, H) strip, then mirrors that strip across the top and bottom edges
// and crops to (3W, 3H).
func Frill(img image.Image) *image.NRGBA {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	out := mirrorAcross(img, EdgeLeft)
	out = mirrorAcross(out, EdgeRight)
	out = imaging.Crop(out, image.Rect(0, 0, 3*w, h))

	out = mirrorAcross(out, EdgeTop)
	out = mirrorAcross(out, EdgeBottom)
	return imaging.Crop(out, image.Rect(0, 0, 3*w, 3*h))
}
