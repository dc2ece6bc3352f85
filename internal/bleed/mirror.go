package bleed

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// mirrorRight returns the image plus its horizontal mirror attached across
// the right edge: [img | FlipH(img)]. The result is twice as wide.
func mirrorRight(img image.Image) *image.NRGBA {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	out := imaging.New(2*w, h, color.NRGBA{})
	out = imaging.Paste(out, img, image.Pt(0, 0))
	out = imaging.Paste(out, imaging.FlipH(img), image.Pt(w, 0))
	return out
}

// edgeRotations maps each non-right edge to the rotation applied before and
// after the mirror-right primitive. Rotating the image so the target edge
// becomes the right edge, mirroring, and rotating back yields the mirror
// across that edge. All rotations are counter-clockwise.
var edgeRotations = map[Edge]struct {
	pre, post func(image.Image) *image.NRGBA
}{
	EdgeTop:    {imaging.Rotate270, imaging.Rotate90},
	EdgeBottom: {imaging.Rotate90, imaging.Rotate270},
	EdgeLeft:   {imaging.Rotate180, imaging.Rotate180},
}

// mirrorAcross mirrors across a known-valid edge. Callers holding an Edge
// produced by ParseEdge (or one of the Edge constants) use this directly.
func mirrorAcross(img image.Image, edge Edge) *image.NRGBA {
	if edge == EdgeRight {
		return mirrorRight(img)
	}
	rot := edgeRotations[edge]
	return rot.post(mirrorRight(rot.pre(img)))
}

// MirrorAcrossEdge returns the image plus its mirror attached across the
// named edge. The result doubles along the axis perpendicular to the edge
// and is unchanged along the parallel axis.
//
// The edge name is case-insensitive; anything outside top, bottom, left,
// right fails with ErrInvalidArgument.
func MirrorAcrossEdge(img image.Image, edge string) (*image.NRGBA, error) {
	e, err := ParseEdge(edge)
	if err != nil {
		return nil, err
	}
	return mirrorAcross(img, e), nil
}
