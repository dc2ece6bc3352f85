package bleed

import (
	"fmt"
	"strings"
)

// Edge identifies one side of an image. The canonical form is lowercase.
type Edge string

// The four accepted edges.
const (
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
)

// ParseEdge converts a case-insensitive edge name to its canonical Edge.
func ParseEdge(s string) (Edge, error) {
	switch e := Edge(strings.ToLower(s)); e {
	case EdgeTop, EdgeBottom, EdgeLeft, EdgeRight:
		return e, nil
	default:
		return "", fmt.Errorf("%w: edge must be one of top, bottom, left, right; got %q", ErrInvalidArgument, s)
	}
}

// CropStrategy selects which axis's pixel density governs the conversion
// from physical units to pixels when the source image's pixels aren't square.
type CropStrategy string

const (
	// StrategySmaller converts with the lower of the two densities, so the
	// pixel-space bleed never exceeds the requested physical area on the
	// denser axis. This is the safe default: no source content is cropped.
	StrategySmaller CropStrategy = "smaller"

	// StrategyLarger converts with the higher of the two densities, so the
	// bleed fully covers the requested physical area even on the sparser
	// axis, at the cost of possible extra mirrored pixels.
	StrategyLarger CropStrategy = "larger"
)

// ParseCropStrategy converts a case-insensitive strategy name to its
// canonical CropStrategy.
func ParseCropStrategy(s string) (CropStrategy, error) {
	switch cs := CropStrategy(strings.ToLower(s)); cs {
	case StrategySmaller, StrategyLarger:
		return cs, nil
	default:
		return "", fmt.Errorf("%w: crop strategy must be %q or %q; got %q", ErrInvalidArgument, StrategySmaller, StrategyLarger, s)
	}
}
