// Package bleed builds print bleed borders for card images.
//
// A bleed border extends a card outward with mirrored copies of its own
// content so that physical trimming tolerance never exposes unprinted paper.
// The package works on standard Go image.Image values and never mutates its
// inputs; every operation returns a freshly allocated image.
//
// # Pipeline
//
// The operations compose in a fixed order:
//
//  1. StripPixels (optional): discard one row/column of anti-aliased or
//     cut-line pixels from selected edges.
//  2. Frill: tile the image 3x3 with mirror reflections of itself, so that
//     every interior seam is mirror-continuous.
//  3. AddBleed: crop a window centered on the frill's middle cell to the
//     requested pixel size.
//  4. AddDimensionedBleed: same as AddBleed, but the request is given in
//     physical units (inches, millimeters, anything consistent) and
//     converted to pixels using the source image's pixel density.
//
// # Coordinate System
//
// All coordinates are 0-based with the origin at the top-left corner,
// X increasing rightward and Y increasing downward.
//
// # Error Handling
//
// Validation failures (unknown edge names, unknown crop strategies, bleed
// sizes outside the [1x, 3x] range) wrap ErrInvalidArgument and identify the
// offending value and the violated bound. There are no recoverable errors:
// every failure aborts processing of the current image.
package bleed
