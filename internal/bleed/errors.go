package bleed

import "errors"

// ErrInvalidArgument signals a validation failure: an unknown edge or crop
// strategy name, or a bleed size outside the supported range. All such
// errors are wrapped with details about the offending value and the bound.
var ErrInvalidArgument = errors.New("invalid argument")
