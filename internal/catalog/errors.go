package catalog

import "errors"

var (
	// ErrEmptyCatalog indicates no body survived normalization, so no game
	// can start.
	ErrEmptyCatalog = errors.New("catalog has no usable bodies")
	// ErrExhaustedPool indicates Draw gave up looking for a non-zero body.
	// It points at degenerate source data and is not recoverable.
	ErrExhaustedPool = errors.New("could not draw a usable body")
)
