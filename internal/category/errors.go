package category

import "errors"

var (
	// ErrInvalidConfiguration indicates no category is enabled. Callers should
	// ask for settings again rather than start a round.
	ErrInvalidConfiguration = errors.New("at least one category must be enabled")
	// ErrExhaustedCategories indicates Next was called on an empty selector,
	// which means a used category was never released.
	ErrExhaustedCategories = errors.New("no categories left to select")
	// ErrUnknownCategory indicates a category name could not be resolved.
	ErrUnknownCategory = errors.New("unknown category")
)
