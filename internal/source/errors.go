package source

import "errors"

var (
	// ErrUnexpectedStatus is returned when the API answers with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
	// ErrUnsupportedFormat is returned for snapshot files that are neither
	// JSON nor TOML.
	ErrUnsupportedFormat = errors.New("unsupported snapshot format")
	// ErrUnknownMode is returned by ParseMode.
	ErrUnknownMode = errors.New("source must be website or file")
)
