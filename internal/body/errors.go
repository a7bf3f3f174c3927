package body

import "errors"

// ErrMalformedRecord indicates a raw record is missing a required field or
// carries an unusable value. Such records are skipped, never fatal.
var ErrMalformedRecord = errors.New("malformed body record")

// MalformedRecordError records why a raw record was rejected.
type MalformedRecordError struct {
	Name   string // englishName if present
	Field  string // offending JSON field
	Reason string
}

// Error returns a human-readable description of the rejection.
func (e *MalformedRecordError) Error() string {
	name := e.Name
	if name == "" {
		name = "<unnamed>"
	}
	return "body " + name + ": " + e.Field + ": " + e.Reason
}

// Unwrap returns ErrMalformedRecord for use with errors.Is.
func (e *MalformedRecordError) Unwrap() error {
	return ErrMalformedRecord
}
