package entity

import "errors"

var (
	// ErrFormNotFound is returned when no form directory or definition exists
	// for a FormReference.
	ErrFormNotFound = errors.New("form not found")

	// ErrInvalidReference is returned for references with missing ids or
	// path segments that would escape the forms tree.
	ErrInvalidReference = errors.New("invalid form reference")
)
