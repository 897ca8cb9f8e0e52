// Package common defines shared sentinel errors and small byte helpers used
// across the ledger, the controller and the simulator. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Lookup errors.
	ErrorNotFound = errors.New("not found")

	// Registration errors.
	ErrorAlreadyExists = errors.New("already exists")
	ErrorValidation    = errors.New("validation error")

	// Ledger errors.
	ErrorInvalidAmount = errors.New("invalid amount")

	// ErrInvariantViolation marks a caller bug: an operation invoked outside
	// its legal state, or a record that must exist but does not. It is never
	// produced by bad user input.
	ErrInvariantViolation = errors.New("invariant violation")
)
