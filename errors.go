package qprep

import "errors"

var (
	// ErrInvalidInput is returned when the caller supplies the wrong number of
	// amplitudes, an unsupported qubit count, or text that is not a number.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidState is returned when a vector cannot be normalized because
	// its norm is zero (or not finite).
	ErrInvalidState = errors.New("invalid state")
)
