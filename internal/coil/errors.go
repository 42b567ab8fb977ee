package coil

import "errors"

// Domain errors for coil geometry validation.
var (
	// ErrRadius indicates a non-positive coil radius.
	ErrRadius = errors.New("coil: radius must be positive")

	// ErrLength indicates a non-positive coil length.
	ErrLength = errors.New("coil: length must be positive")

	// ErrTurns indicates a turn count below one.
	ErrTurns = errors.New("coil: turns must be at least 1")
)
