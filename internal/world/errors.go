package world

import "errors"

var (
	// ErrInvalidDimensions is returned when a grid size is even or too small.
	ErrInvalidDimensions = errors.New("invalid dungeon dimensions")

	// ErrInvalidOptions is returned when generator tunables are out of range.
	ErrInvalidOptions = errors.New("invalid generator options")

	// ErrInvariantViolation signals a bug in carving or region bookkeeping.
	// It is never expected for valid input.
	ErrInvariantViolation = errors.New("dungeon generation invariant violated")
)
