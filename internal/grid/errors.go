package grid

import "errors"

// Domain errors for grid operations.
var (
	// ErrInvalidDomain indicates a non-positive or mismatched domain length.
	ErrInvalidDomain = errors.New("grid: domain length must be positive")

	// ErrIndexOutOfContract indicates an index more than one step outside
	// [0, l). Wrap applies a single periodic correction and does not
	// generalize; such indices are a caller bug, not a wraparound case.
	ErrIndexOutOfContract = errors.New("grid: index outside wrap contract [-1, l]")
)
