package point

import (
	"errors"
	"fmt"
)

var (
	// ErrBadIndex reports an index outside [0, Dims()).
	ErrBadIndex = errors.New("point: index out of range")

	// ErrZeroDims reports an attempt to build a point without coordinates.
	ErrZeroDims = errors.New("point: zero dimensions")

	// ErrDimsMismatch reports inputs whose length does not match the point.
	ErrDimsMismatch = errors.New("point: dimension mismatch")

	// ErrConsumed reports use of a point after a consuming call.
	ErrConsumed = errors.New("point: use of consumed point")
)

// ModifierError wraps a failure returned by a modifier together with the
// index it was applied to.
type ModifierError struct {
	Index int
	Err   error
}

func (e *ModifierError) Error() string {
	return fmt.Sprintf("point: modifier failed at index %d: %v", e.Index, e.Err)
}

func (e *ModifierError) Unwrap() error { return e.Err }

func badIndex(index, dims int) error {
	return fmt.Errorf("%w: %d not in [0,%d)", ErrBadIndex, index, dims)
}

func mismatch(what string, got, want int) error {
	return fmt.Errorf("%w: %s has %d values, point has %d", ErrDimsMismatch, what, got, want)
}
