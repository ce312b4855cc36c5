package point

import (
	"fmt"
	"math"
	"strings"
)

// MaxDims is the largest number of coordinates a point may hold.
const MaxDims = math.MaxUint32

// Point holds exactly Dims() coordinates of type T. The dimension is fixed when
// the point is built; only the coordinate values change afterwards.
//
// Consuming calls (the Apply family, IntoValues, IntoSlice, Extend, Contract)
// take ownership of the coordinates and leave the receiver consumed. Any
// further use of a consumed point panics with ErrConsumed.
type Point[T any] struct {
	coords   []T
	consumed bool
}

// New returns a point holding a copy of values.
func New[T any](values ...T) *Point[T] {
	checkDims(len(values))
	coords := make([]T, len(values))
	copy(coords, values)
	return &Point[T]{coords: coords}
}

// FromSlice returns a point holding a copy of the first n values of src.
// It panics when src holds fewer than n values.
func FromSlice[T any](n int, src []T) *Point[T] {
	checkDims(n)
	if len(src) < n {
		panic(fmt.Errorf("%w: source has %d values, need %d", ErrDimsMismatch, len(src), n))
	}
	return New(src[:n]...)
}

// TryFromSlice returns a point holding a copy of src, which must contain
// exactly n values.
func TryFromSlice[T any](src []T, n int) (*Point[T], error) {
	if n == 0 {
		return nil, ErrZeroDims
	}
	if len(src) != n {
		return nil, mismatch("source", len(src), n)
	}
	return New(src...), nil
}

// Fill returns a point of n dimensions with every coordinate set to value.
func Fill[T any](n int, value T) *Point[T] {
	checkDims(n)
	coords := make([]T, n)
	for i := range coords {
		coords[i] = value
	}
	return &Point[T]{coords: coords}
}

// Dims returns the number of coordinates.
func (p *Point[T]) Dims() int {
	p.mustLive()
	return len(p.coords)
}

// Consumed reports whether the point has been handed over to a consuming
// call. It is the only method that is safe on a consumed point.
func (p *Point[T]) Consumed() bool {
	return p != nil && p.consumed
}

// Clone returns an independent copy of the point.
func (p *Point[T]) Clone() *Point[T] {
	p.mustLive()
	return New(p.coords...)
}

// IntoSlice consumes the point and returns its coordinates.
func (p *Point[T]) IntoSlice() []T {
	return p.take()
}

// String formats the point as "(a, b, c)".
func (p *Point[T]) String() string {
	if p.Consumed() {
		return "(consumed)"
	}
	p.mustLive()
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range p.coords {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(')')
	return b.String()
}

// Equal reports whether a and b have the same dimension and coordinates.
func Equal[T comparable](a, b *Point[T]) bool {
	a.mustLive()
	b.mustLive()
	if len(a.coords) != len(b.coords) {
		return false
	}
	for i := range a.coords {
		if a.coords[i] != b.coords[i] {
			return false
		}
	}
	return true
}

// take hands the coordinates over to the caller and marks p consumed.
func (p *Point[T]) take() []T {
	p.mustLive()
	coords := p.coords
	p.coords = nil
	p.consumed = true
	return coords
}

func (p *Point[T]) mustLive() {
	if p == nil {
		panic(fmt.Errorf("%w: nil point", ErrConsumed))
	}
	if p.consumed {
		panic(ErrConsumed)
	}
	if len(p.coords) == 0 {
		panic(ErrZeroDims)
	}
}

func checkDims(n int) {
	if n <= 0 {
		panic(ErrZeroDims)
	}
	if uint64(n) > MaxDims {
		panic(fmt.Errorf("%w: %d dimensions exceed the limit of %d", ErrDimsMismatch, n, uint64(MaxDims)))
	}
}
