package point

import "fmt"

// Get returns the coordinate at index, or false when index is out of range.
func (p *Point[T]) Get(index int) (T, bool) {
	p.mustLive()
	if index < 0 || index >= len(p.coords) {
		var zero T
		return zero, false
	}
	return p.coords[index], true
}

// Ref returns a pointer to the coordinate at index, or nil when index is out
// of range. The pointer must not be used after the point is consumed.
func (p *Point[T]) Ref(index int) *T {
	p.mustLive()
	if index < 0 || index >= len(p.coords) {
		return nil
	}
	return &p.coords[index]
}

// At returns the coordinate at index. It panics when index is out of range.
func (p *Point[T]) At(index int) T {
	p.mustLive()
	p.mustIndex(index)
	return p.coords[index]
}

// Set stores value at index. It panics when index is out of range.
func (p *Point[T]) Set(index int, value T) {
	p.mustLive()
	p.mustIndex(index)
	p.coords[index] = value
}

func (p *Point[T]) mustIndex(index int) {
	if index < 0 || index >= len(p.coords) {
		panic(badIndex(index, len(p.coords)))
	}
}

// Slice returns a copy of the coordinates in [from, to). It panics with
// ErrBadIndex unless 0 <= from <= to <= Dims().
func (p *Point[T]) Slice(from, to int) []T {
	p.mustLive()
	switch {
	case from < 0 || from > len(p.coords):
		panic(badIndex(from, len(p.coords)+1))
	case to < from || to > len(p.coords):
		panic(fmt.Errorf("%w: range [%d,%d) not within [0,%d)", ErrBadIndex, from, to, len(p.coords)))
	}
	return append([]T(nil), p.coords[from:to]...)
}
