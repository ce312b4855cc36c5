package point

import "fmt"

// Point1 is a one dimensional point with an x accessor.
type Point1[T any] struct{ *Point[T] }

// Point2 is a two dimensional point with x and y accessors.
type Point2[T any] struct{ *Point[T] }

// Point3 is a three dimensional point with x, y and z accessors.
type Point3[T any] struct{ *Point[T] }

// Point4 is a four dimensional point with x, y, z and w accessors.
type Point4[T any] struct{ *Point[T] }

func New1[T any](x T) Point1[T] { return Point1[T]{New(x)} }

func New2[T any](x, y T) Point2[T] { return Point2[T]{New(x, y)} }

func New3[T any](x, y, z T) Point3[T] { return Point3[T]{New(x, y, z)} }

func New4[T any](x, y, z, w T) Point4[T] { return Point4[T]{New(x, y, z, w)} }

// As1 wraps p, which must have exactly one dimension. The wrapper shares p's
// storage.
func As1[T any](p *Point[T]) Point1[T] {
	mustDims(p, 1)
	return Point1[T]{p}
}

// As2 wraps p, which must have exactly two dimensions.
func As2[T any](p *Point[T]) Point2[T] {
	mustDims(p, 2)
	return Point2[T]{p}
}

// As3 wraps p, which must have exactly three dimensions.
func As3[T any](p *Point[T]) Point3[T] {
	mustDims(p, 3)
	return Point3[T]{p}
}

// As4 wraps p, which must have exactly four dimensions.
func As4[T any](p *Point[T]) Point4[T] {
	mustDims(p, 4)
	return Point4[T]{p}
}

func (p Point1[T]) X() T { return p.At(int(X)) }

func (p Point1[T]) SetX(v T) { p.Set(int(X), v) }

func (p Point2[T]) X() T { return p.At(int(X)) }
func (p Point2[T]) Y() T { return p.At(int(Y)) }

func (p Point2[T]) SetX(v T) { p.Set(int(X), v) }
func (p Point2[T]) SetY(v T) { p.Set(int(Y), v) }

func (p Point3[T]) X() T { return p.At(int(X)) }
func (p Point3[T]) Y() T { return p.At(int(Y)) }
func (p Point3[T]) Z() T { return p.At(int(Z)) }

func (p Point3[T]) SetX(v T) { p.Set(int(X), v) }
func (p Point3[T]) SetY(v T) { p.Set(int(Y), v) }
func (p Point3[T]) SetZ(v T) { p.Set(int(Z), v) }

func (p Point4[T]) X() T { return p.At(int(X)) }
func (p Point4[T]) Y() T { return p.At(int(Y)) }
func (p Point4[T]) Z() T { return p.At(int(Z)) }
func (p Point4[T]) W() T { return p.At(int(W)) }

func (p Point4[T]) SetX(v T) { p.Set(int(X), v) }
func (p Point4[T]) SetY(v T) { p.Set(int(Y), v) }
func (p Point4[T]) SetZ(v T) { p.Set(int(Z), v) }
func (p Point4[T]) SetW(v T) { p.Set(int(W), v) }

func mustDims[T any](p *Point[T], n int) {
	if got := p.Dims(); got != n {
		panic(fmt.Errorf("%w: point has %d dimensions, wrapper needs %d", ErrDimsMismatch, got, n))
	}
}
