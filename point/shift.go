package point

import "golang.org/x/exp/constraints"

// Number is the set of element types that support in-place shifting.
type Number interface {
	constraints.Integer | constraints.Float
}

// Shift adds delta to the coordinate at axis. It panics when axis is out of
// range for p.
func Shift[T Number](p *Point[T], axis Axis, delta T) {
	if r := p.Ref(int(axis)); r != nil {
		*r += delta
		return
	}
	panic(badIndex(int(axis), p.Dims()))
}

func ShiftX[T Number](p Point1[T], delta T) { Shift(p.Point, X, delta) }

func ShiftXY[T Number](p Point2[T], dx, dy T) {
	Shift(p.Point, X, dx)
	Shift(p.Point, Y, dy)
}

func ShiftXYZ[T Number](p Point3[T], dx, dy, dz T) {
	Shift(p.Point, X, dx)
	Shift(p.Point, Y, dy)
	Shift(p.Point, Z, dz)
}

func ShiftXYZW[T Number](p Point4[T], dx, dy, dz, dw T) {
	Shift(p.Point, X, dx)
	Shift(p.Point, Y, dy)
	Shift(p.Point, Z, dz)
	Shift(p.Point, W, dw)
}
