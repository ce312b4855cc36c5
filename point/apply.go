package point

// Modifier computes a new coordinate from an existing one.
type Modifier[T, U any] func(T) (U, error)

// PairModifier computes a new coordinate from a coordinate of the point and
// the matching value of a second input.
type PairModifier[T, V, U any] func(T, V) (U, error)

// Apply consumes p and returns a point holding modifier(p[i]) for every index
// in ascending order. The first modifier error stops the walk and is returned
// as a *ModifierError; no partial point is returned.
//
//	p, err := point.Apply(point.New(0, 1, 2), func(v int) (float64, error) {
//		return float64(v) / 2, nil
//	})
func Apply[T, U any](p *Point[T], modifier Modifier[T, U]) (*Point[U], error) {
	coords := p.take()
	out := make([]U, len(coords))
	for i, v := range coords {
		u, err := modifier(v)
		if err != nil {
			return nil, &ModifierError{Index: i, Err: err}
		}
		out[i] = u
	}
	return &Point[U]{coords: out}, nil
}

// ApplyDims consumes p and returns a point in which only the coordinates at
// dims were replaced by modifier. Indexes are processed in the order given and
// a repeated index is modified again.
//
// An index outside [0, Dims()) fails the call with ErrBadIndex as soon as it
// is reached: the modifier is not called for it or anything after it, but it
// has already run for the indexes listed before it. Use CheckDims first when
// all indexes must be validated before any modifier runs.
func ApplyDims[T any](p *Point[T], dims []int, modifier Modifier[T, T]) (*Point[T], error) {
	coords := p.take()
	for _, i := range dims {
		if i < 0 || i >= len(coords) {
			return nil, badIndex(i, len(coords))
		}
		v, err := modifier(coords[i])
		if err != nil {
			return nil, &ModifierError{Index: i, Err: err}
		}
		coords[i] = v
	}
	return &Point[T]{coords: coords}, nil
}

// CheckDims returns ErrBadIndex for the first index in dims outside [0, n).
func CheckDims(n int, dims []int) error {
	for _, i := range dims {
		if i < 0 || i >= n {
			return badIndex(i, n)
		}
	}
	return nil
}

// ApplyVals consumes p and returns a point holding modifier(p[i], values[i])
// for every index in ascending order. values must hold exactly Dims() entries;
// a length mismatch panics with ErrDimsMismatch.
func ApplyVals[T, V, U any](p *Point[T], values []V, modifier PairModifier[T, V, U]) (*Point[U], error) {
	p.mustLive()
	if len(values) != len(p.coords) {
		panic(mismatch("values", len(values), len(p.coords)))
	}
	return zip(p.take(), values, modifier)
}

// ApplyPoint consumes both p and other and returns a point holding
// modifier(p[i], other[i]) for every index in ascending order. The points must
// have the same dimension; a mismatch panics with ErrDimsMismatch.
func ApplyPoint[T, V, U any](p *Point[T], other *Point[V], modifier PairModifier[T, V, U]) (*Point[U], error) {
	p.mustLive()
	other.mustLive()
	if len(other.coords) != len(p.coords) {
		panic(mismatch("other point", len(other.coords), len(p.coords)))
	}
	return zip(p.take(), other.take(), modifier)
}

// Apply is the same-type method form of the package level Apply, convenient
// for chaining.
func (p *Point[T]) Apply(modifier Modifier[T, T]) (*Point[T], error) {
	return Apply(p, modifier)
}

// ApplyDims is the method form of the package level ApplyDims.
func (p *Point[T]) ApplyDims(dims []int, modifier Modifier[T, T]) (*Point[T], error) {
	return ApplyDims(p, dims, modifier)
}

func zip[T, V, U any](coords []T, values []V, modifier PairModifier[T, V, U]) (*Point[U], error) {
	out := make([]U, len(coords))
	for i, v := range coords {
		u, err := modifier(v, values[i])
		if err != nil {
			return nil, &ModifierError{Index: i, Err: err}
		}
		out[i] = u
	}
	return &Point[U]{coords: out}, nil
}
