package point

import "fmt"

// Extend consumes p and returns a point holding p's coordinates followed by
// values.
func Extend[T any](p *Point[T], values ...T) *Point[T] {
	p.mustLive()
	checkDims(len(p.coords) + len(values))
	coords := p.take()
	out := make([]T, 0, len(coords)+len(values))
	out = append(out, coords...)
	out = append(out, values...)
	return &Point[T]{coords: out}
}

// Contract consumes p and returns a point holding its first n coordinates.
// It panics when n is zero or larger than p's dimension.
func Contract[T any](p *Point[T], n int) *Point[T] {
	p.mustLive()
	if n > len(p.coords) {
		panic(fmt.Errorf("%w: cannot contract %d dimensions to %d", ErrDimsMismatch, len(p.coords), n))
	}
	checkDims(n)
	coords := p.take()
	return &Point[T]{coords: append([]T(nil), coords[:n]...)}
}

// ContractBy consumes p and returns a point without its last k coordinates.
// It panics when k is negative or would leave no coordinates.
func ContractBy[T any](p *Point[T], k int) *Point[T] {
	p.mustLive()
	if k < 0 || k > len(p.coords) {
		panic(fmt.Errorf("%w: cannot drop %d of %d dimensions", ErrDimsMismatch, k, len(p.coords)))
	}
	return Contract(p, len(p.coords)-k)
}
