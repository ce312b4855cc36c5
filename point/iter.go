package point

import "iter"

// All yields (index, value) pairs in ascending index order. Ranging over the
// sequence after the point was consumed panics with ErrConsumed.
func (p *Point[T]) All() iter.Seq2[int, T] {
	p.mustLive()
	return func(yield func(int, T) bool) {
		p.mustLive()
		coords := p.coords
		for i, v := range coords {
			if i > 0 {
				p.mustLive()
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values yields the coordinates in ascending index order. Like All, it panics
// with ErrConsumed once the point has been consumed.
func (p *Point[T]) Values() iter.Seq[T] {
	p.mustLive()
	return func(yield func(T) bool) {
		p.mustLive()
		coords := p.coords
		for i, v := range coords {
			if i > 0 {
				p.mustLive()
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Refs yields a pointer to each coordinate in ascending index order so the
// caller can update values in place.
func (p *Point[T]) Refs() iter.Seq[*T] {
	p.mustLive()
	return func(yield func(*T) bool) {
		p.mustLive()
		coords := p.coords
		for i := range coords {
			if i > 0 {
				p.mustLive()
			}
			if !yield(&coords[i]) {
				return
			}
		}
	}
}

// IntoValues consumes the point and returns a one-shot sequence over its
// coordinates. Ranging over the sequence a second time yields nothing.
func (p *Point[T]) IntoValues() iter.Seq[T] {
	coords := p.take()
	return func(yield func(T) bool) {
		owned := coords
		coords = nil
		for _, v := range owned {
			if !yield(v) {
				return
			}
		}
	}
}
