package strview

import "iter"

// All returns an iterator over index-unit pairs in storage order,
// visiting each viewed unit exactly once. Obtaining the iterator is
// side-effect-free; it can be ranged over repeatedly.
func (v View[U]) All() iter.Seq2[int, U] {
	return func(yield func(int, U) bool) {
		for i, u := range v.data {
			if !yield(i, u) {
				return
			}
		}
	}
}

// Values returns an iterator over the viewed units in storage order.
func (v View[U]) Values() iter.Seq[U] {
	return func(yield func(U) bool) {
		for _, u := range v.data {
			if !yield(u) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-unit pairs in reverse
// storage order, visiting the same units as All.
func (v View[U]) Backward() iter.Seq2[int, U] {
	return func(yield func(int, U) bool) {
		for i := len(v.data) - 1; i >= 0; i-- {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}
