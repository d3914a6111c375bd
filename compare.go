package strview

// Compare lexicographically compares two views of the same unit type.
// Units are compared by raw value in storage order over the shorter of
// the two lengths; comparison is not locale-, case-, or
// Unicode-aware. When the compared prefix is equal the signed length
// difference decides, so a shorter view sorts before any view it is a
// prefix of.
//
// The result is negative when v sorts before o, zero when the views
// have equal length and content, and positive otherwise. Only the sign
// is specified.
func (v View[U]) Compare(o View[U]) int {
	n := min(len(v.data), len(o.data))
	for i := range n {
		if a, b := v.data[i], o.data[i]; a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return len(v.data) - len(o.data)
}

// Equal reports whether two views have the same length and unit-wise
// identical content. Equality never considers buffer identity: views
// over separate buffers with identical content are equal.
func (v View[U]) Equal(o View[U]) bool {
	return len(v.data) == len(o.data) && v.Compare(o) == 0
}
