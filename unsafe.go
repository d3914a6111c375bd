package strview

import "unsafe"

// Shared backing for views over sources with no addressable storage.
// Zero-length and read-only, so sharing it is safe.
var emptyUnits = make([]byte, 0)

// OfString constructs a narrow view aliasing the string's byte
// storage with zero copy. Strings are immutable, so the read-only
// contract holds for the life of s. An empty string has no
// addressable storage; its view is backed by a shared non-nil
// zero-length array so Data never returns nil.
func OfString(s string) StringView {
	if len(s) == 0 {
		return StringView{data: emptyUnits}
	}
	return StringView{data: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// FromPointer constructs a view over the n units starting at p, for
// callers holding a raw pointer from cgo or an unsafe region. The n
// units reachable from p must be valid for the life of the view.
// Panics if p is nil or n is negative.
func FromPointer[U Unit](p *U, n int) View[U] {
	if p == nil {
		panic("strview: FromPointer: nil pointer")
	}
	if n < 0 {
		panic("strview: FromPointer: negative length")
	}
	return View[U]{data: unsafe.Slice(p, n)}
}
