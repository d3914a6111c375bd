package strview

import (
	"fmt"
	"slices"
	"unsafe"
)

// Unit is the set of element types a View can be parameterized over:
// narrow (byte-sized) units and wide (rune-sized) units, including
// named types derived from them.
type Unit interface {
	~byte | ~rune
}

// View is a read-only, non-owning reference to a contiguous run of
// units. It never allocates, copies, or frees the data it references;
// the referenced buffer must outlive every view over it, which is the
// caller's obligation and is not checked at runtime.
//
// Views are immutable values: copy and pass them by value. The zero
// value behaves as an empty view, but the non-nil Data guarantee holds
// only for views obtained through a constructor.
type View[U Unit] struct {
	data []U
}

// StringView is the narrow instantiation, viewing byte units.
type StringView = View[byte]

// RuneView is the wide instantiation, viewing rune units.
type RuneView = View[rune]

// Of constructs a view aliasing the entire buffer, adopting its
// current length. No copy is made; the view must not outlive buf's
// backing array. Panics if buf is nil.
func Of[U Unit](buf []U) View[U] {
	if buf == nil {
		panic("strview: Of: nil buffer")
	}
	return View[U]{data: buf[:len(buf):len(buf)]}
}

// Terminated constructs a view over a zero-terminated sequence. The
// length is the number of units preceding the first zero unit in p;
// the scan never reads past len(p), and the whole slice is adopted
// when no terminator is present. Panics if p is nil.
func Terminated[U Unit](p []U) View[U] {
	if p == nil {
		panic("strview: Terminated: nil sequence")
	}
	var zero U
	n := slices.Index(p, zero)
	if n < 0 {
		n = len(p)
	}
	return View[U]{data: p[:n:n]}
}

// Slice constructs a view over the first n units of p. The explicit
// length is authoritative: zero units before position n are part of
// the view, not terminators. A zero n over a non-nil p is a valid
// empty view that retains p's data pointer.
//
// Panics if p is nil, or if n is negative or exceeds len(p).
func Slice[U Unit](p []U, n int) View[U] {
	if p == nil {
		panic("strview: Slice: nil sequence")
	}
	if n < 0 || n > len(p) {
		panic(fmt.Sprintf("strview: Slice: length %d out of range for sequence of %d units", n, len(p)))
	}
	return View[U]{data: p[:n:n]}
}

// Data returns the viewed units without copying. The result is not
// guaranteed to be terminated; consult Len before treating it as a
// terminated sequence. Mutating the returned slice's backing array
// violates the read-only contract of every view over it.
func (v View[U]) Data() []U { return v.data }

// Len returns the number of viewed units.
func (v View[U]) Len() int { return len(v.data) }

// Size returns the number of viewed units. It is identical to Len and
// exists for readability at comparison call sites.
func (v View[U]) Size() int { return len(v.data) }

// Empty reports whether the view contains no units.
func (v View[U]) Empty() bool { return len(v.data) == 0 }

// Index returns the unit at position i without a contract-level bounds
// check. Precondition: 0 <= i < Len(); violations trap via the runtime
// bounds check and are never reported as recoverable errors. Intended
// for hot paths where the caller has already validated i.
func (v View[U]) Index(i int) U { return v.data[i] }

// At returns the unit at position i, or ErrOutOfRange when i is
// outside the viewed range. It never clamps the index or fabricates a
// unit. This is the only operation with a recoverable-error contract.
func (v View[U]) At(i int) (U, error) {
	if i < 0 || i >= len(v.data) {
		var zero U
		return zero, fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, len(v.data))
	}
	return v.data[i], nil
}

// Copy returns a newly allocated owned copy of the viewed units. It is
// the only operation that copies; the result's lifetime is independent
// of the viewed buffer.
func (v View[U]) Copy() []U {
	out := make([]U, len(v.data))
	copy(out, v.data)
	return out
}

// String returns an owned string copy of the view. For the narrow
// instantiation this is a byte-for-byte copy; for the wide
// instantiation the runes are encoded as UTF-8.
//
// Go permits the slice-to-string conversion only for concrete byte
// and rune slices, not across the Unit type set, so the conversion
// dispatches on the instantiation.
func (v View[U]) String() string {
	switch data := any(v.data).(type) {
	case []byte:
		return string(data)
	case []rune:
		return string(data)
	}
	// Named unit types land here; the unit width decides between the
	// byte-for-byte and UTF-8 encoding paths.
	var zero U
	if unsafe.Sizeof(zero) == 1 {
		b := make([]byte, len(v.data))
		for i, u := range v.data {
			b[i] = byte(u)
		}
		return string(b)
	}
	r := make([]rune, len(v.data))
	for i, u := range v.data {
		r[i] = rune(u)
	}
	return string(r)
}
