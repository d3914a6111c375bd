// Package strview provides a lightweight, non-owning view over
// contiguous character data, generic over the unit type.
//
// A View references existing data through a (pointer, length) pair —
// in Go terms, a slice it does not own. It never allocates, copies, or
// frees the referenced buffer, which makes it suitable as a uniform
// string-like parameter type: callers can hand a function terminated
// sequences, owned buffers, plain strings, or explicit
// (sequence, length) pairs without forcing an allocation at any call
// site.
//
// # Overview
//
// Two public instantiations share one contract:
//
//   • StringView (View[byte]) views narrow, byte-sized units.
//   • RuneView (View[rune]) views wide units.
//
// A view is constructed from one of several source shapes and is
// immutable afterwards:
//
//   • Terminated — a zero-terminated sequence; the length is found by
//     scanning for the terminator.
//   • Slice — a sequence with an explicit, authoritative length;
//     terminators before that length are ordinary data.
//   • Of — an owned buffer, adopting its current length.
//   • OfString — a Go string, aliased without copying.
//   • FromPointer — a raw pointer and length, for cgo and unsafe
//     regions.
//
// Every constructor rejects a nil source: a view can be empty but
// never dangling-nil. The view does not track the lifetime of the
// buffer it aliases; keeping the buffer alive while views over it
// exist is the caller's obligation.
//
// # Usage
//
//	import "github.com/dmitrymomot/strview"
//
//	func parse(input strview.StringView) error {
//	    for i, b := range input.All() {
//	        // …
//	    }
//	    return nil
//	}
//
//	buf := []byte("key=value\x00garbage")
//	parse(strview.Terminated(buf))         // stops at the terminator
//	parse(strview.Slice(buf, 9))           // explicit length
//	parse(strview.OfString("key=value"))   // zero-copy over a string
//
// Views compare lexicographically by raw unit value with the length as
// the final tie-break, matching conventional byte-string ordering:
//
//	a := strview.OfString("012")
//	b := strview.OfString("0123")
//	a.Compare(b) // < 0: equal prefix, shorter sorts first
//	a.Equal(b)   // false
//
// # Error Handling
//
// The package distinguishes programmer errors from recoverable
// failures. Constructing from a nil source, passing Slice an
// out-of-range length, or indexing out of bounds through Index are
// precondition violations and panic. At is the single bounds-checked
// accessor; it reports an invalid index as ErrOutOfRange, matchable
// with errors.Is, and never clamps or fabricates a value.
//
// # Concurrency
//
// Views are immutable values and safe to copy and share across
// goroutines for reading. They take no locks: mutating the aliased
// buffer while views over it are in use requires external
// synchronization, exactly as sharing the raw buffer would.
//
// # Performance
//
// A View is a slice header by value; construction, accessors,
// comparison and iteration are allocation-free. Copy and String are
// the only copying operations. Comparison is unit-wise and not
// Unicode-aware: "é" and its decomposed form are different views.
package strview
