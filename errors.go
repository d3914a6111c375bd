package strview

import "errors"

var (
	// ErrOutOfRange is returned by At when the index is outside the
	// viewed range. It can be matched with errors.Is.
	ErrOutOfRange = errors.New("strview: index out of range")
)
