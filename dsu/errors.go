package dsu

import "errors"

var (
	// ErrNegativeSize indicates New was called with n < 0.
	ErrNegativeSize = errors.New("dsu: negative set size")

	// ErrOutOfRange indicates an element id outside [0, n).
	ErrOutOfRange = errors.New("dsu: element out of range")

	// ErrNotRoot indicates Union received an element that is not a set representative.
	ErrNotRoot = errors.New("dsu: element is not a representative")
)
