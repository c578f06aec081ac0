package handleset

import "errors"

var (
	// ErrNilHasher is returned by New when the supplied Hasher is nil.
	// There is no sane default for an opaque handle type, so this is a
	// precondition violation rather than a zero-value fallback.
	ErrNilHasher = errors.New("handleset: hasher must not be nil")

	// ErrNilEquals is returned by New when the supplied Equals is nil.
	ErrNilEquals = errors.New("handleset: equals must not be nil")
)
