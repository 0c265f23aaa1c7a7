package dupfind

import "errors"

// Sentinel errors identifying dupfind's error kinds.
// Use errors.Is to test for these; OutOfRangeError and InvalidUTF8Error
// additionally carry the offending argument for diagnostics.
var (
	// ErrInvalidUTF8 is returned when CharText construction is given bytes
	// that fail UTF-8 validation.
	ErrInvalidUTF8 = errors.New("dupfind: invalid UTF-8 encoding")

	// ErrOutOfRange is returned when a character index or byte offset
	// argument exceeds the addressable range of the target object.
	ErrOutOfRange = errors.New("dupfind: index out of range")

	// ErrEmptyInput is returned when SuffixIndex.Build is given an empty
	// CharText; building requires at least one character.
	ErrEmptyInput = errors.New("dupfind: cannot build suffix index from empty text")

	// ErrNotBuilt is returned when SA or LCP is read before a successful
	// Build call.
	ErrNotBuilt = errors.New("dupfind: suffix index has not been built")

	// ErrBadSeparator is returned when a DocumentStore is constructed
	// with a separator whose character length is not exactly one.
	ErrBadSeparator = errors.New("dupfind: separator must be exactly one character")
)

// InvalidUTF8Error wraps ErrInvalidUTF8 with the byte offset at which
// validation failed.
type InvalidUTF8Error struct {
	Offset int
}

func (e *InvalidUTF8Error) Error() string {
	return ErrInvalidUTF8.Error()
}

func (e *InvalidUTF8Error) Unwrap() error { return ErrInvalidUTF8 }

// OutOfRangeError wraps ErrOutOfRange with the offending index and the
// valid length of the object it was applied to.
type OutOfRangeError struct {
	Index int
	Len   int
}

func (e *OutOfRangeError) Error() string {
	return ErrOutOfRange.Error()
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// BuildError wraps a failure from SuffixIndex.Build, including
// ErrEmptyInput and any internal construction failure.
type BuildError struct {
	Err error
}

func (e *BuildError) Error() string {
	return "dupfind: build failed: " + e.Err.Error()
}

func (e *BuildError) Unwrap() error { return e.Err }
