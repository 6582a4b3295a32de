package offsetarray

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a length or element list is unusable
	// (length <= 0, zero elements, or an index range that overflows int).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNullInput is returned when a source sequence, a source slice or a
	// value passed to Set is absent.
	ErrNullInput = errors.New("null input")

	// ErrIndexOutOfRange is returned when a logical index lies outside [First, Last].
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrTrackingDisabled is returned by Written when the array was built
	// without WithWriteTracking.
	ErrTrackingDisabled = errors.New("write tracking disabled")
)

// RangeError describes a logical index that lies outside the array.
//
// It matches ErrIndexOutOfRange via errors.Is.
type RangeError struct {
	Index int
	First int
	Last  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("index out of range: %d not in [%d, %d]", e.Index, e.First, e.Last)
}

func (e *RangeError) Unwrap() error { return ErrIndexOutOfRange }

// LengthError describes a rejected array length.
//
// It matches ErrInvalidArgument via errors.Is.
type LengthError struct {
	Length int
	cause  error
}

func (e *LengthError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("invalid length: %d: %v", e.Length, e.cause)
	}
	return fmt.Sprintf("invalid length: %d", e.Length)
}

// Unwrap returns ErrInvalidArgument and, if present, the underlying cause.
func (e *LengthError) Unwrap() []error {
	if e.cause != nil {
		return []error{ErrInvalidArgument, e.cause}
	}
	return []error{ErrInvalidArgument}
}
