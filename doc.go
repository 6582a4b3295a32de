// Package offsetarray provides a fixed-length array addressed by logical
// indices that start at an arbitrary integer instead of zero.
//
// Useful wherever natural numbering does not begin at zero: days of a month
// (1..31), 1-based matrix rows, or a sliding window over absolute positions.
//
// # Quick Start
//
//	days, _ := offsetarray.New[float64](1, 31)   // indices 1..31
//	_ = days.Set(17, 8.0)
//	v, _ := days.Get(17)
//
//	a, _ := offsetarray.Of(-2, 1, 2, 3, 4)      // indices -2..1
//	for i, v := range a.All() {
//	    fmt.Println(i, v)
//	}
//
// # Construction
//
//   - New allocates zero-valued storage of a given length.
//   - FromSeq copies the elements of an iter.Seq.
//   - FromSlice and Of adopt a slice as backing storage (WithCopy copies it).
//
// Every constructor rejects a non-positive length, so Len is always at
// least 1 and Last is always First+Len-1.
//
// # Errors
//
// Contract violations are returned, never panicked:
//
//   - ErrInvalidArgument (*LengthError): length <= 0 or an empty source
//   - ErrNullInput: nil source, or a nil value passed to Set or Fill
//   - ErrIndexOutOfRange (*RangeError): index outside [First, Last]
//
// # Aliasing
//
// Elements returns the live backing slice. Writes through it are visible to
// the array and skip bounds checks, nil checks and write tracking.
//
// # Write Tracking
//
// WithWriteTracking keeps a Roaring Bitmap of slots assigned through Set and
// Fill, queried with Written, WrittenIndices and WrittenCount.
//
// # Concurrency
//
// An Array is not safe for concurrent use. Callers that share one across
// goroutines must synchronize access themselves, including access through
// the slice returned by Elements.
package offsetarray
