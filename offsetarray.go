package offsetarray

import (
	"context"
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/hupe1980/offsetarray/internal/conv"
	"github.com/hupe1980/offsetarray/internal/slots"
)

// Array is a fixed-length sequence of T addressed by logical indices
// First()..Last(). Logical index i lives in slot i-First() of the backing
// slice.
//
// The shape (First and Len) never changes after construction; only element
// contents are mutable. An Array is not safe for concurrent use.
type Array[T any] struct {
	first  int
	length int
	data   []T

	opts    options
	log     *Logger
	written *slots.Set // nil unless WithWriteTracking
}

// New creates an array of length zero-valued elements whose first logical
// index is first. Any first is accepted, including negative values.
//
// It returns a *LengthError (ErrInvalidArgument) if length <= 0.
func New[T any](first, length int, opts ...Option) (*Array[T], error) {
	a := newArray[T](first, opts)
	if err := a.setLength(length); err != nil {
		a.log.LogConstructFailed(context.Background(), "new", first, err)
		return nil, err
	}
	a.data = make([]T, length)

	return a.ready("new")
}

// FromSeq creates an array holding the elements of seq in iteration order.
// The elements are copied; seq is consumed exactly once.
//
// It returns ErrNullInput if seq is nil and a *LengthError
// (ErrInvalidArgument) if seq yields no elements.
func FromSeq[T any](first int, seq iter.Seq[T], opts ...Option) (*Array[T], error) {
	a := newArray[T](first, opts)
	if seq == nil {
		err := fmt.Errorf("%w: source sequence is nil", ErrNullInput)
		a.log.LogConstructFailed(context.Background(), "seq", first, err)
		return nil, err
	}

	data := slices.Collect(seq)
	if err := a.setLength(len(data)); err != nil {
		a.log.LogConstructFailed(context.Background(), "seq", first, err)
		return nil, err
	}
	a.data = data

	return a.ready("seq")
}

// FromSlice creates an array over elems.
//
// The array takes ownership of elems: it becomes the backing storage, so
// writes through either side are visible to the other. Pass WithCopy to
// store a private copy instead.
//
// It returns ErrNullInput if elems is nil and a *LengthError
// (ErrInvalidArgument) if elems is empty but non-nil.
func FromSlice[T any](first int, elems []T, opts ...Option) (*Array[T], error) {
	a := newArray[T](first, opts)
	if elems == nil {
		err := fmt.Errorf("%w: source slice is nil", ErrNullInput)
		a.log.LogConstructFailed(context.Background(), "slice", first, err)
		return nil, err
	}
	if err := a.setLength(len(elems)); err != nil {
		a.log.LogConstructFailed(context.Background(), "slice", first, err)
		return nil, err
	}
	if a.opts.copyElements {
		elems = slices.Clone(elems)
	}
	a.data = elems

	return a.ready("slice")
}

// Of creates an array from a list of elements. It is FromSlice without
// options: a slice expanded with elems... is aliased, not copied.
//
// It returns a *LengthError (ErrInvalidArgument) when called with no
// elements, including an expanded nil or empty slice. Use FromSlice to
// distinguish a nil source.
func Of[T any](first int, elems ...T) (*Array[T], error) {
	if len(elems) == 0 {
		return nil, &LengthError{Length: 0}
	}
	return FromSlice(first, elems)
}

func newArray[T any](first int, opts []Option) *Array[T] {
	o := applyOptions(opts)
	return &Array[T]{
		first: first,
		opts:  o,
		log:   o.logger,
	}
}

// setLength is the only place length is assigned.
func (a *Array[T]) setLength(n int) error {
	if n <= 0 {
		return &LengthError{Length: n}
	}
	if _, err := conv.AddInt(a.first, n-1); err != nil {
		return &LengthError{Length: n, cause: err}
	}
	if a.opts.trackWrites {
		// Slot numbers must fit the 32-bit bitmap.
		if _, err := conv.IntToUint32(n - 1); err != nil {
			return &LengthError{Length: n, cause: err}
		}
	}
	a.length = n
	return nil
}

func (a *Array[T]) ready(kind string) (*Array[T], error) {
	if a.opts.trackWrites {
		a.written = slots.New()
	}
	a.log = a.log.WithRange(a.first, a.Last())
	a.log.LogCreated(context.Background(), kind, a.length)
	return a, nil
}

// First returns the logical index of the first element.
func (a *Array[T]) First() int { return a.first }

// Last returns the logical index of the final element, First()+Len()-1.
func (a *Array[T]) Last() int { return a.first + a.length - 1 }

// Len returns the number of elements. It is always at least 1.
func (a *Array[T]) Len() int { return a.length }

// Elements returns the live backing slice; index 0 holds logical index
// First(). Writes through it are visible to the array and bypass bounds,
// nil and write-tracking checks. Use Clone for an independent copy.
func (a *Array[T]) Elements() []T { return a.data }

// Contains reports whether i is a valid logical index.
func (a *Array[T]) Contains(i int) bool {
	return i >= a.first && i <= a.Last()
}

func (a *Array[T]) slot(op string, i int) (int, error) {
	if !a.Contains(i) {
		err := &RangeError{Index: i, First: a.first, Last: a.Last()}
		a.log.LogRejected(context.Background(), op, i, err)
		return 0, err
	}
	return i - a.first, nil
}

// Get returns the element at logical index i.
//
// It returns a *RangeError (ErrIndexOutOfRange) if i is outside [First, Last].
func (a *Array[T]) Get(i int) (T, error) {
	s, err := a.slot("get", i)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.data[s], nil
}

// Set stores v at logical index i.
//
// It returns a *RangeError (ErrIndexOutOfRange) if i is outside [First, Last]
// and ErrNullInput if v is a nil pointer, map, slice, func, chan or
// interface. Element types that cannot be nil are never rejected.
func (a *Array[T]) Set(i int, v T) error {
	s, err := a.slot("set", i)
	if err != nil {
		return err
	}
	if isNil(v) {
		err := fmt.Errorf("%w: value for index %d is nil", ErrNullInput, i)
		a.log.LogRejected(context.Background(), "set", i, err)
		return err
	}
	a.data[s] = v
	if a.written != nil {
		a.written.Add(uint32(s))
	}
	return nil
}

// Fill stores v in every slot. It returns ErrNullInput under the same rule
// as Set, in which case no slot is modified.
func (a *Array[T]) Fill(v T) error {
	if isNil(v) {
		err := fmt.Errorf("%w: fill value is nil", ErrNullInput)
		a.log.LogRejected(context.Background(), "fill", a.first, err)
		return err
	}
	for s := range a.data {
		a.data[s] = v
	}
	if a.written != nil {
		a.written.AddRange(0, uint64(a.length))
	}
	return nil
}

// All returns an iterator over logical index/value pairs in slot order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for s, v := range a.data {
			if !yield(a.first+s, v) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in slot order. The logical
// offset has no influence on the order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Clone returns an array with the same shape, options and write record and
// its own copy of the elements. Elements themselves are copied shallowly.
func (a *Array[T]) Clone() *Array[T] {
	c := &Array[T]{
		first:  a.first,
		length: a.length,
		data:   slices.Clone(a.data),
		opts:   a.opts,
		log:    a.log,
	}
	if a.written != nil {
		c.written = a.written.Clone()
	}
	return c
}

// String implements fmt.Stringer.
func (a *Array[T]) String() string {
	return fmt.Sprintf("offsetarray[%d..%d](len=%d)", a.first, a.Last(), a.length)
}

// Written reports whether logical index i has been assigned through Set or
// Fill since construction or the last ResetWritten.
//
// It returns ErrTrackingDisabled without WithWriteTracking and a *RangeError
// (ErrIndexOutOfRange) if i is outside [First, Last].
func (a *Array[T]) Written(i int) (bool, error) {
	if a.written == nil {
		return false, ErrTrackingDisabled
	}
	s, err := a.slot("written", i)
	if err != nil {
		return false, err
	}
	return a.written.Contains(uint32(s)), nil
}

// WrittenIndices returns the logical indices recorded by write tracking in
// ascending order. It yields nothing when tracking is disabled.
func (a *Array[T]) WrittenIndices() iter.Seq[int] {
	return func(yield func(int) bool) {
		if a.written == nil {
			return
		}
		for s := range a.written.Slots() {
			if !yield(a.first + int(s)) {
				return
			}
		}
	}
}

// WrittenCount returns the number of distinct slots recorded by write
// tracking, or 0 when tracking is disabled.
func (a *Array[T]) WrittenCount() int {
	if a.written == nil {
		return 0
	}
	n, err := conv.Uint64ToInt(a.written.Cardinality())
	if err != nil {
		return math.MaxInt
	}
	return n
}

// ResetWritten forgets all recorded writes. Element values are unchanged.
func (a *Array[T]) ResetWritten() {
	if a.written != nil {
		a.written.Clear()
	}
}
