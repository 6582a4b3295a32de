package slots

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set is a set of zero-based slot numbers.
type Set struct {
	rb *roaring.Bitmap
}

// New creates a new empty set.
func New() *Set {
	return &Set{
		rb: roaring.New(),
	}
}

// Add marks a slot as written.
func (s *Set) Add(slot uint32) {
	s.rb.Add(slot)
}

// AddRange marks slots [start, end) as written.
func (s *Set) AddRange(start, end uint64) {
	s.rb.AddRange(start, end)
}

// Contains reports whether the slot has been written.
func (s *Set) Contains(slot uint32) bool {
	return s.rb.Contains(slot)
}

// Cardinality returns the number of written slots.
func (s *Set) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Slots returns the written slots in ascending order.
func (s *Set) Slots() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{
		rb: s.rb.Clone(),
	}
}

// Clear removes all slots.
func (s *Set) Clear() {
	s.rb.Clear()
}
