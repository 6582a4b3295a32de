package slots

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s := New()
	assert.Equal(t, uint64(0), s.Cardinality())

	s.Add(3)
	s.Add(1)
	s.Add(3)

	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(2))
	assert.Equal(t, uint64(2), s.Cardinality())
	assert.Equal(t, []uint32{1, 3}, slices.Collect(s.Slots()))

	s.Clear()
	assert.Equal(t, uint64(0), s.Cardinality())
	assert.Empty(t, slices.Collect(s.Slots()))
}

func TestSet_AddRange(t *testing.T) {
	s := New()
	s.AddRange(0, 4)

	assert.Equal(t, uint64(4), s.Cardinality())
	assert.Equal(t, []uint32{0, 1, 2, 3}, slices.Collect(s.Slots()))
	assert.False(t, s.Contains(4))
}

func TestSet_Clone(t *testing.T) {
	s := New()
	s.Add(7)

	c := s.Clone()
	c.Add(8)

	assert.False(t, s.Contains(8))
	assert.True(t, c.Contains(7))
	assert.True(t, c.Contains(8))
}

func TestSet_SlotsEarlyStop(t *testing.T) {
	s := New()
	s.AddRange(0, 10)

	var got []uint32
	for slot := range s.Slots() {
		if slot == 3 {
			break
		}
		got = append(got, slot)
	}
	assert.Equal(t, []uint32{0, 1, 2}, got)
}
