package offsetarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNil(t *testing.T) {
	var (
		p  *int
		m  map[string]int
		s  []int
		f  func()
		ch chan int
		e  error
	)
	assert.True(t, isNil(p))
	assert.True(t, isNil(m))
	assert.True(t, isNil(s))
	assert.True(t, isNil(f))
	assert.True(t, isNil(ch))
	assert.True(t, isNil(e))
	assert.True(t, isNil[any](nil))

	x := 0
	assert.False(t, isNil(&x))
	assert.False(t, isNil([]int{}))
	assert.False(t, isNil(0))
	assert.False(t, isNil(""))
	assert.False(t, isNil(struct{}{}))
	assert.False(t, isNil[any](0))
}
