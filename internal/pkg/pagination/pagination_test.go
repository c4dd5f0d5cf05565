package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, 1, Normalize(-3))
	assert.Equal(t, 1, Normalize(0))
	assert.Equal(t, 4, Normalize(4))
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(0, 10))
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 20, Offset(3, 10))
	assert.Equal(t, 0, Offset(5, 0))
}

func TestOffset_HugePageDoesNotWrap(t *testing.T) {
	for _, page := range []int{math.MaxInt/10 + 2, math.MaxInt} {
		off := Offset(page, 10)
		assert.Positive(t, off)
		assert.Zero(t, off%10)
	}
	assert.Equal(t, (math.MaxInt/10)*10, Offset(math.MaxInt/10+1, 10))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 3, TotalPages(21, 10))
	assert.Equal(t, 0, TotalPages(5, 0))
}
