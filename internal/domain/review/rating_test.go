package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecompute(t *testing.T) {
	assert.Equal(t, Summary{}, Recompute(nil))
	assert.Equal(t, Summary{AverageRating: 4, ReviewCount: 1}, Recompute([]int{4}))
	assert.Equal(t, Summary{AverageRating: 4.33, ReviewCount: 3}, Recompute([]int{5, 4, 4}))
	assert.Equal(t, Summary{AverageRating: 3, ReviewCount: 2}, Recompute([]int{1, 5, 0, 9}))
}

func TestValidRating(t *testing.T) {
	assert.True(t, ValidRating(1))
	assert.True(t, ValidRating(5))
	assert.False(t, ValidRating(0))
	assert.False(t, ValidRating(6))
}
