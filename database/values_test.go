package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualNormalisesNumericWidths(t *testing.T) {
	assert.True(t, Equal(float64(15), 15))
	assert.True(t, Equal(int64(2), float64(2)))
	assert.True(t, Equal("101", "101"))
}

func TestEqualNeverCoercesAcrossTypes(t *testing.T) {
	// A numeric id must not match its string form.
	assert.False(t, Equal("101", 101))
	assert.False(t, Equal(float64(101), "101"))
	assert.False(t, Equal(nil, ""))
	assert.False(t, Equal(true, 1))
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 1, Compare(float64(3), 2))
	assert.Equal(t, -1, Compare(float64(0), 2))
	assert.Equal(t, 0, Compare(float64(2), 2))
	assert.Equal(t, -1, Compare("06:00:00", "09:00:00"))
	assert.Equal(t, 1, Compare("2026-09-01", "2026-08-28"))
	// Incomparable operands rank equal rather than panicking.
	assert.Equal(t, 0, Compare("abc", 5))
	assert.Equal(t, 0, Compare(nil, nil))
}
