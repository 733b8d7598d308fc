package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriority_Rank(t *testing.T) {
	assert.Greater(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Greater(t, PriorityMedium.Rank(), PriorityLow.Rank())
}

func TestParsePriority(t *testing.T) {
	for _, p := range AllPriorities() {
		got, err := ParsePriority(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	_, err := ParsePriority("urgent")
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestPriority_Display(t *testing.T) {
	assert.Equal(t, "Low", PriorityLow.Display())
	assert.Equal(t, "Medium", PriorityMedium.Display())
	assert.Equal(t, "High", PriorityHigh.Display())
	assert.Equal(t, "other", Priority("other").Display())
}
