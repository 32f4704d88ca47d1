package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
	}{
		{StatusIdle, "Idle"},
		{StatusRunning, "Running"},
		{StatusWon, "Won"},
		{StatusLost, "Lost"},
		{Status(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.String())
		})
	}
}

func TestStatusConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, Status(0), StatusIdle)
	assert.Equal(t, Status(1), StatusRunning)
	assert.Equal(t, Status(2), StatusWon)
	assert.Equal(t, Status(3), StatusLost)
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, StatusIdle.Terminal())
	assert.False(t, StatusRunning.Terminal())
	assert.True(t, StatusWon.Terminal())
	assert.True(t, StatusLost.Terminal())
}
