package playing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock returns a clock driven by a manually advanced time source.
func fakeClock() (*Clock, *time.Time) {
	current := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	c := &Clock{now: func() time.Time { return current }}
	return c, &current
}

func TestClock_Tick(t *testing.T) {
	c, now := fakeClock()
	c.Start()

	*now = now.Add(16 * time.Millisecond)
	assert.InDelta(t, 0.016, c.Tick(), 1e-9)

	*now = now.Add(33 * time.Millisecond)
	assert.InDelta(t, 0.033, c.Tick(), 1e-9, "each tick measures from the previous tick")

	assert.Equal(t, 0.0, c.Tick(), "no time passed since the last tick")
}

func TestClock_StoppedReturnsZero(t *testing.T) {
	c, now := fakeClock()

	assert.False(t, c.Running())
	assert.Equal(t, 0.0, c.Tick(), "a clock that was never started measures nothing")

	c.Start()
	assert.True(t, c.Running())
	c.Stop()
	c.Stop() // stopping twice is harmless

	*now = now.Add(time.Second)
	assert.Equal(t, 0.0, c.Tick())
}

func TestClock_RestartSkipsStoppedTime(t *testing.T) {
	c, now := fakeClock()
	c.Start()

	*now = now.Add(100 * time.Millisecond)
	c.Tick()
	c.Stop()

	// Time spent stopped must not leak into the next measurement.
	*now = now.Add(5 * time.Second)
	c.Start()
	*now = now.Add(16 * time.Millisecond)

	assert.InDelta(t, 0.016, c.Tick(), 1e-9)
}

func TestNewClock(t *testing.T) {
	c := NewClock()

	assert.False(t, c.Running())
	assert.NotNil(t, c.now)
}
