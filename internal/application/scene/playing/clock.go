package playing

import "time"

// Clock measures the wall-clock delta between successive frames. The
// simulation consumes real elapsed time rather than a fixed tick, so it
// stays frame-rate-independent; there is no fixed-timestep accumulator,
// which trades potential tunneling at very low frame rates for simplicity.
type Clock struct {
	now     func() time.Time
	last    time.Time
	running bool
}

// NewClock creates a stopped clock backed by the system monotonic clock.
func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// Start begins (or restarts) dt measurement from now.
func (c *Clock) Start() {
	c.running = true
	c.last = c.now()
}

// Stop freezes the clock. Stopping an already-stopped clock is a no-op.
func (c *Clock) Stop() {
	c.running = false
}

// Running reports whether the clock is measuring.
func (c *Clock) Running() bool {
	return c.running
}

// Tick returns the seconds elapsed since the previous Tick (or Start) and
// advances the reference point. A stopped clock always returns 0.
func (c *Clock) Tick() float64 {
	if !c.running {
		return 0
	}
	now := c.now()
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return dt
}
