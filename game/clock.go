package game

import "time"

// DefaultTickInterval is the classic game speed.
const DefaultTickInterval = 100 * time.Millisecond

// Clock paces Tick calls from a frame loop. It fires at most once per call
// to Due and never while stopped.
type Clock struct {
	Interval time.Duration

	running    bool
	lastUpdate time.Time
}

func NewClock(interval time.Duration) *Clock {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Clock{Interval: interval}
}

// Start arms the clock; the first tick is due one interval after now.
func (c *Clock) Start(now time.Time) {
	c.running = true
	c.lastUpdate = now
}

func (c *Clock) Stop() {
	c.running = false
}

func (c *Clock) Running() bool {
	return c.running
}

// Due reports whether a tick should run at now and, if so, consumes it.
func (c *Clock) Due(now time.Time) bool {
	if !c.running {
		return false
	}
	if now.Sub(c.lastUpdate) < c.Interval {
		return false
	}
	// Advance on the interval grid so frame jitter does not stretch the
	// period. After a stall, restart the grid at now instead of bursting.
	c.lastUpdate = c.lastUpdate.Add(c.Interval)
	if now.Sub(c.lastUpdate) >= c.Interval {
		c.lastUpdate = now
	}
	return true
}
