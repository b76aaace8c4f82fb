package game

import (
	"testing"
	"time"
)

func TestClockDue(t *testing.T) {
	base := time.Unix(1700000000, 0)
	c := NewClock(100 * time.Millisecond)

	if c.Due(base.Add(time.Second)) {
		t.Fatal("stopped clock must not fire")
	}

	c.Start(base)
	if c.Due(base.Add(50 * time.Millisecond)) {
		t.Error("fired before the interval elapsed")
	}
	if !c.Due(base.Add(100 * time.Millisecond)) {
		t.Error("expected a tick after one interval")
	}
	if c.Due(base.Add(150 * time.Millisecond)) {
		t.Error("fired twice within one interval")
	}
	// A long stall yields a single tick, not a burst.
	if !c.Due(base.Add(time.Second)) {
		t.Error("expected a tick after a stall")
	}
	if c.Due(base.Add(time.Second)) {
		t.Error("stall must not be caught up")
	}

	c.Stop()
	if c.Running() {
		t.Error("expected clock to be stopped")
	}
	if c.Due(base.Add(10 * time.Second)) {
		t.Error("stopped clock fired")
	}
}

func TestNewClockDefaultInterval(t *testing.T) {
	if c := NewClock(0); c.Interval != DefaultTickInterval {
		t.Errorf("expected %v, got %v", DefaultTickInterval, c.Interval)
	}
}

func TestClockKeepsPeriodAtFrameRate(t *testing.T) {
	base := time.Unix(1700000000, 0)
	c := NewClock(100 * time.Millisecond)
	c.Start(base)

	frame := time.Second / 60
	ticks := 0
	for i := 1; i <= 600; i++ {
		if c.Due(base.Add(time.Duration(i) * frame)) {
			ticks++
		}
	}
	// Ten seconds of 60 fps frames must yield close to 100 ticks.
	if ticks < 98 || ticks > 100 {
		t.Errorf("expected ~100 ticks in 10s, got %d", ticks)
	}
}
