package timer

import "time"

// TickDuration returns the length of one update tick at the given ticks per
// second. Non-positive tps falls back to 60.
func TickDuration(tps int) time.Duration {
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}

// Clock is a frame clock advanced explicitly by the game loop. Elapsed time
// never decreases between resets.
type Clock struct {
	elapsed time.Duration
}

func NewClock() *Clock {
	return &Clock{}
}

// Advance moves the clock forward by dt. Negative steps are ignored.
func (c *Clock) Advance(dt time.Duration) {
	if c == nil || dt <= 0 {
		return
	}
	c.elapsed += dt
}

// Elapsed returns the time accumulated since the last reset.
func (c *Clock) Elapsed() time.Duration {
	if c == nil {
		return 0
	}
	return c.elapsed
}

// Seconds returns Elapsed as fractional seconds.
func (c *Clock) Seconds() float64 {
	return c.Elapsed().Seconds()
}

func (c *Clock) Reset() {
	if c == nil {
		return
	}
	c.elapsed = 0
}
