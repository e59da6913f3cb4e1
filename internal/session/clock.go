package session

import "time"

// MaxElapsed caps the time one iteration may report. A backgrounded tab or a
// stalled terminal would otherwise expire every countdown at once.
const MaxElapsed = 250 * time.Millisecond

// Clock paces the loop and reports the time since the previous tick.
type Clock struct {
	target time.Duration
	block  bool
	last   time.Time
	now    func() time.Time
	sleep  func(time.Duration)
}

// NewClock returns a clock targeting fps iterations per second. A blocking
// clock sleeps off the rest of each frame; cooperative hosts must pass
// false and let their own frame callback set the pace.
func NewClock(fps int, blocking bool) *Clock {
	if fps <= 0 {
		fps = 60
	}
	return &Clock{
		target: time.Second / time.Duration(fps),
		block:  blocking,
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

// Target returns the nominal frame duration.
func (c *Clock) Target() time.Duration {
	return c.target
}

// Tick returns the elapsed time since the previous Tick, clamped to
// [0, MaxElapsed]. The first tick reports one nominal frame.
func (c *Clock) Tick() time.Duration {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return c.target
	}

	elapsed := now.Sub(c.last)
	if c.block && elapsed < c.target {
		c.sleep(c.target - elapsed)
		now = c.now()
		elapsed = now.Sub(c.last)
	}
	c.last = now

	if elapsed < 0 {
		return 0
	}
	if elapsed > MaxElapsed {
		return MaxElapsed
	}
	return elapsed
}
