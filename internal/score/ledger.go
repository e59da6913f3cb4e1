// Package score provides the score ledger shared by the sessions of one player.
package score

import (
	"math"
	"time"
)

// nominalFrame is the frame length the easing rate is defined against.
const nominalFrame = time.Second / 60

// easeRetain is the fraction of the remaining gap kept after one nominal frame.
const easeRetain = 0.7

// Ledger is the authoritative score total plus a display value that eases
// toward it. Only Add and Reset change the total.
type Ledger struct {
	total     int
	displayed float64
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Reset zeroes both the total and the display value.
func (l *Ledger) Reset() {
	l.total = 0
	l.displayed = 0
}

// Add applies a score delta.
func (l *Ledger) Add(delta int) {
	l.total += delta
}

// Total returns the exact score.
func (l *Ledger) Total() int {
	return l.total
}

// Displayed returns the eased value for on-screen counters.
func (l *Ledger) Displayed() int {
	return int(math.Round(l.displayed))
}

// Settled reports whether the display value has caught up with the total.
func (l *Ledger) Settled() bool {
	return l.displayed == float64(l.total)
}

// Tick moves the display value toward the total. The step is scaled by
// elapsed so the animation runs at the same speed at any frame rate; a
// non-positive elapsed counts as one nominal frame.
func (l *Ledger) Tick(elapsed time.Duration) {
	if elapsed <= 0 {
		elapsed = nominalFrame
	}
	target := float64(l.total)
	frames := float64(elapsed) / float64(nominalFrame)
	factor := 1 - math.Pow(easeRetain, frames)
	l.displayed += (target - l.displayed) * factor

	if math.Abs(target-l.displayed) < 0.5 {
		l.displayed = target
	}
}
