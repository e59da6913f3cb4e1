// Package round holds the helpers every minigame shares: option shuffling
// with anti-repeat, the once-only countdown, scoring through the ledger and
// the exit transitions.
package round

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/party-pascal/internal/audio"
	"github.com/vovakirdan/party-pascal/internal/core"
	"github.com/vovakirdan/party-pascal/internal/rules"
	"github.com/vovakirdan/party-pascal/internal/score"
	"github.com/vovakirdan/party-pascal/internal/session"
	"github.com/vovakirdan/party-pascal/internal/ui"
)

// OutroTime is how long a finished minigame stays on screen while the
// curtain closes.
const OutroTime = 350 * time.Millisecond

// MaxReshuffles bounds the anti-repeat retries. Past it the repeat is kept.
const MaxReshuffles = 5

// Arrange shuffles options and returns them with the index of answer.
// While the answer lands on the same slot as in the previous round (last)
// it reshuffles, giving up after MaxReshuffles retries. Pass last = -1 for
// the first round.
func Arrange(rng *rand.Rand, options []string, answer string, last int) ([]string, int) {
	opts := append([]string(nil), options...)
	correct := -1
	for attempts := 0; ; attempts++ {
		rng.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
		correct = indexOf(opts, answer)
		if correct != last || attempts >= MaxReshuffles {
			break
		}
	}
	return opts, correct
}

func indexOf(opts []string, s string) int {
	for i, o := range opts {
		if o == s {
			return i
		}
	}
	return -1
}

// Shuffle permutes items in place with the session RNG.
func Shuffle[T any](rng *rand.Rand, items []T) {
	rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
}

// Base carries the state every minigame shares. Embed it and call Begin
// from Enter.
type Base struct {
	Rules  rules.Entry
	Points int // net points this minigame added to the ledger
	Hits   int
	Misses int
	ledger *score.Ledger
}

// Begin reads the rule entry for the current difficulty and clears the tally.
func (b *Base) Begin(env *session.Env) {
	b.Rules = env.Rules()
	b.Points, b.Hits, b.Misses = 0, 0, 0
	b.ledger = env.Ledger
}

// Shown returns the ledger's eased display value for the HUD.
func (b *Base) Shown() int {
	if b.ledger == nil {
		return b.Points
	}
	return b.ledger.Displayed()
}

// Outro implements session.Outroer.
func (b *Base) Outro() time.Duration {
	return OutroTime
}

// Answer scores a decisive answer with the difficulty's delta, plays the
// matching effect and returns the delta.
func (b *Base) Answer(env *session.Env, correct bool) int {
	delta := b.Rules.Delta(correct)
	if correct {
		b.Hits++
		env.Audio.PlaySFX(audio.SFXCorrect)
	} else {
		b.Misses++
		env.Audio.PlaySFX(audio.SFXWrong)
	}
	b.Add(env, delta)
	return delta
}

// Add applies a raw delta to the ledger.
func (b *Base) Add(env *session.Env, delta int) {
	b.Points += delta
	env.Ledger.Add(delta)
}

// Finish ends the minigame normally.
func (b *Base) Finish() session.Transition {
	return session.Exit(session.Result{Nav: session.Continue, Score: b.Points})
}

// Abort ends the minigame early, keeping what was scored so far.
func (b *Base) Abort() session.Transition {
	return session.Exit(session.Result{Nav: session.Back, Score: b.Points})
}

// Feedback builds the dialog shown after an answer.
func Feedback(correct bool, delta int, lines ...string) *ui.Dialog {
	title, color := "Correct!", core.ColorHit
	if !correct {
		title, color = "Wrong!", core.ColorMiss
	}
	return ui.NewDialog(title, color, append([]string{Signed(delta)}, lines...)...)
}

// Signed formats a delta with its sign ("+10", "-12").
func Signed(delta int) string {
	return fmt.Sprintf("%+d points", delta)
}

// Countdown is a round timer that reports its expiry exactly once.
type Countdown struct {
	total time.Duration
	left  time.Duration
	fired bool
}

// NewCountdown starts a countdown of d.
func NewCountdown(d time.Duration) *Countdown {
	return &Countdown{total: d, left: d}
}

// Tick advances the countdown and reports whether it expired on this call.
// After the first expiry it keeps returning false.
func (c *Countdown) Tick(elapsed time.Duration) bool {
	if c.fired {
		return false
	}
	c.left -= elapsed
	if c.left <= 0 {
		c.left = 0
		c.fired = true
		return true
	}
	return false
}

// Stop disarms the countdown without firing it.
func (c *Countdown) Stop() {
	c.fired = true
}

// Left returns the remaining time.
func (c *Countdown) Left() time.Duration { return c.left }

// Total returns the starting duration.
func (c *Countdown) Total() time.Duration { return c.total }

// Expired reports whether the countdown reached zero.
func (c *Countdown) Expired() bool { return c.fired && c.left == 0 }
