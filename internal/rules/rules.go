// Package rules holds the difficulty rule table consulted by every minigame.
// Lookups are pure and never fail: anything unrecognized resolves to Normal.
package rules

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Difficulty represents a named difficulty level.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Normal Difficulty = "normal"
	Hard   Difficulty = "hard"
)

// All lists the difficulties in menu order.
var All = []Difficulty{Easy, Normal, Hard}

// BaseHit is the score for a correct answer before the difficulty bonus.
const BaseHit = 10

// RouletteEffects are the four sector values of the bonus-round wheel.
type RouletteEffects struct {
	SmallLoss int
	BigLoss   int
	SmallGain int
	BigGain   int
}

// Entry is the complete set of gameplay constants for one difficulty.
type Entry struct {
	Difficulty   Difficulty
	MissPenalty  int           // points lost on a wrong answer or timeout
	HitBonus     int           // added to BaseHit on a correct answer; may be negative
	QuestionTime time.Duration // answer budget for question rounds
	ChaseTime    time.Duration // countdown for reaction rounds
	ThreatCount  int           // hidden threats in the grid search
	Multiplier   float64       // applied to the final campaign score
	Roulette     RouletteEffects
}

var table = map[Difficulty]Entry{
	Easy: {
		Difficulty:   Easy,
		MissPenalty:  5,
		HitBonus:     2,
		QuestionTime: 12 * time.Second,
		ChaseTime:    4 * time.Second,
		ThreatCount:  16,
		Multiplier:   1,
		Roulette:     RouletteEffects{SmallLoss: -15, BigLoss: -25, SmallGain: 25, BigGain: 40},
	},
	Normal: {
		Difficulty:   Normal,
		MissPenalty:  12,
		HitBonus:     0,
		QuestionTime: 8 * time.Second,
		ChaseTime:    2500 * time.Millisecond,
		ThreatCount:  12,
		Multiplier:   1,
		Roulette:     RouletteEffects{SmallLoss: -30, BigLoss: -50, SmallGain: 30, BigGain: 50},
	},
	Hard: {
		Difficulty:   Hard,
		MissPenalty:  25,
		HitBonus:     -2,
		QuestionTime: 1 * time.Second,
		ChaseTime:    1 * time.Second,
		ThreatCount:  6,
		Multiplier:   1.3,
		Roulette:     RouletteEffects{SmallLoss: -50, BigLoss: -80, SmallGain: 60, BigGain: 100},
	},
}

// For returns the rule entry for d. Unknown values get the Normal entry.
func For(d Difficulty) Entry {
	if e, ok := table[d]; ok {
		return e
	}
	return table[Normal]
}

// Hit returns the delta for a correct answer.
func (e Entry) Hit() int {
	return BaseHit + e.HitBonus
}

// Miss returns the delta for a wrong answer or a timeout.
func (e Entry) Miss() int {
	return -e.MissPenalty
}

// Delta returns Hit or Miss depending on correct.
func (e Entry) Delta(correct bool) int {
	if correct {
		return e.Hit()
	}
	return e.Miss()
}

// Weighted applies the final multiplier to a campaign total.
func (e Entry) Weighted(total int) int {
	return int(math.Round(float64(total) * e.Multiplier))
}

// Parse maps a stored or typed name to a difficulty, falling back to Normal.
// The Portuguese names written by older settings files are accepted.
func Parse(s string) Difficulty {
	d, err := ParseStrict(s)
	if err != nil {
		return Normal
	}
	return d
}

// ParseStrict is Parse without the fallback, for validating user input.
func ParseStrict(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "facil", "fácil":
		return Easy, nil
	case "normal", "":
		return Normal, nil
	case "hard", "dificil", "difícil":
		return Hard, nil
	}
	return Normal, fmt.Errorf("rules: unknown difficulty %q (use easy, normal or hard)", s)
}

// Next returns the difficulty after d in menu order, wrapping around.
func (d Difficulty) Next() Difficulty {
	for i, v := range All {
		if v == d {
			return All[(i+1)%len(All)]
		}
	}
	return Normal
}

// Prev returns the difficulty before d in menu order, wrapping around.
func (d Difficulty) Prev() Difficulty {
	for i, v := range All {
		if v == d {
			return All[(i+len(All)-1)%len(All)]
		}
	}
	return Normal
}
