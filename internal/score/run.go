package score

import (
	"time"

	"github.com/vovakirdan/party-pascal/internal/rules"
)

// Mode names how a run was played.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeFreePlay Mode = "free"
)

// StageResult is the outcome of one minigame within a run.
type StageResult struct {
	Game   string
	Points int
	Failed bool
}

// Run is a finished play-through.
type Run struct {
	ID         int64
	PlayerID   string
	Mode       Mode
	Difficulty rules.Difficulty
	Score      int
	Weighted   int
	Stages     []StageResult
	PlayedAt   time.Time
}

// NewRun builds a run record, computing the weighted score from the
// difficulty multiplier.
func NewRun(mode Mode, d rules.Difficulty, total int, stages []StageResult) Run {
	return Run{
		Mode:       mode,
		Difficulty: d,
		Score:      total,
		Weighted:   rules.For(d).Weighted(total),
		Stages:     stages,
		PlayedAt:   time.Now(),
	}
}
