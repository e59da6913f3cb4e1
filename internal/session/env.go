package session

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/party-pascal/internal/audio"
	"github.com/vovakirdan/party-pascal/internal/content"
	"github.com/vovakirdan/party-pascal/internal/rules"
	"github.com/vovakirdan/party-pascal/internal/score"
	"github.com/vovakirdan/party-pascal/internal/settings"
	"github.com/vovakirdan/party-pascal/internal/story"
)

// Recorder persists finished campaign runs.
type Recorder interface {
	SaveRun(run score.Run) (int64, error)
}

// Env is the set of collaborators owned by one player's session stack.
// Only the session at the top of the stack touches it, so nothing here
// needs locking.
type Env struct {
	Ledger   *score.Ledger
	Settings *settings.Store
	Audio    audio.Player
	Content  *content.Library
	Story    *story.Script
	Runs     Recorder
	Rand     *rand.Rand
	Log      *log.Logger
	PlayerID string
}

// NewEnv fills in defaults for any collaborator left nil.
func NewEnv(env Env) *Env {
	if env.Ledger == nil {
		env.Ledger = score.NewLedger()
	}
	if env.Settings == nil {
		env.Settings = settings.NewMemory()
	}
	if env.Audio == nil {
		env.Audio = audio.Silent{}
	}
	if env.Content == nil {
		env.Content = content.Default()
	}
	if env.Story == nil {
		env.Story = story.Default()
	}
	if env.Rand == nil {
		env.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if env.Log == nil {
		env.Log = log.New(io.Discard)
	}
	return &env
}

// Difficulty returns the difficulty currently stored in settings.
func (e *Env) Difficulty() rules.Difficulty {
	return e.Settings.Difficulty()
}

// Rules returns the rule entry for the current difficulty.
func (e *Env) Rules() rules.Entry {
	return rules.For(e.Difficulty())
}
