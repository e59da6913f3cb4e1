package scenes

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/party-pascal/internal/audio"
	"github.com/vovakirdan/party-pascal/internal/core"
	"github.com/vovakirdan/party-pascal/internal/registry"
	"github.com/vovakirdan/party-pascal/internal/rules"
	"github.com/vovakirdan/party-pascal/internal/score"
	"github.com/vovakirdan/party-pascal/internal/session"
	"github.com/vovakirdan/party-pascal/internal/ui"
)

type campaignStep int

const (
	stepStart campaignStep = iota
	stepIntro
	stepTransition
	stepStage
	stepComplete
	stepFinal
)

// Campaign plays every minigame in order, each preceded by a transition
// card. A failing minigame is logged, its ledger delta reverted and the
// campaign moves on. Escape on a transition card returns to the menu.
// The finished run is recorded with its weighted score.
type Campaign struct {
	stages     []registry.Info
	step       campaignStep
	idx        int
	before     int
	difficulty rules.Difficulty
	results    []score.StageResult
}

// NewCampaign creates a campaign over stages, or over every registered
// minigame when none are given.
func NewCampaign(stages ...registry.Info) *Campaign {
	return &Campaign{stages: stages}
}

// Name implements session.Session.
func (c *Campaign) Name() string { return "campaign" }

// Results returns the per-stage outcomes recorded so far.
func (c *Campaign) Results() []score.StageResult { return c.results }

// Enter implements session.Session.
func (c *Campaign) Enter(env *session.Env) error {
	if len(c.stages) == 0 {
		c.stages = registry.List()
	}
	if len(c.stages) == 0 {
		return errors.New("campaign: no minigames registered")
	}
	env.Ledger.Reset()
	c.step, c.idx, c.results = stepStart, 0, nil
	c.difficulty = env.Difficulty()
	env.Audio.PlayMusic(audio.MusicStageIntro)
	return nil
}

// Update implements session.Session. The campaign only runs between its
// children.
func (c *Campaign) Update(env *session.Env, f session.Frame) session.Transition {
	if f.Input.Has(core.ActionBack) {
		return session.Done(session.Menu)
	}
	if c.step == stepStart {
		c.step = stepIntro
		return session.Call(&StageIntro{})
	}
	return session.Stay()
}

// Resume implements session.Resumer.
func (c *Campaign) Resume(env *session.Env, child session.Result) session.Transition {
	switch c.step {
	case stepIntro:
		return c.announce(env)

	case stepTransition:
		if child.Nav == session.Back {
			env.Log.Info("campaign abandoned", "stage", c.stages[c.idx].ID, "score", env.Ledger.Total())
			return session.Done(session.Menu)
		}
		info := c.stages[c.idx]
		game, err := registry.Create(info.ID)
		if err != nil {
			env.Log.Warn("stage failed", "stage", info.ID, "error", err)
			c.results = append(c.results, score.StageResult{Game: info.ID, Failed: true})
			return c.advance(env)
		}
		c.before = env.Ledger.Total()
		c.step = stepStage
		return session.Call(game)

	case stepStage:
		info := c.stages[c.idx]
		res := score.StageResult{Game: info.ID, Points: env.Ledger.Total() - c.before}
		if child.Err != nil {
			env.Log.Warn("stage failed", "stage", info.ID, "error", child.Err)
			env.Ledger.Add(c.before - env.Ledger.Total())
			res.Points, res.Failed = 0, true
		}
		c.results = append(c.results, res)
		return c.advance(env)

	case stepComplete:
		total := env.Ledger.Total()
		c.record(env, total)
		c.step = stepFinal
		return session.Call(NewFinal(total, c.difficulty))

	case stepFinal:
		return session.Done(session.Menu)
	}
	return session.Stay()
}

func (c *Campaign) advance(env *session.Env) session.Transition {
	c.idx++
	if c.idx < len(c.stages) {
		return c.announce(env)
	}
	c.step = stepComplete
	env.Audio.PlayMusic(audio.MusicFinal)
	return session.Call(ui.NewDialog("Game complete!", core.ColorTitle,
		fmt.Sprintf("Total score: %d", env.Ledger.Total())))
}

func (c *Campaign) announce(env *session.Env) session.Transition {
	info := c.stages[c.idx]
	if info.Music != "" {
		env.Audio.PlayMusic(info.Music)
	}
	c.step = stepTransition
	return session.Call(NewTransition(c.idx+1, info.Title))
}

func (c *Campaign) record(env *session.Env, total int) {
	run := score.NewRun(score.ModeCampaign, c.difficulty, total, c.results)
	run.PlayerID = env.PlayerID
	env.Log.Info("campaign complete", "score", total, "weighted", run.Weighted, "difficulty", c.difficulty)
	if env.Runs == nil {
		return
	}
	if _, err := env.Runs.SaveRun(run); err != nil {
		env.Log.Error("could not save run", "error", err)
	}
}

// Draw implements session.Session.
func (c *Campaign) Draw(scr *core.Screen) {
	scr.DrawTextCentered(scr.Height()/2, "Preparing the stage...", core.ColorHint)
}
