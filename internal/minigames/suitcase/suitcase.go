// Package suitcase implements the right-suitcase challenge: each problem
// offers three suitcases and only one holds the correct solution.
package suitcase

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/party-pascal/internal/audio"
	"github.com/vovakirdan/party-pascal/internal/content"
	"github.com/vovakirdan/party-pascal/internal/core"
	"github.com/vovakirdan/party-pascal/internal/minigames/round"
	"github.com/vovakirdan/party-pascal/internal/registry"
	"github.com/vovakirdan/party-pascal/internal/session"
	"github.com/vovakirdan/party-pascal/internal/ui"
)

// ID is the registry key.
const ID = "suitcase"

func init() {
	registry.Register(registry.Info{
		ID:       ID,
		Title:    "The Right Suitcase",
		Blurb:    "Pick the suitcase holding the right solution.",
		Music:    audio.MusicSuitcase,
		Order:    3,
		FreePlay: true,
	}, func() session.Session { return New() })
}

// Game is one play-through of the suitcase challenge.
type Game struct {
	round.Base
	dilemmas []content.Dilemma
	idx      int
	correct  int
	last     int
	choices  *ui.Choices
	done     bool
	// Slots records the correct slot of every dealt problem.
	Slots []int
}

// New creates a suitcase session.
func New() *Game {
	return &Game{}
}

// Name implements session.Session.
func (g *Game) Name() string { return ID }

// Enter implements session.Session.
func (g *Game) Enter(env *session.Env) error {
	g.Begin(env)
	g.dilemmas = env.Content.Suitcase(env.Difficulty())
	if len(g.dilemmas) == 0 {
		return errors.New("suitcase: no problems available")
	}
	round.Shuffle(env.Rand, g.dilemmas)
	g.idx, g.last, g.done, g.Slots = 0, -1, false, nil
	g.deal(env)
	return nil
}

func (g *Game) deal(env *session.Env) {
	d := g.dilemmas[g.idx]
	var opts []string
	opts, g.correct = round.Arrange(env.Rand, d.Options, d.Answer, g.last)
	g.last = g.correct
	g.Slots = append(g.Slots, g.correct)
	g.choices = &ui.Choices{Options: opts, Columns: len(opts), Height: 7}
}

func layout(w, h int) (problem, cases core.Rect) {
	body := ui.Body(w, h)
	problem = core.NewRect(body.X+2, body.Y+1, core.Max(body.W-4, 0), core.Min(4, body.H/3))
	cases = core.NewRect(body.X+2, problem.Bottom()+1, core.Max(body.W-4, 0), core.Max(body.Bottom()-problem.Bottom()-1, 0))
	return problem, cases
}

// Update implements session.Session.
func (g *Game) Update(env *session.Env, f session.Frame) session.Transition {
	if f.Input.Has(core.ActionBack) {
		return g.Abort()
	}
	_, cases := layout(f.Width, f.Height)
	pick, ok := g.choices.Pick(f.Input, cases)
	if !ok {
		return session.Stay()
	}
	d := g.dilemmas[g.idx]
	correct := pick == g.correct
	delta := g.Answer(env, correct)
	if correct {
		return session.Call(round.Feedback(true, delta, "The suitcase held: "+d.Answer))
	}
	return session.Call(round.Feedback(false, delta, "The right suitcase held: "+d.Answer))
}

// Resume implements session.Resumer.
func (g *Game) Resume(env *session.Env, _ session.Result) session.Transition {
	if g.done {
		return g.Finish()
	}
	g.idx++
	if g.idx < len(g.dilemmas) {
		g.deal(env)
		return session.Stay()
	}
	g.done = true
	env.Audio.PlaySFX(audio.SFXRoulette)
	return session.Call(ui.NewDialog("Challenge complete!", core.ColorTitle,
		fmt.Sprintf("Total score: %d", env.Ledger.Total())))
}

// Draw implements session.Session.
func (g *Game) Draw(scr *core.Screen) {
	ui.HUD(scr, "The Right Suitcase", g.idx, len(g.dilemmas), g.Shown())
	if g.idx >= len(g.dilemmas) {
		return
	}
	problem, cases := layout(scr.Width(), scr.Height())
	scr.DrawWrapped(problem, g.dilemmas[g.idx].Problem, core.ColorWhite, true)
	g.choices.Draw(scr, cases, nil)
}
