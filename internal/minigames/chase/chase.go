// Package chase implements the incident chase: an incident is closing in
// and the player has a short countdown to pick one of two responses. Running
// out of time counts as a single wrong answer.
package chase

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/party-pascal/internal/audio"
	"github.com/vovakirdan/party-pascal/internal/content"
	"github.com/vovakirdan/party-pascal/internal/core"
	"github.com/vovakirdan/party-pascal/internal/minigames/round"
	"github.com/vovakirdan/party-pascal/internal/registry"
	"github.com/vovakirdan/party-pascal/internal/session"
	"github.com/vovakirdan/party-pascal/internal/ui"
)

// ID is the registry key.
const ID = "chase"

// BannerTime is how long the outcome banner stays up between incidents.
const BannerTime = 600 * time.Millisecond

// Banner texts.
const (
	Neutralized = "THREAT NEUTRALIZED"
	Failed      = "RESPONSE FAILED"
	Compromised = "SYSTEM COMPROMISED"
)

func init() {
	registry.Register(registry.Info{
		ID:       ID,
		Title:    "Incident Chase",
		Blurb:    "Beat the clock: pick the right response before impact.",
		Music:    audio.MusicChase,
		Order:    5,
		FreePlay: true,
	}, func() session.Session { return New() })
}

// Game is one play-through of the chase.
type Game struct {
	round.Base
	incidents []content.Incident
	idx       int
	correct   int
	last      int
	choices   *ui.Choices
	timer     *round.Countdown

	banner     string
	bannerHit  bool
	bannerLeft time.Duration
	done       bool
}

// New creates a chase session.
func New() *Game {
	return &Game{}
}

// Name implements session.Session.
func (g *Game) Name() string { return ID }

// Enter implements session.Session.
func (g *Game) Enter(env *session.Env) error {
	g.Begin(env)
	g.incidents = env.Content.Chase(env.Difficulty())
	if len(g.incidents) == 0 {
		return errors.New("chase: no incidents available")
	}
	round.Shuffle(env.Rand, g.incidents)
	g.idx, g.last, g.done, g.banner = 0, -1, false, ""
	g.deal(env)
	return nil
}

func (g *Game) deal(env *session.Env) {
	inc := g.incidents[g.idx]
	var opts []string
	opts, g.correct = round.Arrange(env.Rand, inc.Options, inc.Answer, g.last)
	g.last = g.correct
	g.choices = &ui.Choices{Options: opts, Columns: len(opts), Height: 5}
	g.timer = round.NewCountdown(g.Rules.ChaseTime)
}

func layout(w, h int) (incident core.Rect, timerY int, answers core.Rect) {
	body := ui.Body(w, h)
	incident = core.NewRect(body.X+2, body.Y+1, core.Max(body.W-4, 0), core.Min(4, body.H/3))
	timerY = incident.Bottom() + 1
	answers = core.NewRect(body.X+2, timerY+2, core.Max(body.W-4, 0), core.Max(body.Bottom()-timerY-2, 0))
	return incident, timerY, answers
}

// Update implements session.Session.
func (g *Game) Update(env *session.Env, f session.Frame) session.Transition {
	if f.Input.Has(core.ActionBack) {
		return g.Abort()
	}

	if g.banner != "" {
		g.bannerLeft -= f.Elapsed
		if g.bannerLeft > 0 {
			return session.Stay()
		}
		g.banner = ""
		return g.next(env)
	}

	_, _, answers := layout(f.Width, f.Height)
	if pick, ok := g.choices.Pick(f.Input, answers); ok {
		g.timer.Stop()
		if pick == g.correct {
			g.Answer(env, true)
			g.show(Neutralized, true)
		} else {
			g.Answer(env, false)
			g.show(Failed, false)
		}
		return session.Stay()
	}

	if g.timer.Tick(f.Elapsed) {
		g.Answer(env, false)
		g.show(Compromised, false)
	}
	return session.Stay()
}

func (g *Game) show(text string, hit bool) {
	g.banner, g.bannerHit, g.bannerLeft = text, hit, BannerTime
}

func (g *Game) next(env *session.Env) session.Transition {
	g.idx++
	if g.idx < len(g.incidents) {
		g.deal(env)
		return session.Stay()
	}
	g.done = true
	env.Audio.PlaySFX(audio.SFXRoulette)
	return session.Call(ui.NewDialog("Incident report", core.ColorTitle,
		fmt.Sprintf("Final score: %d", env.Ledger.Total()),
		fmt.Sprintf("%d contained, %d missed", g.Hits, g.Misses)))
}

// Resume implements session.Resumer.
func (g *Game) Resume(*session.Env, session.Result) session.Transition {
	if g.done {
		return g.Finish()
	}
	return session.Stay()
}

// Draw implements session.Session.
func (g *Game) Draw(scr *core.Screen) {
	ui.HUD(scr, "Incident Chase", g.idx, len(g.incidents), g.Shown())
	if g.idx >= len(g.incidents) {
		return
	}
	incident, timerY, answers := layout(scr.Width(), scr.Height())
	scr.DrawWrapped(incident, g.incidents[g.idx].Description, core.ColorWhite, true)
	ui.CountdownBar(scr, timerY, g.timer.Left(), g.timer.Total())
	scr.DrawTextCentered(timerY+1, fmt.Sprintf("IMPACT IN: %.2fs", g.timer.Left().Seconds()), core.ColorHint)

	var marks map[int]core.Color
	if g.banner != "" {
		marks = map[int]core.Color{g.correct: core.ColorHit}
	}
	g.choices.Draw(scr, answers, marks)

	if g.banner != "" {
		color := core.ColorMiss
		if g.bannerHit {
			color = core.ColorHit
		}
		box := core.Centered(scr.Width(), scr.Height(), len(g.banner)+6, 3)
		scr.DrawPanel(box, color)
		scr.DrawTextIn(box.Inset(0, 1), g.banner, color)
	}
}
