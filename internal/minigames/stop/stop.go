// Package stop implements the STOP category rounds. Each round draws a
// letter with a slot-machine animation, then the player picks the answer
// in the category that starts with it. The time taken is reported against
// the difficulty's question budget.
package stop

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
const ID = "stop"

// Letter-draw animation: Spins letters are flashed, the last one being the
// round's letter. The final SlowSpins each last SlowDown longer than the one
// before.
const (
	Spins     = 20
	SlowSpins = 8
	SpinStart = 50 * time.Millisecond
	SlowDown  = 40 * time.Millisecond
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func init() {
	registry.Register(registry.Info{
		ID:       ID,
		Title:    "STOP!",
		Blurb:    "A letter is drawn: name the right term in the category.",
		Music:    audio.MusicStop,
		Order:    6,
		FreePlay: true,
	}, func() session.Session { return New() })
}

// Game is one play-through of the STOP rounds.
type Game struct {
	round.Base
	prompts []content.Prompt
	idx     int
	correct int
	last    int
	choices *ui.Choices

	spin     int // letters flashed so far this round; Spins means settled
	spinLeft time.Duration
	spinStep time.Duration
	shown    byte
	taken    time.Duration
	done     bool
}

// New creates a STOP session.
func New() *Game {
	return &Game{}
}

// Name implements session.Session.
func (g *Game) Name() string { return ID }

// Enter implements session.Session.
func (g *Game) Enter(env *session.Env) error {
	g.Begin(env)
	g.prompts = env.Content.Stop(env.Difficulty())
	if len(g.prompts) == 0 {
		return errors.New("stop: no prompts available")
	}
	round.Shuffle(env.Rand, g.prompts)
	g.idx, g.last, g.done = 0, -1, false
	g.deal(env)
	return nil
}

func (g *Game) deal(env *session.Env) {
	p := g.prompts[g.idx]
	var opts []string
	opts, g.correct = round.Arrange(env.Rand, p.Options, p.Answer, g.last)
	g.last = g.correct
	g.choices = &ui.Choices{Options: opts, Columns: 1}
	g.spin, g.spinStep, g.spinLeft = 0, SpinStart, SpinStart
	g.shown = alphabet[env.Rand.Intn(len(alphabet))]
	g.taken = 0
}

// Drawing reports whether the letter animation is still running.
func (g *Game) Drawing() bool {
	return g.spin < Spins
}

func (g *Game) animate(env *session.Env, elapsed time.Duration) {
	g.spinLeft -= elapsed
	for g.Drawing() && g.spinLeft <= 0 {
		g.spin++
		if !g.Drawing() {
			g.shown = g.letter()
			env.Audio.PlaySFX(audio.SFXExplosion)
			return
		}
		g.shown = alphabet[env.Rand.Intn(len(alphabet))]
		if g.spin > Spins-SlowSpins {
			g.spinStep += SlowDown
		}
		g.spinLeft += g.spinStep
	}
}

func (g *Game) letter() byte {
	if l := g.prompts[g.idx].Letter; l != "" {
		return l[0]
	}
	return '?'
}

func layout(w, h int) (header, answers core.Rect) {
	body := ui.Body(w, h)
	header = core.NewRect(body.X+2, body.Y+1, core.Max(body.W-4, 0), 4)
	answers = core.NewRect(body.X+6, header.Bottom()+1, core.Max(body.W-12, 0), core.Max(body.Bottom()-header.Bottom()-1, 0))
	return header, answers
}

// Update implements session.Session.
func (g *Game) Update(env *session.Env, f session.Frame) session.Transition {
	if f.Input.Has(core.ActionBack) {
		return g.Abort()
	}
	if g.Drawing() {
		g.animate(env, f.Elapsed)
		return session.Stay()
	}

	g.taken += f.Elapsed
	_, answers := layout(f.Width, f.Height)
	pick, ok := g.choices.Pick(f.Input, answers)
	if !ok {
		return session.Stay()
	}

	p := g.prompts[g.idx]
	correct := pick == g.correct
	g.Answer(env, correct)
	title, color := "Correct answer!", core.ColorHit
	if !correct {
		title, color = "Wrong answer!", core.ColorMiss
	}
	pace := "within the budget"
	if g.taken > g.Rules.QuestionTime {
		pace = "over the budget"
	}
	return session.Call(ui.NewDialog(title, color,
		fmt.Sprintf("Total score: %d | Time: %.2fs", env.Ledger.Total(), g.taken.Seconds()),
		fmt.Sprintf("Budget: %.0fs, %s", g.Rules.QuestionTime.Seconds(), pace),
		"Category: "+p.Category))
}

// Resume implements session.Resumer.
func (g *Game) Resume(env *session.Env, _ session.Result) session.Transition {
	if g.done {
		return g.Finish()
	}
	g.idx++
	if g.idx < len(g.prompts) {
		g.deal(env)
		return session.Stay()
	}
	g.done = true
	env.Audio.PlaySFX(audio.SFXRoulette)
	return session.Call(ui.NewDialog("End of the STOP challenge", core.ColorTitle,
		fmt.Sprintf("Final score: %d", env.Ledger.Total())))
}

// Draw implements session.Session.
func (g *Game) Draw(scr *core.Screen) {
	ui.HUD(scr, "STOP!", g.idx, len(g.prompts), g.Shown())
	if g.idx >= len(g.prompts) {
		return
	}
	if g.Drawing() {
		_, cy := scr.Bounds().Center()
		scr.DrawTextCentered(cy-2, "Drawing a letter...", core.ColorHint)
		box := core.Centered(scr.Width(), scr.Height(), 7, 3)
		scr.DrawPanel(box, core.ColorFrame)
		scr.Set(box.X+3, box.Y+1, rune(g.shown), core.ColorGray)
		return
	}

	p := g.prompts[g.idx]
	header, answers := layout(scr.Width(), scr.Height())
	scr.DrawTextIn(header, fmt.Sprintf("Category: %s", p.Category), core.ColorAccent)
	scr.DrawTextIn(core.NewRect(header.X, header.Y+1, header.W, 1), fmt.Sprintf("Letter: %c", g.shown), core.ColorTitle)
	scr.DrawWrapped(core.NewRect(header.X, header.Y+2, header.W, 2), p.Hint, core.ColorWhite, true)
	g.choices.Draw(scr, answers, nil)
}
