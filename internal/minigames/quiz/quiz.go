// Package quiz implements the question show: multiple-choice questions
// with four options each, a feedback dialog quoting the reason after every
// answer and a closing dialog with the running total.
package quiz

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
const ID = "quiz"

func init() {
	registry.Register(registry.Info{
		ID:       ID,
		Title:    "The Governance Show",
		Blurb:    "Answer governance questions, one pick per question.",
		Music:    audio.MusicQuiz,
		Order:    1,
		FreePlay: true,
	}, func() session.Session { return New() })
}

// Game is one play-through of the quiz.
type Game struct {
	round.Base
	questions []content.Question
	idx       int
	options   []string
	correct   int
	last      int
	choices   *ui.Choices
	done      bool
}

// New creates a quiz session.
func New() *Game {
	return &Game{}
}

// Name implements session.Session.
func (g *Game) Name() string { return ID }

// Enter implements session.Session.
func (g *Game) Enter(env *session.Env) error {
	g.Begin(env)
	g.questions = env.Content.Quiz(env.Difficulty())
	if len(g.questions) == 0 {
		return errors.New("quiz: no questions available")
	}
	round.Shuffle(env.Rand, g.questions)
	g.idx, g.last, g.done = 0, -1, false
	g.deal(env)
	return nil
}

func (g *Game) deal(env *session.Env) {
	q := g.questions[g.idx]
	g.options, g.correct = round.Arrange(env.Rand, q.Options, q.Answer, g.last)
	g.last = g.correct
	g.choices = ui.NewChoices(g.options)
}

// CorrectIndex returns the position of the right answer among the
// displayed options of the current question.
func (g *Game) CorrectIndex() int { return g.correct }

func layout(w, h int) (prompt, answers core.Rect) {
	body := ui.Body(w, h)
	promptH := core.Min(5, body.H/3)
	prompt = core.NewRect(body.X+2, body.Y+1, core.Max(body.W-4, 0), promptH)
	answers = core.NewRect(body.X+4, prompt.Bottom()+1, core.Max(body.W-8, 0), core.Max(body.Bottom()-prompt.Bottom()-1, 0))
	return prompt, answers
}

// Update implements session.Session.
func (g *Game) Update(env *session.Env, f session.Frame) session.Transition {
	if f.Input.Has(core.ActionBack) {
		return g.Abort()
	}
	_, answers := layout(f.Width, f.Height)
	pick, ok := g.choices.Pick(f.Input, answers)
	if !ok {
		return session.Stay()
	}

	q := g.questions[g.idx]
	correct := pick == g.correct
	delta := g.Answer(env, correct)
	lines := []string{q.Reason}
	if !correct {
		lines = append([]string{"Answer: " + q.Answer}, lines...)
	}
	return session.Call(round.Feedback(correct, delta, lines...))
}

// Resume implements session.Resumer.
func (g *Game) Resume(env *session.Env, _ session.Result) session.Transition {
	if g.done {
		return g.Finish()
	}
	g.idx++
	if g.idx < len(g.questions) {
		g.deal(env)
		return session.Stay()
	}
	g.done = true
	return session.Call(ui.NewDialog("End of the show", core.ColorTitle,
		fmt.Sprintf("Total score: %d", env.Ledger.Total()),
		fmt.Sprintf("%d right, %d wrong", g.Hits, g.Misses)))
}

// Draw implements session.Session.
func (g *Game) Draw(scr *core.Screen) {
	ui.HUD(scr, "Quiz", g.idx, len(g.questions), g.Shown())
	if g.idx >= len(g.questions) {
		return
	}
	prompt, answers := layout(scr.Width(), scr.Height())
	scr.DrawWrapped(prompt, g.questions[g.idx].Prompt, core.ColorWhite, true)
	g.choices.Draw(scr, answers, nil)
}
