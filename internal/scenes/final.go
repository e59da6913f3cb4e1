package scenes

import (
	"fmt"
	"time"

	"github.com/vovakirdan/party-pascal/internal/audio"
	"github.com/vovakirdan/party-pascal/internal/core"
	"github.com/vovakirdan/party-pascal/internal/rules"
	"github.com/vovakirdan/party-pascal/internal/session"
	"github.com/vovakirdan/party-pascal/internal/story"
	"github.com/vovakirdan/party-pascal/internal/ui"
)

// Final cutscene pacing.
const (
	CreditsRate   = 250 * time.Millisecond // per row of scroll
	GameOverDelay = 1500 * time.Millisecond
)

type finalAct int

const (
	actVerdict finalAct = iota
	actScore
	actCredits
	actGameOver
)

// Final is the closing cutscene: a verdict on the score, the score itself
// with a motivational line, the credits roll and GAME OVER. It exits with
// Menu.
type Final struct {
	score      int
	difficulty rules.Difficulty

	act        finalAct
	verdict    story.Verdict
	motivation string
	script     *story.Script
	tw         typewriter
	scroll     time.Duration
	clock      time.Duration
}

// NewFinal creates the closing cutscene for a finished campaign.
func NewFinal(score int, d rules.Difficulty) *Final {
	return &Final{score: score, difficulty: d}
}

// Name implements session.Session.
func (c *Final) Name() string { return "final" }

// Outro implements session.Outroer.
func (c *Final) Outro() time.Duration { return FadeTime }

// Enter implements session.Session.
func (c *Final) Enter(env *session.Env) error {
	c.script = env.Story
	c.verdict = env.Story.VerdictFor(c.score)
	c.motivation = env.Story.MotivationFor(c.difficulty)
	c.act = actVerdict
	c.tw.reset(c.verdict.Body)
	env.Audio.FadeToMusic(audio.MusicCutsceneFinal, 900*time.Millisecond)
	return nil
}

// creditRows flattens the credits into display rows.
func (c *Final) creditRows() []string {
	rows := []string{c.script.Title, ""}
	for _, cr := range c.script.Credits {
		rows = append(rows, cr.Role, cr.Name, "")
	}
	return append(rows, c.script.Closing)
}

// Update implements session.Session.
func (c *Final) Update(env *session.Env, f session.Frame) session.Transition {
	c.clock += f.Elapsed
	clicked := f.Input.Confirmed()
	if clicked {
		env.Audio.PlaySFX(audio.SFXClick)
	}

	switch c.act {
	case actVerdict:
		c.tw.advance(f.Elapsed)
		if clicked {
			c.next()
		}
	case actScore:
		if clicked {
			c.next()
		}
	case actCredits:
		c.scroll += f.Elapsed
		// The roll ends once the last row has left the top of the screen.
		if clicked || int(c.scroll/CreditsRate) > f.Height+len(c.creditRows()) {
			c.next()
		}
	case actGameOver:
		if c.clock >= GameOverDelay && (clicked || f.Input.Has(core.ActionBack)) {
			return session.Done(session.Menu)
		}
	}
	return session.Stay()
}

func (c *Final) next() {
	c.act++
	c.clock = 0
}

// Draw implements session.Session.
func (c *Final) Draw(scr *core.Screen) {
	w, h := scr.Width(), scr.Height()
	_, cy := scr.Bounds().Center()

	switch c.act {
	case actVerdict:
		box := core.NewRect(w/10, h*6/10, w*8/10, core.Max(h*3/10, 5))
		scr.DrawPanel(box, core.ColorFrame)
		scr.DrawTextIn(core.NewRect(box.X, box.Y+1, box.W, 1), c.verdict.Title, core.ColorTitle)
		scr.DrawWrapped(box.Inset(2, 2), c.tw.visible(), core.ColorWhite, false)
	case actScore:
		scr.DrawTextCentered(cy-4, "FINAL PLAYER SCORE", core.ColorWhite)
		scr.DrawTextCentered(cy-2, fmt.Sprintf("%d", c.score), core.ColorTitle)
		scr.DrawTextCentered(cy, "Difficulty: "+ui.Upper(string(c.difficulty)), core.ColorAccent)
		scr.DrawTextCentered(cy+2, fmt.Sprintf("%q", c.motivation), core.ColorHint)
		scr.DrawTextCentered(h-2, "Tap to continue", core.ColorWhite)
	case actCredits:
		top := h - int(c.scroll/CreditsRate)
		for i, row := range c.creditRows() {
			color := core.ColorWhite
			if i == 0 || row == c.script.Closing {
				color = core.ColorTitle
			}
			scr.DrawTextCentered(top+i, row, color)
		}
	case actGameOver:
		scr.DrawTextCentered(cy-1, "G A M E   O V E R", core.ColorMiss)
		if c.clock >= GameOverDelay {
			scr.DrawTextCentered(h-3, "- Click to return to the menu -", core.ColorHint)
		}
	}
}
