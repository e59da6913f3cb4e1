package scenes

import (
	"fmt"
	"time"

	"github.com/vovakirdan/party-pascal/internal/audio"
	"github.com/vovakirdan/party-pascal/internal/core"
	"github.com/vovakirdan/party-pascal/internal/session"
	"github.com/vovakirdan/party-pascal/internal/story"
	"github.com/vovakirdan/party-pascal/internal/ui"
)

// FadeTime is the exit curtain of cutscenes and minigames.
const FadeTime = 350 * time.Millisecond

const skipLabel = "[ SKIP ]"

// Intro is the opening cutscene: the story acts revealed one at a time.
// A click finishes the current act's text, a second click moves on. The
// skip button or Back ends the cutscene.
type Intro struct {
	acts []story.Act
	act  int
	tw   typewriter
}

// NewIntro creates the opening cutscene.
func NewIntro() *Intro {
	return &Intro{}
}

// Name implements session.Session.
func (c *Intro) Name() string { return "intro" }

// Outro implements session.Outroer.
func (c *Intro) Outro() time.Duration { return FadeTime }

// Enter implements session.Session.
func (c *Intro) Enter(env *session.Env) error {
	c.acts = env.Story.Acts
	c.act = 0
	if len(c.acts) > 0 {
		c.tw.reset(c.acts[0].Body)
	}
	env.Audio.FadeToMusic(audio.MusicCutsceneIntro, 1100*time.Millisecond)
	return nil
}

func skipRect(w int) core.Rect {
	return core.NewRect(w-len(skipLabel)-2, 0, len(skipLabel), 1)
}

// Update implements session.Session.
func (c *Intro) Update(env *session.Env, f session.Frame) session.Transition {
	if c.act >= len(c.acts) || f.Input.Has(core.ActionBack) {
		return session.Done(session.Continue)
	}
	skip := skipRect(f.Width)
	for _, p := range f.Input.Pointers() {
		if skip.Contains(p.X, p.Y) {
			env.Audio.PlaySFX(audio.SFXClick)
			return session.Done(session.Continue)
		}
	}

	c.tw.advance(f.Elapsed)
	if !f.Input.Confirmed() {
		return session.Stay()
	}
	env.Audio.PlaySFX(audio.SFXClick)
	if !c.tw.done() {
		c.tw.finish()
		return session.Stay()
	}
	c.act++
	if c.act >= len(c.acts) {
		return session.Done(session.Continue)
	}
	c.tw.reset(c.acts[c.act].Body)
	return session.Stay()
}

// Draw implements session.Session.
func (c *Intro) Draw(scr *core.Screen) {
	scr.DrawText(skipRect(scr.Width()).X, 0, skipLabel, core.ColorHint)
	if c.act >= len(c.acts) {
		return
	}
	a := c.acts[c.act]
	box := core.Centered(scr.Width(), scr.Height(), core.Min(70, scr.Width()-4), core.Min(12, scr.Height()-2))
	scr.DrawPanel(box, core.ColorFrame)
	scr.DrawTextIn(core.NewRect(box.X, box.Y+1, box.W, 1), a.Title, core.ColorTitle)
	scr.DrawWrapped(box.Inset(3, 3), c.tw.visible(), core.ColorWhite, false)
	scr.DrawTextIn(core.NewRect(box.X, box.Bottom()-2, box.W, 1),
		fmt.Sprintf("%d/%d  %s", c.act+1, len(c.acts), ui.DefaultHint), core.ColorHint)
}
