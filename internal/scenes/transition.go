package scenes

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/party-pascal/internal/core"
	"github.com/vovakirdan/party-pascal/internal/score"
	"github.com/vovakirdan/party-pascal/internal/session"
	"github.com/vovakirdan/party-pascal/internal/ui"
)

// Screen durations.
const (
	TransitionTime = 3 * time.Second
	StageIntroTime = 4 * time.Second
)

// Transition is the card shown before each campaign stage: stage number,
// stage name and the ledger's displayed score. It has no scoring side
// effects. It ends on its own, on confirm, or with Back on Escape.
type Transition struct {
	Stage int
	Title string

	ledger  *score.Ledger
	elapsed time.Duration
}

// NewTransition creates the card for stage (1-based).
func NewTransition(stage int, title string) *Transition {
	return &Transition{Stage: stage, Title: title}
}

// Name implements session.Session.
func (t *Transition) Name() string { return "transition" }

// Enter implements session.Session.
func (t *Transition) Enter(env *session.Env) error {
	t.ledger = env.Ledger
	t.elapsed = 0
	return nil
}

// Update implements session.Session.
func (t *Transition) Update(_ *session.Env, f session.Frame) session.Transition {
	if f.Input.Has(core.ActionBack) {
		return session.Done(session.Back)
	}
	t.elapsed += f.Elapsed
	if t.elapsed >= TransitionTime || f.Input.Confirmed() {
		return session.Done(session.Continue)
	}
	return session.Stay()
}

// Draw implements session.Session.
func (t *Transition) Draw(scr *core.Screen) {
	_, cy := scr.Bounds().Center()
	scr.DrawTextCentered(cy-3, fmt.Sprintf("STAGE %d", t.Stage), core.ColorHint)
	scr.DrawTextCentered(cy-1, ui.Upper(t.Title), core.ColorTitle)
	scr.DrawTextCentered(cy+2, fmt.Sprintf("Total score: %d", t.ledger.Displayed()), core.ColorWhite)
	scr.DrawBar(scr.Width()/4, scr.Height()-3, scr.Width()/2, float64(t.elapsed)/float64(TransitionTime), core.ColorAccent)
}

// StageIntro is the "preparing the stage" card that opens the campaign.
// Confirm or Back skips it.
type StageIntro struct {
	elapsed time.Duration
}

// Name implements session.Session.
func (s *StageIntro) Name() string { return "stage-intro" }

// Enter implements session.Session.
func (s *StageIntro) Enter(*session.Env) error {
	s.elapsed = 0
	return nil
}

// Update implements session.Session.
func (s *StageIntro) Update(_ *session.Env, f session.Frame) session.Transition {
	s.elapsed += f.Elapsed
	if s.elapsed >= StageIntroTime || f.Input.Confirmed() || f.Input.Has(core.ActionBack) {
		return session.Done(session.Continue)
	}
	return session.Stay()
}

// Draw implements session.Session.
func (s *StageIntro) Draw(scr *core.Screen) {
	_, cy := scr.Bounds().Center()
	scr.DrawTextCentered(cy-2, "PARTY PASCAL", core.ColorTitle)
	// Blink at the pace of a slow sine.
	if math.Abs(math.Sin(float64(s.elapsed.Milliseconds())*0.005)) > 0.3 {
		scr.DrawTextCentered(scr.Height()-3, "Preparing the stage...", core.ColorBrightYellow)
	}
}
