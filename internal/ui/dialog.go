// Package ui holds the widgets shared by minigames and scenes: the modal
// feedback dialog, hit-testable option lists and the score HUD.
package ui

import (
	"github.com/vovakirdan/party-pascal/internal/audio"
	"github.com/vovakirdan/party-pascal/internal/core"
	"github.com/vovakirdan/party-pascal/internal/session"
)

// DefaultHint is shown at the bottom of every dialog.
const DefaultHint = "Click or press Enter to continue"

// Dialog is a modal message box. It draws over a dimmed snapshot of the
// caller's last frame and exits with Continue on confirm, pointer-down or
// Back.
type Dialog struct {
	Title string
	Lines []string
	Color core.Color
	Hint  string
}

// NewDialog builds a dialog with the default hint.
func NewDialog(title string, color core.Color, lines ...string) *Dialog {
	return &Dialog{Title: title, Lines: lines, Color: color, Hint: DefaultHint}
}

// Name implements session.Session.
func (d *Dialog) Name() string { return "dialog" }

// Overlay implements session.Overlay.
func (d *Dialog) Overlay() bool { return true }

// Enter implements session.Session.
func (d *Dialog) Enter(*session.Env) error { return nil }

// Update implements session.Session.
func (d *Dialog) Update(env *session.Env, f session.Frame) session.Transition {
	if f.Input.Confirmed() || f.Input.Has(core.ActionBack) {
		env.Audio.PlaySFX(audio.SFXClick)
		return session.Done(session.Continue)
	}
	return session.Stay()
}

// Draw implements session.Session.
func (d *Dialog) Draw(scr *core.Screen) {
	w := core.Min(60, scr.Width()-4)
	inner := core.Max(w-4, 1)

	var body []string
	for _, line := range d.Lines {
		body = append(body, core.WrapText(line, inner)...)
	}
	h := len(body) + 6
	box := core.Centered(scr.Width(), scr.Height(), w, h)
	scr.DrawPanel(box, d.Color)

	scr.DrawTextIn(core.NewRect(box.X, box.Y+1, box.W, 1), d.Title, d.Color)
	for i, line := range body {
		scr.DrawTextIn(core.NewRect(box.X, box.Y+3+i, box.W, 1), line, core.ColorWhite)
	}
	if d.Hint != "" {
		scr.DrawTextIn(core.NewRect(box.X, box.Bottom()-2, box.W, 1), d.Hint, core.ColorHint)
	}
}
