package scenes

import (
	"github.com/vovakirdan/party-pascal/internal/audio"
	"github.com/vovakirdan/party-pascal/internal/core"
	"github.com/vovakirdan/party-pascal/internal/session"
	"github.com/vovakirdan/party-pascal/internal/ui"
)

// Mode select entries.
const (
	ModeCampaign = "Campaign"
	ModeFreePlay = "Free play"
	ModeBack     = "Back to menu"
)

// ModeSelect chooses between the campaign and free play. A finished
// campaign, or free play's main-menu button, returns to the menu; leaving
// free play with Back returns here.
type ModeSelect struct {
	choices *ui.Choices
}

// NewModeSelect creates the mode select screen.
func NewModeSelect() *ModeSelect {
	return &ModeSelect{choices: ui.NewChoices([]string{ModeCampaign, ModeFreePlay, ModeBack})}
}

// Name implements session.Session.
func (m *ModeSelect) Name() string { return "mode-select" }

// Enter implements session.Session.
func (m *ModeSelect) Enter(*session.Env) error { return nil }

// Update implements session.Session.
func (m *ModeSelect) Update(env *session.Env, f session.Frame) session.Transition {
	if f.Input.Has(core.ActionBack) {
		return session.Done(session.Back)
	}
	pick, ok := m.choices.Pick(f.Input, buttonArea(f.Width, f.Height, len(m.choices.Options)))
	if !ok {
		return session.Stay()
	}
	env.Audio.PlaySFX(audio.SFXClick)
	switch m.choices.Options[pick] {
	case ModeCampaign:
		return session.Call(NewCampaign())
	case ModeFreePlay:
		return session.Call(NewFreePlay())
	default:
		return session.Done(session.Back)
	}
}

// Resume implements session.Resumer.
func (m *ModeSelect) Resume(_ *session.Env, child session.Result) session.Transition {
	if child.Nav == session.Back {
		return session.Stay()
	}
	return session.Done(session.Menu)
}

// Draw implements session.Session.
func (m *ModeSelect) Draw(scr *core.Screen) {
	area := buttonArea(scr.Width(), scr.Height(), len(m.choices.Options))
	scr.DrawTextCentered(core.Max(area.Y-2, 0), "CHOOSE THE GAME MODE", core.ColorWhite)
	m.choices.Draw(scr, area, nil)
}
