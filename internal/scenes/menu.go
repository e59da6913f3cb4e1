// Package scenes holds the screens around the minigames: the main menu,
// cutscenes, mode select, the campaign and free play, stage transitions
// and the settings screen.
package scenes

import (
	"time"

	"github.com/vovakirdan/party-pascal/internal/audio"
	"github.com/vovakirdan/party-pascal/internal/core"
	"github.com/vovakirdan/party-pascal/internal/session"
	"github.com/vovakirdan/party-pascal/internal/ui"
)

// Main menu entries.
const (
	MenuStart    = "Start game"
	MenuSettings = "Settings"
	MenuQuit     = "Quit"
)

// buttonArea returns the area for a column of n menu buttons below a title.
func buttonArea(w, h, n int) core.Rect {
	area := core.Centered(w, h, core.Min(36, w-4), n*4)
	area.Y = core.Max(area.Y, 4)
	return area
}

type menuStep int

const (
	menuIdle menuStep = iota
	menuIntro
	menuModes
	menuSettings
)

// Menu is the root session. It only exits on Quit.
type Menu struct {
	choices *ui.Choices
	step    menuStep
}

// NewMenu creates the main menu.
func NewMenu() *Menu {
	return &Menu{choices: ui.NewChoices([]string{MenuStart, MenuSettings, MenuQuit})}
}

// Name implements session.Session.
func (m *Menu) Name() string { return "menu" }

// Enter implements session.Session.
func (m *Menu) Enter(env *session.Env) error {
	env.Audio.SetMusicVolume(env.Settings.MusicVolume())
	env.Audio.SetSFXVolume(env.Settings.FXVolume())
	env.Audio.PlayMusic(audio.MusicMenu)
	m.step = menuIdle
	return nil
}

// Update implements session.Session.
func (m *Menu) Update(env *session.Env, f session.Frame) session.Transition {
	pick, ok := m.choices.Pick(f.Input, buttonArea(f.Width, f.Height, len(m.choices.Options)))
	if !ok {
		return session.Stay()
	}
	env.Audio.PlaySFX(audio.SFXClick)
	switch m.choices.Options[pick] {
	case MenuStart:
		m.step = menuIntro
		return session.Call(NewIntro())
	case MenuSettings:
		m.step = menuSettings
		return session.Call(NewSettings())
	default:
		return session.Done(session.Quit)
	}
}

// Resume implements session.Resumer.
func (m *Menu) Resume(env *session.Env, _ session.Result) session.Transition {
	if m.step == menuIntro {
		m.step = menuModes
		return session.Call(NewModeSelect())
	}
	if m.step == menuModes {
		env.Audio.FadeToMusic(audio.MusicMenu, 800*time.Millisecond)
	}
	m.step = menuIdle
	return session.Stay()
}

// Draw implements session.Session.
func (m *Menu) Draw(scr *core.Screen) {
	area := buttonArea(scr.Width(), scr.Height(), len(m.choices.Options))
	scr.DrawTextCentered(core.Max(area.Y-3, 0), "P A R T Y   P A S C A L", core.ColorTitle)
	scr.DrawTextCentered(core.Max(area.Y-2, 0), "An IT governance party game", core.ColorHint)
	m.choices.Draw(scr, area, nil)
}
