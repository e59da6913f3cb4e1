package scenes

import (
	"fmt"

	"github.com/vovakirdan/party-pascal/internal/audio"
	"github.com/vovakirdan/party-pascal/internal/core"
	"github.com/vovakirdan/party-pascal/internal/session"
	"github.com/vovakirdan/party-pascal/internal/settings"
	"github.com/vovakirdan/party-pascal/internal/ui"
)

// VolumeStep is the left/right adjustment of the volume rows.
const VolumeStep = 0.1

const (
	rowMusic = iota
	rowFX
	rowFullscreen
	rowDifficulty
	rowSave
	rowCount
)

// Settings edits the preferences. Volumes apply immediately so they can be
// heard; Escape or the save row writes the store and leaves.
type Settings struct {
	values settings.Values
	focus  int
}

// NewSettings creates the settings screen.
func NewSettings() *Settings {
	return &Settings{}
}

// Name implements session.Session.
func (s *Settings) Name() string { return "settings" }

// Enter implements session.Session.
func (s *Settings) Enter(env *session.Env) error {
	s.values = env.Settings.Values()
	s.focus = 0
	return nil
}

func settingsRows(w, h int) []core.Rect {
	area := core.Centered(w, h, core.Min(56, w-4), rowCount*2)
	return area.Rows(rowCount, 1, 1)
}

// bar returns the slider span inside a volume row.
func bar(r core.Rect) core.Rect {
	return core.NewRect(r.X+16, r.Y, core.Max(r.W-22, 1), 1)
}

// Update implements session.Session.
func (s *Settings) Update(env *session.Env, f session.Frame) session.Transition {
	rows := settingsRows(f.Width, f.Height)
	for _, e := range f.Input {
		switch e.Kind {
		case core.EventPointer:
			for i, r := range rows {
				if !r.Contains(e.X, e.Y) {
					continue
				}
				s.focus = i
				if i == rowMusic || i == rowFX {
					b := bar(r)
					s.setVolume(env, i, float64(e.X-b.X+1)/float64(b.W))
					continue
				}
				if tr := s.activate(env); !tr.IsStay() {
					return tr
				}
			}
		case core.EventKey:
			switch e.Action {
			case core.ActionBack:
				return s.save(env)
			case core.ActionUp:
				s.focus = (s.focus - 1 + rowCount) % rowCount
			case core.ActionDown:
				s.focus = (s.focus + 1) % rowCount
			case core.ActionLeft:
				s.adjust(env, -1)
			case core.ActionRight:
				s.adjust(env, +1)
			case core.ActionConfirm:
				if tr := s.activate(env); !tr.IsStay() {
					return tr
				}
			}
		}
	}
	return session.Stay()
}

func (s *Settings) adjust(env *session.Env, dir int) {
	switch s.focus {
	case rowMusic:
		s.setVolume(env, rowMusic, s.values.MusicVolume+float64(dir)*VolumeStep)
	case rowFX:
		s.setVolume(env, rowFX, s.values.FXVolume+float64(dir)*VolumeStep)
	case rowFullscreen:
		s.values.Fullscreen = !s.values.Fullscreen
	case rowDifficulty:
		if dir < 0 {
			s.values.Difficulty = s.values.Difficulty.Prev()
		} else {
			s.values.Difficulty = s.values.Difficulty.Next()
		}
	}
}

func (s *Settings) activate(env *session.Env) session.Transition {
	env.Audio.PlaySFX(audio.SFXClick)
	if s.focus == rowSave {
		return s.save(env)
	}
	s.adjust(env, +1)
	return session.Stay()
}

func (s *Settings) setVolume(env *session.Env, row int, v float64) {
	// Round to the step grid so repeated steps land on exact values.
	v = core.ClampF(float64(int(v*100+0.5))/100, 0, 1)
	if row == rowMusic {
		s.values.MusicVolume = v
		env.Audio.SetMusicVolume(v)
		return
	}
	s.values.FXVolume = v
	env.Audio.SetSFXVolume(v)
}

func (s *Settings) save(env *session.Env) session.Transition {
	env.Settings.SetValues(s.values)
	if err := env.Settings.Save(); err != nil {
		env.Log.Warn("could not save settings", "path", env.Settings.Path(), "error", err)
	}
	return session.Done(session.Back)
}

// Draw implements session.Session.
func (s *Settings) Draw(scr *core.Screen) {
	rows := settingsRows(scr.Width(), scr.Height())
	scr.DrawTextCentered(core.Max(rows[0].Y-3, 0), "SETTINGS", core.ColorTitle)

	for i, r := range rows {
		color := core.ColorWhite
		if i == s.focus {
			color = core.ColorFocused
			scr.Set(r.X-2, r.Y, '▶', color)
		}
		switch i {
		case rowMusic, rowFX:
			label, v := "Music volume", s.values.MusicVolume
			if i == rowFX {
				label, v = "Effects volume", s.values.FXVolume
			}
			scr.DrawText(r.X, r.Y, label, color)
			b := bar(r)
			scr.DrawBar(b.X, b.Y, b.W, v, core.ColorAccent)
			scr.DrawText(b.Right()+1, r.Y, fmt.Sprintf("%3d%%", int(v*100+0.5)), color)
		case rowFullscreen:
			state := "off"
			if s.values.Fullscreen {
				state = "on"
			}
			scr.DrawText(r.X, r.Y, "Fullscreen", color)
			scr.DrawText(r.X+16, r.Y, "< "+state+" >", color)
		case rowDifficulty:
			scr.DrawText(r.X, r.Y, "Difficulty", color)
			scr.DrawText(r.X+16, r.Y, "< "+ui.DifficultyLabel(s.values.Difficulty)+" >", color)
		case rowSave:
			scr.DrawTextIn(r, "Save & back", color)
		}
	}
	scr.DrawTextCentered(scr.Height()-2, "Up/Down to choose, Left/Right to change, Esc saves", core.ColorHint)
}
