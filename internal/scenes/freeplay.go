package scenes

import (
	"time"

	"github.com/vovakirdan/party-pascal/internal/audio"
	"github.com/vovakirdan/party-pascal/internal/core"
	"github.com/vovakirdan/party-pascal/internal/registry"
	"github.com/vovakirdan/party-pascal/internal/rules"
	"github.com/vovakirdan/party-pascal/internal/score"
	"github.com/vovakirdan/party-pascal/internal/session"
	"github.com/vovakirdan/party-pascal/internal/ui"
)

// Free play navigation entries, listed after the minigames.
const (
	FreeBack = "Back"
	FreeMenu = "Main menu"
)

// FreePlay lets the player pick any minigame except the bonus round. The
// ledger starts from zero for every pick, and a failing minigame is logged
// and contained. Back returns to mode select, the main-menu button exits
// with Menu.
type FreePlay struct {
	games      []registry.Info
	choices    *ui.Choices
	playing    int
	difficulty rules.Difficulty
}

// NewFreePlay creates the free play selector.
func NewFreePlay() *FreePlay {
	return &FreePlay{}
}

// Name implements session.Session.
func (fp *FreePlay) Name() string { return "free-play" }

// Enter implements session.Session.
func (fp *FreePlay) Enter(*session.Env) error {
	fp.games = registry.FreePlay()
	opts := make([]string, 0, len(fp.games)+2)
	for _, g := range fp.games {
		opts = append(opts, g.Title)
	}
	fp.choices = &ui.Choices{Options: append(opts, FreeBack, FreeMenu), Height: 1}
	fp.playing = -1
	return nil
}

func (fp *FreePlay) area(w, h int) core.Rect {
	n := len(fp.choices.Options)
	area := core.Centered(w, h, core.Min(44, w-4), n*2)
	area.Y = core.Max(area.Y, 3)
	return area
}

// Update implements session.Session.
func (fp *FreePlay) Update(env *session.Env, f session.Frame) session.Transition {
	if f.Input.Has(core.ActionBack) {
		return session.Done(session.Back)
	}
	pick, ok := fp.choices.Pick(f.Input, fp.area(f.Width, f.Height))
	if !ok {
		return session.Stay()
	}
	env.Audio.PlaySFX(audio.SFXClick)
	switch {
	case pick < len(fp.games):
	case fp.choices.Options[pick] == FreeBack:
		return session.Done(session.Back)
	default:
		return session.Done(session.Menu)
	}

	info := fp.games[pick]
	game, err := registry.Create(info.ID)
	if err != nil {
		env.Log.Warn("minigame unavailable", "game", info.ID, "error", err)
		return session.Stay()
	}
	env.Ledger.Reset()
	fp.playing = pick
	fp.difficulty = env.Difficulty()
	env.Audio.FadeToMusic(info.Music, 500*time.Millisecond)
	return session.Call(game)
}

// Resume implements session.Resumer.
func (fp *FreePlay) Resume(env *session.Env, child session.Result) session.Transition {
	if fp.playing < 0 {
		return session.Stay()
	}
	info := fp.games[fp.playing]
	fp.playing = -1
	env.Audio.FadeToMusic(audio.MusicMenu, 800*time.Millisecond)

	stage := score.StageResult{Game: info.ID, Points: env.Ledger.Total()}
	if child.Err != nil {
		env.Log.Warn("minigame failed", "game", info.ID, "error", child.Err)
		env.Ledger.Reset()
		stage.Points, stage.Failed = 0, true
	}
	if env.Runs != nil {
		run := score.NewRun(score.ModeFreePlay, fp.difficulty, stage.Points, []score.StageResult{stage})
		run.PlayerID = env.PlayerID
		if _, err := env.Runs.SaveRun(run); err != nil {
			env.Log.Error("could not save run", "error", err)
		}
	}
	return session.Stay()
}

// Draw implements session.Session.
func (fp *FreePlay) Draw(scr *core.Screen) {
	area := fp.area(scr.Width(), scr.Height())
	scr.DrawTextCentered(core.Max(area.Y-2, 0), "FREE PLAY", core.ColorTitle)
	fp.choices.Draw(scr, area, nil)
	if i := fp.choices.Focus; i < len(fp.games) {
		scr.DrawTextCentered(scr.Height()-1, fp.games[i].Blurb, core.ColorHint)
	}
}
