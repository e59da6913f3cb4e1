package audio

import (
	"os"
	"path/filepath"
)

// Music keys.
const (
	MusicMenu          = "menu"
	MusicStageIntro    = "loop_start"
	MusicFinal         = "final"
	MusicCutsceneIntro = "cutscene_intro"
	MusicCutsceneFinal = "cutscene_final"
	MusicQuiz          = "quiz"
	MusicGrid          = "grid"
	MusicSuitcase      = "suitcase"
	MusicRoulette      = "roulette"
	MusicChase         = "chase"
	MusicStop          = "stop"
)

// Effect keys.
const (
	SFXClick     = "click"
	SFXCorrect   = "correct"
	SFXWrong     = "wrong"
	SFXExplosion = "explosion"
	SFXRoulette  = "roulette"
)

var musicFiles = map[string]string{
	MusicMenu:          "music_menu.ogg",
	MusicStageIntro:    "loop_start.ogg",
	MusicFinal:         "music_final.ogg",
	MusicCutsceneIntro: "music_cutscene_intro.ogg",
	MusicCutsceneFinal: "music_cutscene_final.ogg",
	MusicQuiz:          "music_quiz.ogg",
	MusicGrid:          "music_grid.ogg",
	MusicSuitcase:      "music_suitcase.ogg",
	MusicRoulette:      "music_bonus_round.ogg",
	MusicChase:         "music_chase.ogg",
	MusicStop:          "music_stop.ogg",
}

var sfxFiles = map[string]string{
	SFXClick:     "click.wav",
	SFXCorrect:   "correct.wav",
	SFXWrong:     "wrong.wav",
	SFXExplosion: "explosion.wav",
	SFXRoulette:  "roulette.wav",
}

// Dirs locates the two asset directories under a root.
type Dirs struct {
	Music string
	SFX   string
}

// DirsUnder returns the standard layout: <root>/sounds/music and <root>/sounds/sfx.
func DirsUnder(root string) Dirs {
	return Dirs{
		Music: filepath.Join(root, "sounds", "music"),
		SFX:   filepath.Join(root, "sounds", "sfx"),
	}
}

// ResolveMusic finds the file for a music key. Short loops may live in the
// effects directory, so that is searched second. Returns "" if neither exists.
func (d Dirs) ResolveMusic(key string) string {
	return d.resolve(fileFor(musicFiles, key), d.Music, d.SFX)
}

// ResolveSFX finds the file for an effect key, effects directory first.
func (d Dirs) ResolveSFX(key string) string {
	return d.resolve(fileFor(sfxFiles, key), d.SFX, d.Music)
}

func (d Dirs) resolve(name string, dirs ...string) string {
	if name == "" {
		return ""
	}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// fileFor maps a key to a file name; keys missing from the table are taken
// to be file names themselves.
func fileFor(table map[string]string, key string) string {
	if f, ok := table[key]; ok {
		return f
	}
	return key
}
