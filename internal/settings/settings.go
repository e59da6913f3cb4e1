// Package settings persists the player's preferences as a small JSON document.
//
// Reads go through gjson so a missing or mistyped key falls back to its
// default without rejecting the rest of the file; writes go through sjson so
// keys this version does not know about survive a save.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/vovakirdan/party-pascal/internal/core"
	"github.com/vovakirdan/party-pascal/internal/rules"
)

// JSON keys.
const (
	keyMusicVolume = "music_volume"
	keyFXVolume    = "fx_volume"
	keyFullscreen  = "fullscreen"
	keyDifficulty  = "difficulty"
)

// ErrCorrupt is returned by Load when the file exists but is not valid JSON.
var ErrCorrupt = errors.New("settings: file is not valid JSON")

// Values is the persisted preference record.
type Values struct {
	MusicVolume float64
	FXVolume    float64
	Fullscreen  bool
	Difficulty  rules.Difficulty
}

// Defaults returns the values used when nothing valid is stored.
func Defaults() Values {
	return Values{
		MusicVolume: 0.5,
		FXVolume:    1.0,
		Fullscreen:  false,
		Difficulty:  rules.Normal,
	}
}

// normalize clamps volumes and resolves unknown difficulties.
func (v Values) normalize() Values {
	v.MusicVolume = core.ClampF(v.MusicVolume, 0, 1)
	v.FXVolume = core.ClampF(v.FXVolume, 0, 1)
	v.Difficulty = rules.For(v.Difficulty).Difficulty
	return v
}

// Store holds the current values and the raw document they came from.
type Store struct {
	path string
	raw  []byte
	v    Values
}

// New returns a store backed by path holding the defaults. Call Load to read
// the file.
func New(path string) *Store {
	return &Store{path: expandHome(path), v: Defaults()}
}

// NewMemory returns a store that is never written to disk.
func NewMemory() *Store {
	return &Store{v: Defaults()}
}

// Path returns the backing file, empty for memory stores.
func (s *Store) Path() string {
	return s.path
}

// Load reads the backing file. A missing file is not an error. On any error
// the store keeps the defaults, so callers may log and carry on.
func (s *Store) Load() error {
	s.v = Defaults()
	s.raw = nil
	if s.path == "" {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("settings: cannot read %s: %w", s.path, err)
	}
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return fmt.Errorf("%w: %s", ErrCorrupt, s.path)
	}

	s.raw = data
	s.v = decode(data)
	return nil
}

func decode(data []byte) Values {
	v := Defaults()
	if r := gjson.GetBytes(data, keyMusicVolume); r.Type == gjson.Number {
		v.MusicVolume = r.Float()
	}
	if r := gjson.GetBytes(data, keyFXVolume); r.Type == gjson.Number {
		v.FXVolume = r.Float()
	}
	if r := gjson.GetBytes(data, keyFullscreen); r.IsBool() {
		v.Fullscreen = r.Bool()
	}
	if r := gjson.GetBytes(data, keyDifficulty); r.Type == gjson.String {
		v.Difficulty = rules.Parse(r.String())
	}
	return v.normalize()
}

// Save writes the current values. Unknown keys from the loaded file are kept.
func (s *Store) Save() error {
	if s.path == "" {
		return nil
	}

	doc := s.raw
	if len(doc) == 0 {
		doc = []byte("{}")
	}
	var err error
	fields := []struct {
		key string
		val any
	}{
		{keyMusicVolume, s.v.MusicVolume},
		{keyFXVolume, s.v.FXVolume},
		{keyFullscreen, s.v.Fullscreen},
		{keyDifficulty, string(s.v.Difficulty)},
	}
	for _, f := range fields {
		if doc, err = sjson.SetBytes(doc, f.key, f.val); err != nil {
			return fmt.Errorf("settings: cannot set %s: %w", f.key, err)
		}
	}
	doc = pretty.Pretty(doc)

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("settings: cannot create directory: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, doc, 0o644); err != nil {
		return fmt.Errorf("settings: cannot write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("settings: cannot replace %s: %w", s.path, err)
	}
	s.raw = doc
	return nil
}

// Values returns a copy of the current values.
func (s *Store) Values() Values {
	return s.v
}

// SetValues replaces the current values, clamping volumes. It does not save.
func (s *Store) SetValues(v Values) {
	s.v = v.normalize()
}

// Difficulty returns the stored difficulty.
func (s *Store) Difficulty() rules.Difficulty {
	return s.v.Difficulty
}

// SetDifficulty changes the difficulty without saving.
func (s *Store) SetDifficulty(d rules.Difficulty) {
	s.v.Difficulty = rules.For(d).Difficulty
}

// MusicVolume returns the music volume in [0, 1].
func (s *Store) MusicVolume() float64 {
	return s.v.MusicVolume
}

// FXVolume returns the effects volume in [0, 1].
func (s *Store) FXVolume() float64 {
	return s.v.FXVolume
}

// Fullscreen returns the stored fullscreen flag.
func (s *Store) Fullscreen() bool {
	return s.v.Fullscreen
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
