package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/vovakirdan/party-pascal/internal/rules"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "settings.json"))
	if err := s.Load(); err != nil {
		t.Fatalf("Load() on a missing file failed: %v", err)
	}
	if s.Values() != Defaults() {
		t.Errorf("Values() = %+v, expected defaults", s.Values())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	want := Values{MusicVolume: 0.25, FXVolume: 0.75, Fullscreen: true, Difficulty: rules.Hard}

	s := New(path)
	s.SetValues(want)
	if err := s.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		loaded := New(path)
		if err := loaded.Load(); err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if loaded.Values() != want {
			t.Fatalf("pass %d: Values() = %+v, expected %+v", i, loaded.Values(), want)
		}
		if err := loaded.Save(); err != nil {
			t.Fatalf("Save() failed: %v", err)
		}
	}
}

func TestCorruptFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"music_volume": 0.1,`), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New(path)
	err := s.Load()
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("Load() error = %v, expected ErrCorrupt", err)
	}
	if s.Values() != Defaults() {
		t.Errorf("corrupt file should leave defaults, got %+v", s.Values())
	}
}

func TestLoadToleratesBadFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	doc := `{"music_volume": "loud", "fx_volume": 4, "fullscreen": 1, "difficulty": "dificil"}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New(path)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	v := s.Values()
	if v.MusicVolume != 0.5 {
		t.Errorf("mistyped music_volume should default, got %v", v.MusicVolume)
	}
	if v.FXVolume != 1 {
		t.Errorf("fx_volume should clamp to 1, got %v", v.FXVolume)
	}
	if v.Fullscreen {
		t.Error("non-bool fullscreen should default to false")
	}
	if v.Difficulty != rules.Hard {
		t.Errorf("legacy difficulty name not parsed, got %q", v.Difficulty)
	}
}

func TestSavePreservesUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"language": "pt-BR", "difficulty": "easy"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New(path)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	s.SetDifficulty(rules.Normal)
	if err := s.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := gjson.GetBytes(data, "language").String(); got != "pt-BR" {
		t.Errorf("unknown key lost, language = %q", got)
	}
	if got := gjson.GetBytes(data, "difficulty").String(); got != "normal" {
		t.Errorf("difficulty = %q, expected normal", got)
	}
}

func TestMemoryStoreNeverWrites(t *testing.T) {
	s := NewMemory()
	s.SetValues(Values{MusicVolume: -1, FXVolume: 0.3, Difficulty: "bogus"})
	if err := s.Save(); err != nil {
		t.Fatalf("memory Save() failed: %v", err)
	}
	if s.MusicVolume() != 0 || s.Difficulty() != rules.Normal {
		t.Errorf("SetValues should normalize, got %+v", s.Values())
	}
}
