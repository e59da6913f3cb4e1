package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/party-pascal/internal/audio"
	"github.com/vovakirdan/party-pascal/internal/rules"
	"github.com/vovakirdan/party-pascal/internal/score"
)

func openTestApp(t *testing.T, f Flags) (*App, *bytes.Buffer) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(home)
	if f.DBPath == "" {
		f.DBPath = filepath.Join(home, "runs.db")
	}
	if f.SettingsPath == "" {
		f.SettingsPath = filepath.Join(home, "settings.json")
	}
	var logs bytes.Buffer
	a, err := Open(f, &logs)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(a.Close)
	return a, &logs
}

func TestOpenAppliesFlags(t *testing.T) {
	a, _ := openTestApp(t, Flags{FPS: 30, Seed: 42})

	if a.Config.TickRate != 30 {
		t.Errorf("TickRate = %d, expected the flag value 30", a.Config.TickRate)
	}
	rc := a.Runtime(100, 40)
	if rc.ScreenW != 100 || rc.ScreenH != 40 || rc.TickRate != 30 || rc.Seed != 42 {
		t.Errorf("Runtime() = %+v", rc)
	}
	if rc := a.Runtime(0, 0); rc.ScreenW != 80 || rc.ScreenH != 24 {
		t.Errorf("Runtime(0, 0) = %+v, expected the 80x24 default", rc)
	}
	if a.Store == nil || a.Recorder() == nil {
		t.Fatal("run history should open under a writable path")
	}
}

func TestOpenFallsBackOnCorruptSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	a, logs := openTestApp(t, Flags{SettingsPath: path})

	if a.Settings.Difficulty() != rules.Normal || a.Settings.MusicVolume() != 0.5 {
		t.Errorf("settings = %+v, expected defaults", a.Settings.Values())
	}
	if !strings.Contains(logs.String(), "settings unreadable") {
		t.Errorf("expected a warning, logs:\n%s", logs.String())
	}
}

func TestOpenRejectsMissingContentFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PARTY_CONTENT", filepath.Join(home, "missing.yaml"))
	if _, err := Open(Flags{DBPath: filepath.Join(home, "runs.db")}, &bytes.Buffer{}); err == nil {
		t.Error("Open() with a missing content file should fail")
	}
}

func TestRecorderIsNilWithoutStore(t *testing.T) {
	a := &App{}
	if a.Recorder() != nil {
		t.Error("Recorder() must be a nil interface when there is no store")
	}
}

func TestNewEnvIsSeeded(t *testing.T) {
	a, _ := openTestApp(t, Flags{Seed: 7})
	e1 := a.NewEnv(audio.Silent{})
	e2 := a.NewEnv(audio.Silent{})

	if e1.Rand.Int63() != e2.Rand.Int63() {
		t.Error("the same seed should give the same sequence")
	}
	if e1.Settings != a.Settings || e1.Content != a.Content || e1.PlayerID == "" {
		t.Errorf("env not wired: %+v", e1)
	}

	id, err := e1.Runs.SaveRun(score.NewRun(score.ModeCampaign, rules.Normal, 10, nil))
	if err != nil || id == 0 {
		t.Errorf("SaveRun() = %d, %v", id, err)
	}
}
