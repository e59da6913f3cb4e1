// Package app wires the configuration, stores and content that every
// front end (terminal, SSH, canvas) starts from.
package app

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/party-pascal/internal/audio"
	"github.com/vovakirdan/party-pascal/internal/config"
	"github.com/vovakirdan/party-pascal/internal/content"
	"github.com/vovakirdan/party-pascal/internal/core"
	"github.com/vovakirdan/party-pascal/internal/session"
	"github.com/vovakirdan/party-pascal/internal/settings"
	"github.com/vovakirdan/party-pascal/internal/storage"
	"github.com/vovakirdan/party-pascal/internal/story"
)

// Flags are the command-line overrides. Zero values keep the config value.
type Flags struct {
	ConfigPath   string
	FPS          int
	Seed         int64
	DBPath       string
	SettingsPath string
}

// App holds what a front end needs to build session environments.
type App struct {
	Config   config.AppConfig
	Settings *settings.Store
	Content  *content.Library
	Story    *story.Script
	// Store is nil when the run history could not be opened.
	Store *storage.Store
	Log   *log.Logger
	Seed  int64

	logFile *os.File
}

// Open loads everything. Logs go to logOut, or to the configured log file
// when logOut is nil. Only a broken config, content or story file is fatal;
// unreadable settings and run history are logged and replaced.
func Open(f Flags, logOut io.Writer) (*App, error) {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}
	if f.FPS > 0 {
		cfg.TickRate = f.FPS
	}
	if f.DBPath != "" {
		cfg.Paths.DB = f.DBPath
	}
	if f.SettingsPath != "" {
		cfg.Paths.Settings = f.SettingsPath
	}

	a := &App{Config: cfg, Seed: f.Seed}
	if logOut == nil {
		logOut = a.openLogFile()
	}
	a.Log = log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Prefix:          "party",
		Level:           cfg.Level(),
	})

	if a.Content, err = content.Load(config.ExpandHome(cfg.Paths.Content)); err != nil {
		a.Close()
		return nil, fmt.Errorf("app: %w", err)
	}
	if a.Story, err = story.Load(config.ExpandHome(cfg.Paths.Story)); err != nil {
		a.Close()
		return nil, fmt.Errorf("app: %w", err)
	}

	a.Settings = settings.New(cfg.SettingsPath())
	if err := a.Settings.Load(); err != nil {
		a.Log.Warn("settings unreadable, using defaults", "error", err)
	}

	store, err := storage.Open(cfg.DBPath())
	if err != nil {
		a.Log.Warn("run history unavailable", "error", err)
	} else {
		a.Store = store
	}
	return a, nil
}

// openLogFile opens the configured log file, discarding logs when it
// cannot be created.
func (a *App) openLogFile() io.Writer {
	path := a.Config.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return io.Discard
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return io.Discard
	}
	a.logFile = f
	return f
}

// Recorder returns the run history, or nil when there is none.
func (a *App) Recorder() session.Recorder {
	if a.Store == nil {
		return nil
	}
	return a.Store
}

// Runtime returns the loop parameters for a surface of w by h cells.
func (a *App) Runtime(w, h int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w > 0 && h > 0 {
		rc.ScreenW, rc.ScreenH = w, h
	}
	rc.TickRate = a.Config.TickRate
	rc.Seed = a.Seed
	return rc
}

// OpenAudio starts a mixer over the configured asset directory with the
// stored volumes. A missing output device is logged and the mixer stays
// silent.
func (a *App) OpenAudio() *audio.Mixer {
	m := audio.NewMixer(audio.DirsUnder(config.ExpandHome(a.Config.Paths.Assets)), a.Log)
	if err := m.Start(); err != nil {
		a.Log.Warn("audio output unavailable", "error", err)
	}
	m.SetMusicVolume(a.Settings.MusicVolume())
	m.SetSFXVolume(a.Settings.FXVolume())
	return m
}

// NewEnv builds the environment of the local player.
func (a *App) NewEnv(player audio.Player) *session.Env {
	seed := a.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return session.NewEnv(session.Env{
		Settings: a.Settings,
		Audio:    player,
		Content:  a.Content,
		Story:    a.Story,
		Runs:     a.Recorder(),
		Rand:     rand.New(rand.NewSource(seed)),
		Log:      a.Log,
		PlayerID: localPlayer(),
	})
}

func localPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}

// Close releases the run history and the log file.
func (a *App) Close() {
	if a.Store != nil {
		a.Store.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}
