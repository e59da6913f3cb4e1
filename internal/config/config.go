// Package config loads the runtime configuration: paths, tick rate,
// logging and the SSH server. Values come from YAML and can be overridden
// from PARTY_* environment variables; command-line flags override both.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// AppConfig is the complete runtime configuration.
type AppConfig struct {
	TickRate int         `yaml:"tick_rate" env:"PARTY_TICK_RATE"`
	LogLevel string      `yaml:"log_level" env:"PARTY_LOG_LEVEL"`
	Paths    PathsConfig `yaml:"paths"`
	SSH      SSHConfig   `yaml:"ssh"`
}

// PathsConfig locates the files the game reads and writes.
type PathsConfig struct {
	DataDir  string `yaml:"data_dir" env:"PARTY_DATA_DIR"`
	DB       string `yaml:"db"       env:"PARTY_DB"`
	Settings string `yaml:"settings" env:"PARTY_SETTINGS"`
	Assets   string `yaml:"assets"   env:"PARTY_ASSETS"`
	Content  string `yaml:"content"  env:"PARTY_CONTENT"`
	Story    string `yaml:"story"    env:"PARTY_STORY"`
	LogFile  string `yaml:"log_file" env:"PARTY_LOG_FILE"`
}

// SSHConfig configures `party serve`.
type SSHConfig struct {
	Addr        string        `yaml:"addr"         env:"PARTY_SSH_ADDR"`
	HostKey     string        `yaml:"host_key"     env:"PARTY_SSH_HOST_KEY"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"PARTY_SSH_IDLE_TIMEOUT"`
	MaxSessions int           `yaml:"max_sessions" env:"PARTY_SSH_MAX_SESSIONS"`
}

// DBPath returns the run history database, under the data dir unless set.
func (c AppConfig) DBPath() string {
	return c.inData(c.Paths.DB, "runs.db")
}

// SettingsPath returns the settings file, under the data dir unless set.
func (c AppConfig) SettingsPath() string {
	return c.inData(c.Paths.Settings, "settings.json")
}

// LogPath returns the log file used by the terminal host.
func (c AppConfig) LogPath() string {
	return c.inData(c.Paths.LogFile, "party.log")
}

// HostKeyPath returns the SSH host key file.
func (c AppConfig) HostKeyPath() string {
	return c.inData(c.SSH.HostKey, "ssh_host_ed25519")
}

func (c AppConfig) inData(path, name string) string {
	if path != "" {
		return ExpandHome(path)
	}
	return filepath.Join(ExpandHome(c.Paths.DataDir), name)
}

// Level parses LogLevel, falling back to info.
func (c AppConfig) Level() log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
