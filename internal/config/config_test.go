package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.TickRate != 60 || cfg.SSH.Addr != ":2323" || cfg.SSH.IdleTimeout != 10*time.Minute {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Level() != log.InfoLevel {
		t.Errorf("Level() = %v", cfg.Level())
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".party")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := "tick_rate: 30\nssh:\n  addr: \":9000\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.TickRate != 30 || cfg.SSH.Addr != ":9000" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.SSH.MaxSessions != 32 {
		t.Errorf("unset keys keep their defaults, MaxSessions = %d", cfg.SSH.MaxSessions)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "party.yaml")
	if err := os.WriteFile(path, []byte("log_level: debug\npaths:\n  db: /tmp/x.db\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Level() != log.DebugLevel || cfg.DBPath() != "/tmp/x.db" {
		t.Errorf("cfg = %+v", cfg)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(bad, []byte("tick_rate: [oops"), 0o644)
	if _, err := Load(bad); err == nil {
		t.Error("Load() of invalid YAML should fail")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PARTY_TICK_RATE", "120")
	t.Setenv("PARTY_DB", "/data/runs.db")
	t.Setenv("PARTY_SSH_ADDR", "0.0.0.0:22")
	t.Setenv("PARTY_SSH_IDLE_TIMEOUT", "90s")
	t.Setenv("PARTY_LOG_LEVEL", "WARN")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.TickRate != 120 || cfg.DBPath() != "/data/runs.db" || cfg.SSH.Addr != "0.0.0.0:22" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.SSH.IdleTimeout != 90*time.Second {
		t.Errorf("IdleTimeout = %v", cfg.SSH.IdleTimeout)
	}
	if cfg.Level() != log.WarnLevel {
		t.Errorf("Level() = %v", cfg.Level())
	}

	t.Setenv("PARTY_TICK_RATE", "not-a-number")
	if _, err := Load(""); err == nil {
		t.Error("an invalid PARTY_TICK_RATE should fail")
	}
}

func TestNormalizeAndPaths(t *testing.T) {
	tests := []struct {
		name string
		cfg  AppConfig
		rate int
	}{
		{"zero rate", AppConfig{}, 60},
		{"too fast", AppConfig{TickRate: 1000}, 60},
		{"kept", AppConfig{TickRate: 30}, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.normalize().TickRate; got != tt.rate {
				t.Errorf("TickRate = %d, expected %d", got, tt.rate)
			}
		})
	}

	cfg := DefaultAppConfig()
	cfg.Paths.DataDir = "/var/party"
	if cfg.SettingsPath() != "/var/party/settings.json" || cfg.LogPath() != "/var/party/party.log" {
		t.Errorf("paths = %s, %s", cfg.SettingsPath(), cfg.LogPath())
	}
	if cfg.HostKeyPath() != "/var/party/ssh_host_ed25519" {
		t.Errorf("HostKeyPath() = %s", cfg.HostKeyPath())
	}
	if (AppConfig{LogLevel: "loud"}).Level() != log.InfoLevel {
		t.Error("unknown levels should fall back to info")
	}
}
