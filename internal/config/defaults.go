package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/party.yaml
var defaultPartyYAML []byte

// DefaultAppConfig returns the built-in configuration.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		TickRate: 60,
		LogLevel: "info",
		Paths: PathsConfig{
			DataDir: "~/.party",
			Assets:  "assets",
		},
		SSH: SSHConfig{
			Addr:        ":2323",
			IdleTimeout: 10 * time.Minute,
			MaxSessions: 32,
		},
	}
}

// normalize replaces unusable values with the defaults.
func (c AppConfig) normalize() AppConfig {
	def := DefaultAppConfig()
	if c.TickRate <= 0 || c.TickRate > 240 {
		c.TickRate = def.TickRate
	}
	if c.Paths.DataDir == "" {
		c.Paths.DataDir = def.Paths.DataDir
	}
	if c.SSH.Addr == "" {
		c.SSH.Addr = def.SSH.Addr
	}
	if c.SSH.MaxSessions <= 0 {
		c.SSH.MaxSessions = def.SSH.MaxSessions
	}
	return c
}
