package main

import (
	"io"

	"github.com/vovakirdan/party-pascal/internal/app"
)

// openApp loads config and stores with the global flag overrides.
func openApp(logOut io.Writer) (*app.App, error) {
	return app.Open(app.Flags{
		ConfigPath:   flagConfig,
		FPS:          flagFPS,
		Seed:         flagSeed,
		DBPath:       flagDBPath,
		SettingsPath: flagSettingsPath,
	}, logOut)
}
