// party-web runs Party Pascal in an ebiten window on the desktop, or in a
// browser canvas when built for js/wasm:
//
//	go run ./cmd/party-web
//	GOOS=js GOARCH=wasm go build -o party.wasm ./cmd/party-web
package main

import (
	"fmt"
	"os"

	"github.com/vovakirdan/party-pascal/internal/core"
	"github.com/vovakirdan/party-pascal/internal/platform/canvas"
	"github.com/vovakirdan/party-pascal/internal/scenes"
	"github.com/vovakirdan/party-pascal/internal/session"

	// Register minigames.
	_ "github.com/vovakirdan/party-pascal/internal/minigames/chase"
	_ "github.com/vovakirdan/party-pascal/internal/minigames/grid"
	_ "github.com/vovakirdan/party-pascal/internal/minigames/quiz"
	_ "github.com/vovakirdan/party-pascal/internal/minigames/roulette"
	_ "github.com/vovakirdan/party-pascal/internal/minigames/stop"
	_ "github.com/vovakirdan/party-pascal/internal/minigames/suitcase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// play opens the canvas at the main menu.
func play(env *session.Env, rc core.RuntimeConfig) error {
	res, err := canvas.Run(env, scenes.NewMenu(), rc, canvas.Options{Title: "Party Pascal"})
	if err != nil {
		return err
	}
	if res.Err != nil {
		env.Log.Error("session ended with an error", "error", res.Err)
	}
	return nil
}
