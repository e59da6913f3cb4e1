//go:build js && wasm

package main

import (
	"os"
	"syscall/js"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/party-pascal/internal/core"
	"github.com/vovakirdan/party-pascal/internal/session"
)

// run plays with in-memory settings and no run history; the page can read
// the current score through partyScore().
func run() error {
	env := session.NewEnv(session.Env{
		Log:      log.NewWithOptions(os.Stderr, log.Options{Prefix: "party"}),
		PlayerID: "browser",
	})

	js.Global().Set("partyScore", js.FuncOf(func(this js.Value, args []js.Value) any {
		return js.ValueOf(env.Ledger.Total())
	}))

	return play(env, core.DefaultConfig())
}
