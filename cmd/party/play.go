package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/party-pascal/internal/platform/tui"
	"github.com/vovakirdan/party-pascal/internal/registry"
	"github.com/vovakirdan/party-pascal/internal/scenes"
	"github.com/vovakirdan/party-pascal/internal/session"
)

var (
	flagMute          bool
	flagScreenshotDir string
)

var playCmd = &cobra.Command{
	Use:   "play [minigame]",
	Short: "Play Party Pascal",
	Long: `Start the game at the main menu, or play a single minigame.

Controls:
  Arrows       - Move focus
  Enter/Space  - Confirm, dismiss dialogs
  A-D / 1-9    - Pick an answer directly
  Mouse        - Click buttons and answers
  Esc          - Leave the current screen
  Ctrl+S       - Save a text screenshot
  Ctrl+C       - Quit

Logs are written to ~/.party/party.log (see 'log_file' in the config).

Examples:
  party play
  party play chase
  party play --seed 7 --fps 30
  party play --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable audio")
	playCmd.Flags().StringVar(&flagScreenshotDir, "screenshots", ".", "Directory for Ctrl+S screenshots")
}

func runPlay(cmd *cobra.Command, args []string) error {
	var root session.Session = scenes.NewMenu()
	if len(args) == 1 {
		s, err := registry.Create(args[0])
		if err != nil {
			return fmt.Errorf("%w\nRun 'party list' to see available minigames", err)
		}
		root = s
	}

	a, err := openApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	rc := a.Runtime(width, height)

	env := a.NewEnv(nil)
	if !flagMute {
		mixer := a.OpenAudio()
		defer mixer.Close()
		env.Audio = mixer
	}

	a.Log.Info("starting", "root", root.Name(), "difficulty", env.Difficulty(), "size", fmt.Sprintf("%dx%d", rc.ScreenW, rc.ScreenH))
	res, err := tui.Run(env, root, tui.Options{
		TickRate:      rc.TickRate,
		Width:         rc.ScreenW,
		Height:        rc.ScreenH,
		ScreenshotDir: flagScreenshotDir,
	})
	if err != nil {
		return err
	}
	if res.Err != nil {
		a.Log.Error("session ended with an error", "error", res.Err)
	}
	if len(args) == 1 {
		fmt.Printf("%s: %d points\n", args[0], env.Ledger.Total())
	}
	return nil
}
