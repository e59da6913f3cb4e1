// party is an educational party game about Pascal, played in the terminal
// or over SSH.
//
// Usage:
//
//	party play               - Start at the main menu
//	party play <minigame>    - Play one minigame on its own
//	party list               - List the minigames
//	party serve              - Start the SSH server
//	party scores             - Browse run history
//	party settings           - Show or change preferences
//
// Global flags:
//
//	--config <path>    - Config file (default: ~/.party/config.yaml)
//	--fps <rate>       - Tick rate (default: from config, 60)
//	--seed <value>     - RNG seed for reproducible shuffles
//	--db <path>        - Run history database
//	--settings <path>  - Settings file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register minigames.
	_ "github.com/vovakirdan/party-pascal/internal/minigames/chase"
	_ "github.com/vovakirdan/party-pascal/internal/minigames/grid"
	_ "github.com/vovakirdan/party-pascal/internal/minigames/quiz"
	_ "github.com/vovakirdan/party-pascal/internal/minigames/roulette"
	_ "github.com/vovakirdan/party-pascal/internal/minigames/stop"
	_ "github.com/vovakirdan/party-pascal/internal/minigames/suitcase"
)

var (
	flagConfig       string
	flagFPS          int
	flagSeed         int64
	flagDBPath       string
	flagSettingsPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "party",
	Short: "Party Pascal - a quiz party about the Pascal language",
	Long: `Party Pascal is a campaign of six minigames about the Pascal
programming language: a quiz, a code grid, a suitcase of keywords, a
roulette bonus round, a chase and a stop-the-clock round.

Available commands:
  play      - Start the game (or one minigame directly)
  list      - Show all minigames
  serve     - Start an SSH server for remote players
  scores    - Browse the run history
  settings  - Show or change preferences

Examples:
  party play
  party play quiz
  party serve
  party settings set difficulty hard`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = config value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagSettingsPath, "settings", "", "Path to settings file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
}
