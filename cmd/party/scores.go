package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/party-pascal/internal/platform/tui"
	"github.com/vovakirdan/party-pascal/internal/score"
	"github.com/vovakirdan/party-pascal/internal/storage"
	"github.com/vovakirdan/party-pascal/internal/ui"
)

var (
	flagScoresPlain bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse the run history",
	Long: `Show the best campaign runs, free play picks, recent runs and
per-minigame statistics.

In a terminal this opens an interactive viewer (Tab switches pages, q
quits). With --plain, or when stdout is not a terminal, the best campaign
runs are printed as a table.

Examples:
  party scores
  party scores --plain --limit 5`,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a table instead of the interactive viewer")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Rows in the plain table")
}

func runScores(_ *cobra.Command, _ []string) error {
	a, err := openApp(io.Discard)
	if err != nil {
		return err
	}
	defer a.Close()
	if a.Store == nil {
		return errors.New("run history is unavailable, check --db")
	}

	fd := int(os.Stdout.Fd())
	if !flagScoresPlain && term.IsTerminal(fd) {
		w, h, err := term.GetSize(fd)
		if err != nil {
			w, h = 80, 24
		}
		return tui.RunScoreboard(a.Store, w, h)
	}
	return printTopRuns(os.Stdout, a.Store, flagScoresLimit)
}

// printTopRuns writes the best campaign runs as a plain table.
func printTopRuns(out io.Writer, store *storage.Store, limit int) error {
	runs, err := store.TopRuns(score.ModeCampaign, limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Best campaign runs")
	fmt.Fprintln(out)
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'party play' to set the first score!")
		return nil
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Rank", "Weighted", "Score", "Difficulty", "Player", "Date")
	for i, r := range runs {
		t.Row(
			strconv.Itoa(i+1),
			strconv.Itoa(r.Weighted),
			strconv.Itoa(r.Score),
			ui.DifficultyLabel(r.Difficulty),
			r.PlayerID,
			r.PlayedAt.Local().Format("2006-01-02 15:04"),
		)
	}
	_, err = fmt.Fprintln(out, t.Render())
	return err
}
