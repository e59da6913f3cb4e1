package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/party-pascal/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all minigames",
	Long:  `Shows every minigame in campaign order. Free play offers the ones marked with *.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No minigames available.")
		return
	}

	fmt.Println("Minigames:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-5s  %-*s  %s\n", "Stage", maxIDLen, "ID", "Title")
	fmt.Printf("  %-5s  %-*s  %s\n", "-----", maxIDLen, "--", "-----")
	for i, g := range games {
		mark := " "
		if g.FreePlay {
			mark = "*"
		}
		fmt.Printf("  %-5d %s%-*s  %s\n", i+1, mark, maxIDLen, g.ID, g.Title)
		if g.Blurb != "" {
			fmt.Printf("  %-5s  %-*s  %s\n", "", maxIDLen, "", g.Blurb)
		}
	}

	fmt.Println()
	fmt.Println("* available in free play")
	fmt.Println("Run 'party play <id>' to play one minigame.")
}
