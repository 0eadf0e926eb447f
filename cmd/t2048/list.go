package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all board-size variants",
	Long:  `Shows the registered 2048 variants. Other sizes are playable with 'play --size'.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	games := registry.List()
	out := cmd.OutOrStdout()

	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return
	}

	fmt.Fprintln(out, "Available games:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Fprintf(out, "  %-*s  %-5s  %s\n", maxIDLen, "ID", "Board", "Title")
	fmt.Fprintf(out, "  %-*s  %-5s  %s\n", maxIDLen, "--", "-----", "-----")

	// Print games
	for _, g := range games {
		board := fmt.Sprintf("%dx%d", g.BoardSize, g.BoardSize)
		fmt.Fprintf(out, "  %-*s  %-5s  %s\n", maxIDLen, g.ID, board, g.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 't2048 play <id>' to play a game.")
}
