package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chomp/internal/games/chase"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List all available maps",
	Long:  `Shows the built-in mazes with their dimensions and pellet counts.`,
	Run:   runMaps,
}

func runMaps(cmd *cobra.Command, args []string) {
	fmt.Println("Available maps:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range chase.Levels {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %-12s  %-8s  %s\n", maxIDLen, "ID", "Name", "Size", "Pellets")
	fmt.Printf("  %-*s  %-12s  %-8s  %s\n", maxIDLen, "--", "----", "----", "-------")

	for _, l := range chase.Levels {
		size := "?"
		pellets := "?"
		if m, err := chase.NewMaze(l.Layout); err == nil {
			size = fmt.Sprintf("%dx%d", m.Width, m.Height)
			pellets = fmt.Sprintf("%d", m.PelletCount())
		}
		fmt.Printf("  %-*s  %-12s  %-8s  %s\n", maxIDLen, l.ID, l.Name, size, pellets)
	}

	fmt.Println()
	fmt.Println("Run 'chomp play --map <id>' to play a map.")
}
