package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chomp/internal/storage"
)

var flagScoresMap string

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores, optionally filtered by map.

Examples:
  chomp scores
  chomp scores --map classic`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresMap, "map", "", "Only show scores for this map")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var scores []storage.ScoreEntry
	if flagScoresMap != "" {
		scores, err = store.TopScoresForMap("chase", flagScoresMap, 10)
	} else {
		scores, err = store.TopScores("chase", 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	title := "High Scores"
	if flagScoresMap != "" {
		title = fmt.Sprintf("High Scores - %s", flagScoresMap)
	}
	fmt.Println(title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'chomp play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "Rank", "Score", "Map", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "----", "-----", "---", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-10s  %s\n", i+1, entry.Score, entry.MapID, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore("chase"); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
