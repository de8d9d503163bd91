// chomp is a terminal maze-chase arcade game.
//
// Usage:
//
//	chomp play               - Play a round
//	chomp menu               - Interactive map picker
//	chomp maps               - List available maps
//	chomp scores             - Show high scores
//	chomp serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.chomp/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-chomp/internal/games/chase"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chomp",
	Short: "Chomp - A maze-chase arcade game for your terminal",
	Long: `Chomp is a terminal maze-chase game: eat every pellet while
dodging ghosts, grab power pellets to turn the tables.

Available commands:
  play     - Play a round directly
  menu     - Interactive map picker
  maps     - List available maps
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  chomp play
  chomp play --map compact
  chomp menu
  chomp serve --ssh :2222
  chomp scores --map classic`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chomp/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
