package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-chomp/internal/core"
	"github.com/vovakirdan/tui-chomp/internal/games/chase"
	"github.com/vovakirdan/tui-chomp/internal/platform/tui"
	"github.com/vovakirdan/tui-chomp/internal/registry"
	"github.com/vovakirdan/tui-chomp/internal/storage"
)

var (
	flagConfig string
	flagMap    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round on the selected map.

Controls:
  WASD/Arrows - Move
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Examples:
  chomp play
  chomp play --map compact
  chomp play --config ./my-rules.yaml
  chomp play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	playCmd.Flags().StringVar(&flagMap, "map", "", "Map ID to play (see 'chomp maps')")
}

func runPlay(cmd *cobra.Command, args []string) {
	mapID := flagMap
	if mapID == "" {
		mapID = chase.Levels[0].ID
	}
	if chase.GetLevelByID(mapID).ID != mapID {
		fmt.Fprintf(os.Stderr, "Error: unknown map %q\n", mapID)
		fmt.Fprintln(os.Stderr, "Run 'chomp maps' to see available maps.")
		os.Exit(1)
	}

	// Terminal size for the runtime config
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Configure the game before creation
	chase.SetConfigPath(flagConfig)
	chase.SetMap(mapID)

	game, err := registry.Create("chase")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, mapID)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
