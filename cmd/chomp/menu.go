package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-chomp/internal/core"
	"github.com/vovakirdan/tui-chomp/internal/games/chase"
	"github.com/vovakirdan/tui-chomp/internal/platform/tui"
	"github.com/vovakirdan/tui-chomp/internal/registry"
	"github.com/vovakirdan/tui-chomp/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive map picker",
	Long: `Open the interactive map picker, play rounds, and return to the
picker when a round ends.

Controls:
  Up/Down/j/k  - Navigate maps
  Enter/Space  - Select map
  Tab          - View scoreboard
  Q            - Quit

Examples:
  chomp menu
  chomp menu --fps 30
  chomp menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

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

	// Picker loop
	for {
		result, err := tui.RunMapSelector(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Carry over any terminal size changes
		cfg = result.Config

		if result.Quit {
			break
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to the picker
			}
			break // User quit from the scoreboard
		}

		if result.MapID == "" {
			break
		}

		chase.SetMap(result.MapID)

		game, err := registry.Create("chase")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each round
		cfg.Seed = time.Now().UnixNano()

		if err := tui.Run(game, store, cfg, result.MapID); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to the picker
	}

	if store != nil {
		store.Close()
	}
}
