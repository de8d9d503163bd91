package config

import (
	_ "embed"
)

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

// DefaultChaseConfig returns the default maze-chase configuration.
// Speeds reproduce the classic feel at a 60 tick/s rate: the player moves
// a quarter tile per tick, ghosts slightly slower, eaten ghosts fastest.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		Speeds: ChaseSpeeds{
			Player:     15.0,
			Ghost:      12.5,
			Vulnerable: 8.75,
			Eaten:      17.5,
		},
		Power: ChasePower{
			DurationSec: 7,
		},
		Scoring: ChaseScoring{
			Pellet:      10,
			PowerPellet: 50,
			Capture:     200,
		},
		Gameplay: ChaseGameplay{
			Lives:           3,
			CollisionRadius: 0.6,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "chase":
		return defaultChaseYAML
	default:
		return nil
	}
}
