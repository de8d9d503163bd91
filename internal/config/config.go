// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

// ChaseConfig contains all tunables for the maze-chase game.
type ChaseConfig struct {
	Speeds   ChaseSpeeds   `yaml:"speeds"`
	Power    ChasePower    `yaml:"power"`
	Scoring  ChaseScoring  `yaml:"scoring"`
	Gameplay ChaseGameplay `yaml:"gameplay"`
}

// ChaseSpeeds defines movement speeds in tiles per second.
// Converted to tiles per tick at reset using the runtime tick rate.
// Vulnerable must stay below Ghost, and Eaten above it, or vulnerable
// ghosts become impossible to catch up with.
type ChaseSpeeds struct {
	Player     float64 `yaml:"player"`
	Ghost      float64 `yaml:"ghost"`
	Vulnerable float64 `yaml:"vulnerable"`
	Eaten      float64 `yaml:"eaten"`
}

// ChasePower defines the power pellet window.
type ChasePower struct {
	DurationSec float64 `yaml:"duration_sec"`
}

// ChaseScoring defines point values.
type ChaseScoring struct {
	Pellet      int `yaml:"pellet"`
	PowerPellet int `yaml:"power_pellet"`
	Capture     int `yaml:"capture"`
}

// ChaseGameplay defines round parameters.
type ChaseGameplay struct {
	Lives int `yaml:"lives"`
	// CollisionRadius is the player/ghost collision threshold in tiles.
	CollisionRadius float64 `yaml:"collision_radius"`
}
