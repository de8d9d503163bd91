package chase

// GhostSnapshot captures one ghost's state for determinism testing.
type GhostSnapshot struct {
	X, Y    float64
	Dir     Direction
	State   GhostState
	Variant Variant
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Score       int
	Lives       int
	PlayerX     float64
	PlayerY     float64
	Dir         Direction
	PelletsLeft int
	PowerLeft   int
	PowerTicks  int
	GameOver    bool
	Won         bool
	Paused      bool
	Ghosts      []GhostSnapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		PowerTicks: g.powerTicks,
		GameOver:   g.gameOver,
		Won:        g.won,
		Paused:     g.paused,
	}
	if g.player != nil {
		s.Score = g.player.Score
		s.Lives = g.player.Lives
		s.PlayerX = g.player.X
		s.PlayerY = g.player.Y
		s.Dir = g.player.Dir
	}
	if g.maze != nil {
		s.PelletsLeft = len(g.maze.Pellets)
		s.PowerLeft = len(g.maze.PowerPellets)
	}
	for _, gh := range g.ghosts {
		s.Ghosts = append(s.Ghosts, GhostSnapshot{
			X:       gh.X,
			Y:       gh.Y,
			Dir:     gh.Dir,
			State:   gh.State,
			Variant: gh.Variant,
		})
	}
	return s
}
