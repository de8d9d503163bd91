package chase

import (
	"math/rand"

	"github.com/vovakirdan/tui-chomp/internal/core"
)

// GhostState is a ghost's behavior state. States cycle for the lifetime
// of a round; there is no terminal state.
type GhostState int

const (
	// GhostNormal pursues the player and is lethal on contact.
	GhostNormal GhostState = iota
	// GhostVulnerable flees and can be eaten while the power window is open.
	GhostVulnerable
	// GhostEaten races back to the house tile, then reverts to normal.
	GhostEaten
)

func (s GhostState) String() string {
	switch s {
	case GhostNormal:
		return "normal"
	case GhostVulnerable:
		return "vulnerable"
	case GhostEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

// Variant selects the ghost's targeting policy. The set is closed and
// small, so a tag plus a switch beats open-ended subtyping here.
type Variant int

const (
	// VariantChaser greedily minimizes Manhattan distance to its target.
	VariantChaser Variant = iota
	// VariantRandom picks uniformly among legal directions.
	VariantRandom
)

func (v Variant) String() string {
	switch v {
	case VariantChaser:
		return "chaser"
	case VariantRandom:
		return "random"
	default:
		return "unknown"
	}
}

// ghostSpeeds holds per-state speeds in tiles per tick. The ordering
// vulnerable < normal < eaten is assumed by gameplay tuning.
type ghostSpeeds struct {
	normal     float64
	vulnerable float64
	eaten      float64
}

// Ghost is an adversary entity: a moving body, a behavior state machine,
// and a targeting variant.
type Ghost struct {
	Entity
	Home    Point
	State   GhostState
	Variant Variant
	Color   core.Color // cosmetic only

	speeds ghostSpeeds
}

// NewGhost creates a ghost at its home tile with a random initial heading.
func NewGhost(spawn GhostSpawn, color core.Color, speeds ghostSpeeds, rng *rand.Rand) *Ghost {
	g := &Ghost{
		Home:    spawn.Pos,
		Variant: spawn.Variant,
		Color:   color,
		speeds:  speeds,
	}
	g.SnapTo(spawn.Pos)
	g.Dir = randomDirection(rng)
	g.Speed = speeds.normal
	return g
}

// SetVulnerable opens the power window for this ghost.
// Eaten ghosts are unaffected.
func (g *Ghost) SetVulnerable() {
	if g.State != GhostEaten {
		g.State = GhostVulnerable
	}
}

// SetEaten marks the ghost as eaten; it will travel to the house.
func (g *Ghost) SetEaten() {
	g.State = GhostEaten
}

// ResetHome returns the ghost to its spawn with a fresh random heading
// and normal state, used after the player loses a life.
func (g *Ghost) ResetHome(rng *rand.Rand) {
	g.SnapTo(g.Home)
	g.Dir = randomDirection(rng)
	g.State = GhostNormal
}

// Update runs one tick: a direction decision if the ghost sits on a tile
// center, then movement at the state's speed, then the eaten-at-house
// transition.
func (g *Ghost) Update(m *Maze, playerTile Point, rng *rand.Rand) {
	if g.Centered() {
		choices := g.candidates(m, true)
		if len(choices) == 0 {
			// Dead end: allow the U-turn.
			choices = g.candidates(m, false)
		}
		g.Dir = g.chooseDirection(choices, g.target(m, playerTile), rng)
	}

	g.Speed = g.currentSpeed()
	g.Entity.Advance(m)

	if g.State == GhostEaten && g.Centered() && g.Tile() == m.House {
		g.State = GhostNormal
		// Re-choose away from the reverse so the ghost leaves the house
		// instead of oscillating on it.
		choices := g.candidates(m, true)
		if len(choices) == 0 {
			choices = g.candidates(m, false)
		}
		if len(choices) > 0 {
			g.Dir = choices[rng.Intn(len(choices))]
		}
	}
}

func (g *Ghost) currentSpeed() float64 {
	switch g.State {
	case GhostVulnerable:
		return g.speeds.vulnerable
	case GhostEaten:
		return g.speeds.eaten
	default:
		return g.speeds.normal
	}
}

// candidates collects legal directions from the current tile in the fixed
// decision order, optionally excluding the reverse of the current heading.
func (g *Ghost) candidates(m *Maze, avoidReverse bool) []Direction {
	t := g.Tile()
	reverse := g.Dir.Reverse()

	var choices []Direction
	for _, d := range decisionOrder {
		if avoidReverse && g.Dir != DirNone && d == reverse {
			continue
		}
		dx, dy := d.Delta()
		if m.Passable(Point{X: t.X + dx, Y: t.Y + dy}) {
			choices = append(choices, d)
		}
	}
	return choices
}

// target computes the tile the ghost steers toward given its state.
func (g *Ghost) target(m *Maze, playerTile Point) Point {
	switch g.State {
	case GhostEaten:
		return m.House
	case GhostVulnerable:
		// Flee toward the corner diagonally opposite the player's
		// half-plane.
		far := Point{}
		if playerTile.X <= m.Width/2 {
			far.X = m.Width - 1
		}
		if playerTile.Y <= m.Height/2 {
			far.Y = m.Height - 1
		}
		return far
	default:
		return playerTile
	}
}

// chooseDirection resolves the decision by variant. An empty candidate
// set (a fully walled-in cell) holds the current heading; it is never
// fatal.
func (g *Ghost) chooseDirection(choices []Direction, target Point, rng *rand.Rand) Direction {
	if len(choices) == 0 {
		return g.Dir
	}

	if g.Variant == VariantRandom {
		return choices[rng.Intn(len(choices))]
	}

	// Greedy: minimize Manhattan distance of the tile-after-stepping to
	// the target. Strict less-than keeps the first candidate on ties.
	t := g.Tile()
	best := choices[0]
	bestDist := -1
	for _, d := range choices {
		dx, dy := d.Delta()
		dist := manhattan(Point{X: t.X + dx, Y: t.Y + dy}, target)
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = d
		}
	}
	return best
}

// randomDirection draws one of the four unit directions.
func randomDirection(rng *rand.Rand) Direction {
	return decisionOrder[rng.Intn(len(decisionOrder))]
}
