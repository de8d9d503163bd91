package chase

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-chomp/internal/core"
)

var testSpeeds = ghostSpeeds{normal: 0.25, vulnerable: 0.125, eaten: 0.25}

func roomMaze(t *testing.T) *Maze {
	t.Helper()
	m, err := NewMaze([]string{
		"#####",
		"#P..#",
		"#.H.#",
		"#...#",
		"#####",
	})
	if err != nil {
		t.Fatalf("NewMaze failed: %v", err)
	}
	return m
}

func newTestGhost(pos Point, v Variant, seed int64) (*Ghost, *rand.Rand) {
	rng := rand.New(rand.NewSource(seed))
	g := NewGhost(GhostSpawn{Pos: pos, Variant: v}, core.ColorRed, testSpeeds, rng)
	return g, rng
}

func TestCandidatesExcludeReverse(t *testing.T) {
	m := roomMaze(t)
	g, _ := newTestGhost(Point{X: 2, Y: 2}, VariantChaser, 1)
	g.Dir = DirRight

	choices := g.candidates(m, true)
	for _, d := range choices {
		if d == DirLeft {
			t.Error("Reverse direction should be excluded")
		}
	}
	if len(choices) != 3 {
		t.Errorf("Open room should offer 3 non-reverse choices, got %d", len(choices))
	}
}

func TestDeadEndAllowsReverse(t *testing.T) {
	m, err := NewMaze([]string{
		"#####",
		"#P..#",
		"#####",
	})
	if err != nil {
		t.Fatalf("NewMaze failed: %v", err)
	}

	g, _ := newTestGhost(Point{X: 1, Y: 1}, VariantChaser, 1)
	g.Dir = DirLeft // facing the wall, only exit is the reverse

	if choices := g.candidates(m, true); len(choices) != 0 {
		t.Fatalf("Non-reverse choices should be empty in a dead end, got %v", choices)
	}
	choices := g.candidates(m, false)
	if len(choices) != 1 || choices[0] != DirRight {
		t.Errorf("Dead end fallback should offer only the U-turn, got %v", choices)
	}
}

func TestChaserGreedyChoice(t *testing.T) {
	g, rng := newTestGhost(Point{X: 2, Y: 2}, VariantChaser, 1)

	all := []Direction{DirUp, DirDown, DirLeft, DirRight}

	// Target straight above: up is strictly closest.
	if got := g.chooseDirection(all, Point{X: 2, Y: 0}, rng); got != DirUp {
		t.Errorf("Expected up toward (2,0), got %v", got)
	}

	// Target up-left: up and left tie at distance 3; the first in
	// decision order wins.
	if got := g.chooseDirection(all, Point{X: 0, Y: 0}, rng); got != DirUp {
		t.Errorf("Tie should resolve to up, got %v", got)
	}

	// Empty candidate set holds the current heading.
	g.Dir = DirDown
	if got := g.chooseDirection(nil, Point{X: 0, Y: 0}, rng); got != DirDown {
		t.Errorf("Empty choices should hold current dir, got %v", got)
	}
}

func TestRandomVariantStaysInChoices(t *testing.T) {
	g, rng := newTestGhost(Point{X: 2, Y: 2}, VariantRandom, 7)

	choices := []Direction{DirUp, DirLeft}
	seen := make(map[Direction]bool)
	for i := 0; i < 50; i++ {
		d := g.chooseDirection(choices, Point{}, rng)
		if d != DirUp && d != DirLeft {
			t.Fatalf("Choice %v outside candidate set", d)
		}
		seen[d] = true
	}
	if len(seen) < 2 {
		t.Error("Random variant should use more than one candidate over 50 draws")
	}
}

func TestTargetByState(t *testing.T) {
	m := roomMaze(t)
	g, _ := newTestGhost(Point{X: 2, Y: 2}, VariantChaser, 1)
	player := Point{X: 1, Y: 1}

	g.State = GhostNormal
	if got := g.target(m, player); got != player {
		t.Errorf("Normal ghost should target the player, got %v", got)
	}

	g.State = GhostEaten
	if got := g.target(m, player); got != m.House {
		t.Errorf("Eaten ghost should target the house, got %v", got)
	}

	g.State = GhostVulnerable
	// Player in the top-left half-planes flees to the bottom-right corner.
	if got := g.target(m, player); got != (Point{X: m.Width - 1, Y: m.Height - 1}) {
		t.Errorf("Flee target should be far corner, got %v", got)
	}
	// Player in the bottom-right flees to the top-left.
	if got := g.target(m, Point{X: 3, Y: 3}); got != (Point{X: 0, Y: 0}) {
		t.Errorf("Flee target should be (0,0), got %v", got)
	}
}

func TestSetVulnerableSkipsEaten(t *testing.T) {
	g, _ := newTestGhost(Point{X: 2, Y: 2}, VariantChaser, 1)

	g.SetVulnerable()
	if g.State != GhostVulnerable {
		t.Errorf("Expected vulnerable, got %v", g.State)
	}

	g.SetEaten()
	g.SetVulnerable()
	if g.State != GhostEaten {
		t.Error("SetVulnerable must not affect an eaten ghost")
	}
}

func TestEatenReturnsHomeAndExits(t *testing.T) {
	m := roomMaze(t)
	g, rng := newTestGhost(Point{X: 1, Y: 2}, VariantChaser, 42)
	g.SetEaten()
	g.Dir = DirRight

	player := Point{X: 1, Y: 1}
	for i := 0; i < 200 && g.State == GhostEaten; i++ {
		prev := g.Dir
		g.Update(m, player, rng)
		if g.State == GhostNormal {
			if g.Tile() != m.House {
				t.Errorf("Revert should happen on the house tile, got %v", g.Tile())
			}
			if g.Dir == prev.Reverse() {
				t.Errorf("Exit direction %v reverses arrival direction %v", g.Dir, prev)
			}
			return
		}
	}
	t.Error("Eaten ghost never reached the house")
}

func TestResetHome(t *testing.T) {
	g, rng := newTestGhost(Point{X: 2, Y: 2}, VariantChaser, 3)
	g.SetEaten()
	g.X, g.Y = 1.5, 3.0

	g.ResetHome(rng)
	if g.Tile() != g.Home || !g.Centered() {
		t.Errorf("ResetHome should snap to spawn, got (%v,%v)", g.X, g.Y)
	}
	if g.State != GhostNormal {
		t.Errorf("ResetHome should restore normal state, got %v", g.State)
	}
	if g.Dir == DirNone {
		t.Error("ResetHome should pick a moving direction")
	}
}

func TestGhostSpeedByState(t *testing.T) {
	g, _ := newTestGhost(Point{X: 2, Y: 2}, VariantChaser, 1)

	if g.currentSpeed() != testSpeeds.normal {
		t.Error("Normal ghost should move at normal speed")
	}
	g.State = GhostVulnerable
	if g.currentSpeed() != testSpeeds.vulnerable {
		t.Error("Vulnerable ghost should move at vulnerable speed")
	}
	g.State = GhostEaten
	if g.currentSpeed() != testSpeeds.eaten {
		t.Error("Eaten ghost should move at eaten speed")
	}
}
