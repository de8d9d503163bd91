package chase

import (
	"testing"
)

func TestPlayerTurnsOnlyAtCenters(t *testing.T) {
	m, err := NewMaze([]string{
		"#####",
		"#.#.#",
		"#P..#",
		"#####",
	})
	if err != nil {
		t.Fatalf("NewMaze failed: %v", err)
	}

	p := NewPlayer(m.PlayerStart, 0.25, 3)
	p.SetIntent(DirRight)
	p.Advance(m)
	p.Advance(m) // x = 1.5, between centers

	p.SetIntent(DirUp)
	p.Advance(m)
	if p.Dir == DirUp {
		t.Error("Turn must not apply between tile centers")
	}

	// Keep stepping: the turn applies at the first center where up is
	// open, which is (3,2). Up at (2,2) is walled off.
	for i := 0; i < 40 && p.Dir != DirUp; i++ {
		p.Advance(m)
		if p.Dir == DirUp && !m.Passable(Point{X: p.Tile().X, Y: p.Tile().Y - 1}) {
			t.Fatalf("Turned up at %v where up is blocked", p.Tile())
		}
	}
	if p.Dir != DirUp {
		t.Error("Latched turn should eventually apply at an open center")
	}
	if p.Tile().X != 3 {
		t.Errorf("Turn should have applied at x=3, got tile %v", p.Tile())
	}
}

func TestPlayerStopsAtWall(t *testing.T) {
	m := corridorMaze(t)

	p := NewPlayer(m.PlayerStart, 0.25, 3)
	p.SetIntent(DirRight)

	// The corridor runs from x=1 to x=4; the player must stop centered
	// on the last floor tile.
	for i := 0; i < 100; i++ {
		p.Advance(m)
	}
	if p.Dir != DirNone {
		t.Errorf("Player should have stopped, dir = %v", p.Dir)
	}
	if p.Tile() != (Point{X: 4, Y: 1}) {
		t.Errorf("Player should rest on (4,1), got %v", p.Tile())
	}
	if !p.Centered() {
		t.Error("Stopped player should sit on a tile center")
	}
}

func TestCollectPellets(t *testing.T) {
	m, err := NewMaze([]string{
		"#####",
		"#P.o#",
		"#####",
	})
	if err != nil {
		t.Fatalf("NewMaze failed: %v", err)
	}

	p := NewPlayer(m.PlayerStart, 0.25, 3)

	// Nothing on the spawn tile.
	pellets, power := p.CollectPellets(m)
	if pellets != 0 || power != 0 {
		t.Errorf("Spawn tile should be empty, got %d/%d", pellets, power)
	}

	p.SnapTo(Point{X: 2, Y: 1})
	pellets, power = p.CollectPellets(m)
	if pellets != 1 || power != 0 {
		t.Errorf("Expected 1 pellet, got %d/%d", pellets, power)
	}

	// Eating is permanent.
	pellets, _ = p.CollectPellets(m)
	if pellets != 0 {
		t.Error("Pellet should not be collectable twice")
	}

	p.SnapTo(Point{X: 3, Y: 1})
	pellets, power = p.CollectPellets(m)
	if pellets != 0 || power != 1 {
		t.Errorf("Expected 1 power pellet, got %d/%d", pellets, power)
	}

	if !m.Cleared() {
		t.Error("Maze should be cleared after collecting everything")
	}
}

func TestPlayerResetTo(t *testing.T) {
	m := corridorMaze(t)

	p := NewPlayer(m.PlayerStart, 0.25, 3)
	p.SetIntent(DirRight)
	p.Advance(m)
	p.Score = 120

	p.ResetTo(m.PlayerStart)
	if p.Tile() != m.PlayerStart || !p.Centered() {
		t.Errorf("Reset should place player on spawn center, got (%v,%v)", p.X, p.Y)
	}
	if p.Dir != DirNone || p.Pending != DirNone {
		t.Error("Reset should clear direction and pending intent")
	}
	if p.Score != 120 {
		t.Error("Reset must not touch the score")
	}
}
