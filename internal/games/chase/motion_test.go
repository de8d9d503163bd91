package chase

import (
	"testing"
)

func corridorMaze(t *testing.T) *Maze {
	t.Helper()
	m, err := NewMaze([]string{
		"######",
		"#P...#",
		"######",
	})
	if err != nil {
		t.Fatalf("NewMaze failed: %v", err)
	}
	return m
}

func TestTileRounding(t *testing.T) {
	e := Entity{X: 1.4, Y: 2.6}
	if got := e.Tile(); got != (Point{X: 1, Y: 3}) {
		t.Errorf("Tile() = %v, expected (1,3)", got)
	}
}

func TestCentered(t *testing.T) {
	e := Entity{X: 1.05, Y: 2.0}
	if !e.Centered() {
		t.Error("Entity within epsilon of center should be centered")
	}

	e.X = 1.2
	if e.Centered() {
		t.Error("Entity 0.2 off center should not be centered")
	}
}

func TestCanMove(t *testing.T) {
	m := corridorMaze(t)
	e := Entity{X: 1, Y: 1}

	if !e.CanMove(m, DirRight) {
		t.Error("Right along the corridor should be legal")
	}
	if e.CanMove(m, DirUp) {
		t.Error("Up into the wall should be illegal")
	}
	if e.CanMove(m, DirLeft) {
		t.Error("Left into the wall should be illegal")
	}
	if !e.CanMove(m, DirNone) {
		t.Error("Standing still on a floor tile should be legal")
	}
}

func TestAdvanceCrossesCenters(t *testing.T) {
	m := corridorMaze(t)
	e := Entity{X: 1, Y: 1, Dir: DirRight, Speed: 0.25}

	// Four quarter-tile steps land exactly on the next center.
	for i := 0; i < 4; i++ {
		e.Advance(m)
	}
	if !e.Centered() {
		t.Errorf("Entity should be centered after 4 steps of 0.25, at x=%v", e.X)
	}
	if e.Tile() != (Point{X: 2, Y: 1}) {
		t.Errorf("Entity should be on tile (2,1), got %v", e.Tile())
	}
}

func TestAdvanceSnapsOffWallCenter(t *testing.T) {
	m := corridorMaze(t)

	// Heading right just short of the wall at x=5: the next step lands
	// within epsilon of the wall's center and must snap exactly onto it.
	e := Entity{X: 4.95, Y: 1, Dir: DirRight, Speed: 0.1}
	e.Advance(m)

	if e.X != 5.0 {
		t.Errorf("Entity should snap to wall center x=5.0, got %v", e.X)
	}
}

func TestSnapTo(t *testing.T) {
	e := Entity{X: 3.7, Y: 1.2}
	e.SnapTo(Point{X: 2, Y: 4})
	if e.X != 2.0 || e.Y != 4.0 {
		t.Errorf("SnapTo should place entity exactly, got (%v,%v)", e.X, e.Y)
	}
}

func TestManhattan(t *testing.T) {
	cases := []struct {
		a, b Point
		want int
	}{
		{Point{0, 0}, Point{0, 0}, 0},
		{Point{1, 2}, Point{4, 6}, 7},
		{Point{4, 6}, Point{1, 2}, 7},
		{Point{-1, 0}, Point{1, 0}, 2},
	}
	for _, c := range cases {
		if got := manhattan(c.a, c.b); got != c.want {
			t.Errorf("manhattan(%v, %v) = %d, expected %d", c.a, c.b, got, c.want)
		}
	}
}

func TestDirectionReverse(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
		DirNone:  DirNone,
	}
	for d, want := range pairs {
		if got := d.Reverse(); got != want {
			t.Errorf("%v.Reverse() = %v, expected %v", d, got, want)
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	dx, dy := DirUp.Delta()
	if dx != 0 || dy != -1 {
		t.Errorf("DirUp delta = (%d,%d), expected (0,-1)", dx, dy)
	}
	dx, dy = DirNone.Delta()
	if dx != 0 || dy != 0 {
		t.Errorf("DirNone delta = (%d,%d), expected (0,0)", dx, dy)
	}
}
