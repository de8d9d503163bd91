package chase

import "math"

// centerEpsilon is the absolute distance from a tile center below which an
// entity counts as centered. Tile size is fixed, so an absolute tolerance
// is sufficient; turns and ghost decisions are quantized to this test.
const centerEpsilon = 0.1

// Entity is a continuously positioned body moving over the discrete grid.
// Position is in grid space: integer values are tile centers, fractional
// values lie between them. Position changes only by Dir times Speed per
// tick, so an entity travelling at less than one tile per tick always
// passes within epsilon of each center it crosses.
type Entity struct {
	X, Y  float64
	Dir   Direction
	Speed float64 // tiles per tick
}

// Tile returns the entity's nearest grid coordinate.
func (e *Entity) Tile() Point {
	return Point{
		X: int(math.Round(e.X)),
		Y: int(math.Round(e.Y)),
	}
}

// Centered reports whether the entity is on a tile center in both axes.
func (e *Entity) Centered() bool {
	return math.Abs(e.X-math.Round(e.X)) < centerEpsilon &&
		math.Abs(e.Y-math.Round(e.Y)) < centerEpsilon
}

// CanMove reports whether stepping one tile from the entity's current
// tile in the given direction lands on a passable cell. DirNone is
// always legal on a passable cell.
func (e *Entity) CanMove(m *Maze, d Direction) bool {
	t := e.Tile()
	dx, dy := d.Delta()
	return m.Passable(Point{X: t.X + dx, Y: t.Y + dy})
}

// Advance integrates the position by one tick of movement. A position
// that lands centered on a wall tile snaps exactly onto the center so
// floating-point drift cannot carry an entity into a wall.
func (e *Entity) Advance(m *Maze) {
	dx, dy := e.Dir.Delta()
	e.X += float64(dx) * e.Speed
	e.Y += float64(dy) * e.Speed

	if !e.Centered() {
		return
	}
	t := e.Tile()
	if m.IsWall(t) {
		e.X = float64(t.X)
		e.Y = float64(t.Y)
	}
}

// SnapTo places the entity exactly on the given tile center.
func (e *Entity) SnapTo(p Point) {
	e.X = float64(p.X)
	e.Y = float64(p.Y)
}

// manhattan returns the Manhattan distance between two grid points.
func manhattan(a, b Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
