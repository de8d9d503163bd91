package chase

// Player is the player-controlled entity. Input direction is latched in
// Pending and applied only at tile centers, giving snappy but wall-safe
// turns.
type Player struct {
	Entity
	Pending Direction
	Score   int
	Lives   int
}

// NewPlayer creates a player at the given spawn tile.
func NewPlayer(start Point, speed float64, lives int) *Player {
	p := &Player{Lives: lives}
	p.SnapTo(start)
	p.Speed = speed
	return p
}

// SetIntent latches the desired direction. The latch survives across
// ticks until a turn becomes possible or new input overwrites it.
func (p *Player) SetIntent(d Direction) {
	p.Pending = d
}

// Advance applies the latched intent when legal, stops dead against
// walls, and integrates the position.
func (p *Player) Advance(m *Maze) {
	if p.Pending != p.Dir && p.Centered() && p.CanMove(m, p.Pending) {
		p.Dir = p.Pending
	}
	// A blocked heading becomes a hard stop at the next center; the
	// entity never slides into the wall.
	if !p.CanMove(m, p.Dir) && p.Centered() {
		p.Dir = DirNone
	}
	p.Entity.Advance(m)
}

// CollectPellets removes any pellet or power pellet on the player's
// current tile and returns how many of each were eaten (0 or 1 each,
// since a tile holds at most one of each kind). Scoring is applied by
// the round controller.
func (p *Player) CollectPellets(m *Maze) (pellets, power int) {
	t := p.Tile()
	if m.Pellets[t] {
		delete(m.Pellets, t)
		pellets++
	}
	if m.PowerPellets[t] {
		delete(m.PowerPellets, t)
		power++
	}
	return pellets, power
}

// ResetTo moves the player back to a spawn tile and clears its motion,
// used after a life is lost. Score and lives are untouched.
func (p *Player) ResetTo(start Point) {
	p.SnapTo(start)
	p.Dir = DirNone
	p.Pending = DirNone
}
