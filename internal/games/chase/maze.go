// Package chase implements the maze-chase game: a player roams a tile
// maze eating pellets while ghosts alternate between hunting and fleeing.
// The package is pure simulation logic; rendering and input mapping live
// in the platform layer.
package chase

import (
	"fmt"
)

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Direction is a unit step on the grid, or DirNone for standing still.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// decisionOrder is the fixed enumeration used wherever candidate
// directions are collected. Ties in greedy targeting resolve to the
// first candidate in this order.
var decisionOrder = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the grid step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Reverse returns the opposite direction. DirNone reverses to itself.
func (d Direction) Reverse() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Map legend characters.
const (
	tileWall        = '#'
	tilePellet      = '.'
	tilePowerPellet = 'o'
	tilePlayerSpawn = 'P'
	tileChaserSpawn = 'C'
	tileRandomSpawn = 'R'
	tileHouse       = 'H'
)

// GhostSpawn is a ghost start position with its behavior variant,
// in layout scan order.
type GhostSpawn struct {
	Pos     Point
	Variant Variant
}

// Maze holds the static geometry of a map plus the mutable pellet sets.
// Walls are fixed after parsing; pellet sets only shrink during a round.
type Maze struct {
	Width  int
	Height int

	walls        map[Point]bool
	Pellets      map[Point]bool
	PowerPellets map[Point]bool

	PlayerStart Point
	GhostSpawns []GhostSpawn
	House       Point
}

// NewMaze parses a textual layout. Legend: '#' wall, '.' pellet,
// 'o' power pellet, 'P' player spawn, 'C' chaser ghost, 'R' random ghost,
// 'H' ghost house; anything else is open floor.
// Fails on an empty layout, ragged row widths, or a missing player spawn.
func NewMaze(layout []string) (*Maze, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, fmt.Errorf("chase: empty maze layout")
	}

	width := len(layout[0])
	for y, row := range layout {
		if len(row) != width {
			return nil, fmt.Errorf("chase: ragged maze layout: row %d is %d wide, expected %d", y, len(row), width)
		}
	}

	m := &Maze{
		Width:        width,
		Height:       len(layout),
		walls:        make(map[Point]bool),
		Pellets:      make(map[Point]bool),
		PowerPellets: make(map[Point]bool),
		// Rally point for eaten ghosts defaults to the maze center.
		House: Point{X: width / 2, Y: len(layout) / 2},
	}

	playerFound := false
	for y, row := range layout {
		for x, ch := range row {
			p := Point{X: x, Y: y}
			switch ch {
			case tileWall:
				m.walls[p] = true
			case tilePellet:
				m.Pellets[p] = true
			case tilePowerPellet:
				m.PowerPellets[p] = true
			case tilePlayerSpawn:
				m.PlayerStart = p
				playerFound = true
			case tileChaserSpawn:
				m.GhostSpawns = append(m.GhostSpawns, GhostSpawn{Pos: p, Variant: VariantChaser})
			case tileRandomSpawn:
				m.GhostSpawns = append(m.GhostSpawns, GhostSpawn{Pos: p, Variant: VariantRandom})
			case tileHouse:
				m.House = p
			}
		}
	}

	if !playerFound {
		return nil, fmt.Errorf("chase: maze layout has no player spawn ('P')")
	}

	return m, nil
}

// InBounds reports whether the point lies inside the maze rectangle.
func (m *Maze) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// IsWall reports whether the point is a wall cell.
func (m *Maze) IsWall(p Point) bool {
	return m.walls[p]
}

// Passable reports whether an entity may occupy the point.
func (m *Maze) Passable(p Point) bool {
	return m.InBounds(p) && !m.walls[p]
}

// PelletCount returns the number of remaining pellets of both kinds.
func (m *Maze) PelletCount() int {
	return len(m.Pellets) + len(m.PowerPellets)
}

// Cleared reports whether every pellet and power pellet has been eaten.
func (m *Maze) Cleared() bool {
	return len(m.Pellets) == 0 && len(m.PowerPellets) == 0
}
