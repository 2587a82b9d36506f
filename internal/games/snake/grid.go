package snake

import "github.com/vovakirdan/batsnake/internal/core"

// Point represents a grid cell.
type Point struct {
	X, Y int
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit vector for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
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
		return "unknown"
	}
}

// directionFor maps a steering action to a direction.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return DirRight, false
	}
}

// Grid is the playfield. It wraps at every edge, so there are no walls.
type Grid struct {
	Cols, Rows int
}

// Wrap maps any point onto the grid.
func (g Grid) Wrap(p Point) Point {
	return Point{X: core.Mod(p.X, g.Cols), Y: core.Mod(p.Y, g.Rows)}
}

// Step returns the cell one move from p in direction d.
func (g Grid) Step(p Point, d Direction) Point {
	dx, dy := d.Delta()
	return g.Wrap(Point{X: p.X + dx, Y: p.Y + dy})
}

// Contains reports whether p lies on the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Cols && p.Y >= 0 && p.Y < g.Rows
}

// Center returns the middle cell.
func (g Grid) Center() Point {
	return Point{X: g.Cols / 2, Y: g.Rows / 2}
}

// Size returns the number of cells.
func (g Grid) Size() int {
	return g.Cols * g.Rows
}
