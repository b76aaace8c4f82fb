package types

import (
	"fmt"
	"strings"
)

// Point is a grid cell.
type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Grid represents the game grid dimensions. The outer ring of cells is wall.
type Grid struct {
	Width  int
	Height int
}

// IsWall reports whether p lies on the wall ring or outside the grid.
func (g Grid) IsWall(p Point) bool {
	return p.X <= 0 || p.X >= g.Width-1 || p.Y <= 0 || p.Y >= g.Height-1
}

// IsInterior reports whether p is a playable cell.
func (g Grid) IsInterior(p Point) bool {
	return !g.IsWall(p)
}

// InteriorCells returns the number of playable cells.
func (g Grid) InteriorCells() int {
	if g.Width < 3 || g.Height < 3 {
		return 0
	}
	return (g.Width - 2) * (g.Height - 2)
}

// Walls lists every cell of the wall ring.
func (g Grid) Walls() []Point {
	walls := make([]Point, 0, 2*g.Width+2*g.Height)
	for x := 0; x < g.Width; x++ {
		walls = append(walls, Point{X: x, Y: 0}, Point{X: x, Y: g.Height - 1})
	}
	for y := 1; y < g.Height-1; y++ {
		walls = append(walls, Point{X: 0, Y: y}, Point{X: g.Width - 1, Y: y})
	}
	return walls
}

// Direction is a cardinal direction.
type Direction int

const (
	NONE Direction = iota
	UP
	RIGHT
	DOWN
	LEFT
)

// ToPoint converts a Direction into a one-cell offset.
func (d Direction) ToPoint() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -1}
	case RIGHT:
		return Point{X: 1, Y: 0}
	case DOWN:
		return Point{X: 0, Y: 1}
	case LEFT:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the 180-degree reversal of d.
func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case RIGHT:
		return LEFT
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	default:
		return NONE
	}
}

func (d Direction) IsOpposite(o Direction) bool {
	return d != NONE && d.Opposite() == o
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case RIGHT:
		return "right"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	default:
		return "none"
	}
}

// ParseDirection accepts the names produced by String, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return UP, nil
	case "right":
		return RIGHT, nil
	case "down":
		return DOWN, nil
	case "left":
		return LEFT, nil
	}
	return NONE, fmt.Errorf("unknown direction %q", s)
}

// DirectionBetween returns the direction that leads from a to an adjacent b.
func DirectionBetween(a, b Point) Direction {
	switch {
	case b.X == a.X+1 && b.Y == a.Y:
		return RIGHT
	case b.X == a.X-1 && b.Y == a.Y:
		return LEFT
	case b.Y == a.Y+1 && b.X == a.X:
		return DOWN
	case b.Y == a.Y-1 && b.X == a.X:
		return UP
	}
	return NONE
}
