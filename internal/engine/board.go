package engine

import (
	"fmt"
	"math"
)

// GridSize is the side length of the square board.
const GridSize = 7

// Cell is an integer board coordinate.
type Cell struct {
	X int
	Y int
}

// InBounds reports whether c lies on the board.
func (c Cell) InBounds() bool {
	return c.X >= 0 && c.X < GridSize && c.Y >= 0 && c.Y < GridSize
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Distance returns the straight-line length between two cells.
// Movement and fire ranges both use it; paths around obstacles are never measured.
func Distance(a, b Cell) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// StrictlyBetween reports whether p lies on the open segment from start to end.
// Only vertical and horizontal lines count; diagonal alignment is never between.
func StrictlyBetween(start, end, p Cell) bool {
	if start.X == end.X && end.X == p.X {
		lo, hi := minMax(start.Y, end.Y)
		return lo < p.Y && p.Y < hi
	}
	if start.Y == end.Y && end.Y == p.Y {
		lo, hi := minMax(start.X, end.X)
		return lo < p.X && p.X < hi
	}
	return false
}

// SameLine reports whether a and b share a row or a column.
func SameLine(a, b Cell) bool {
	return a.X == b.X || a.Y == b.Y
}

func minMax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}

// ShipAt returns the ship occupying c, if any.
func (g *Game) ShipAt(c Cell) (*Ship, bool) {
	for _, s := range g.ships {
		if s.Pos == c {
			return s, true
		}
	}
	return nil, false
}

// IslandAt returns the terrain occupying c, if any.
func (g *Game) IslandAt(c Cell) (Island, bool) {
	for _, is := range g.islands {
		if is.Pos == c {
			return is, true
		}
	}
	return Island{}, false
}

// Occupied reports whether any ship or terrain sits on c.
func (g *Game) Occupied(c Cell) bool {
	if _, ok := g.ShipAt(c); ok {
		return true
	}
	_, ok := g.IslandAt(c)
	return ok
}
