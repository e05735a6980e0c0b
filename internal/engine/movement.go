package engine

// ValidateMove checks whether ship may end its move on to.
// Terrain is reported before range, matching the order players see messages in.
func (g *Game) ValidateMove(ship Ship, to Cell) error {
	if _, ok := g.IslandAt(to); ok {
		return &IllegalMoveError{Reason: ReasonIslandBlocked, Ship: ship.Name, To: to}
	}
	if Distance(ship.Pos, to) > ship.Stats().Speed {
		return &IllegalMoveError{Reason: ReasonTooFar, Ship: ship.Name, To: to}
	}
	if other, ok := g.ShipAt(to); ok && other.ID != ship.ID {
		return &IllegalMoveError{Reason: ReasonOccupied, Ship: ship.Name, To: to}
	}
	return nil
}

// ReachableCells lists every cell the ship could legally move to, row by row.
// The ship's own cell is excluded: clicking it toggles selection instead.
func (g *Game) ReachableCells(shipID int) []Cell {
	s, ok := g.shipByID(shipID)
	if !ok {
		return nil
	}
	var out []Cell
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			c := Cell{x, y}
			if c == s.Pos {
				continue
			}
			if g.ValidateMove(*s, c) == nil {
				out = append(out, c)
			}
		}
	}
	return out
}
