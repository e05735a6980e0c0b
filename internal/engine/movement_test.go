package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func reason(t *testing.T, err error) MoveReason {
	t.Helper()
	var illegal *IllegalMoveError
	if !errors.As(err, &illegal) {
		t.Fatalf("expected *IllegalMoveError, got %v", err)
	}
	return illegal.Reason
}

func TestValidateMove_WithinSpeed(t *testing.T) {
	g := startGame(t)
	medea := shipNamed(t, g, "Medea") // destroyer, speed 4

	if err := g.ValidateMove(medea, Cell{4, 1}); err != nil {
		t.Fatalf("4 cells straight should be legal, got %v", err)
	}
	if err := g.ValidateMove(medea, Cell{2, 4}); err != nil {
		t.Fatalf("distance sqrt(13) < 4 should be legal, got %v", err)
	}
}

func TestValidateMove_TooFar(t *testing.T) {
	g := startGame(t)
	duke := shipNamed(t, g, "Iron Duke") // battleship at (0,5), speed 2

	err := g.ValidateMove(duke, Cell{2, 4}) // sqrt(5) > 2
	if err == nil {
		t.Fatal("expected rejection")
	}
	if r := reason(t, err); r != ReasonTooFar {
		t.Fatalf("expected too_far, got %s", r)
	}
}

func TestValidateMove_IslandBlocked(t *testing.T) {
	for _, kind := range []TerrainKind{TerrainHigh, TerrainLow} {
		g := startGame(t, WithIslands(Island{Kind: kind, Pos: Cell{1, 1}}))
		medea := shipNamed(t, g, "Medea")
		err := g.ValidateMove(medea, Cell{1, 1})
		if err == nil {
			t.Fatalf("%s: expected rejection", kind)
		}
		if r := reason(t, err); r != ReasonIslandBlocked {
			t.Fatalf("%s: expected island_blocked, got %s", kind, r)
		}
	}
}

func TestValidateMove_IslandReportedBeforeRange(t *testing.T) {
	g := startGame(t, WithIslands(Island{Kind: TerrainLow, Pos: Cell{6, 6}}))
	medea := shipNamed(t, g, "Medea")
	if r := reason(t, g.ValidateMove(medea, Cell{6, 6})); r != ReasonIslandBlocked {
		t.Fatalf("expected island_blocked for distant island, got %s", r)
	}
}

func TestValidateMove_ObstaclesDoNotBlockPath(t *testing.T) {
	g := startGame(t, WithIslands(
		Island{Kind: TerrainHigh, Pos: Cell{1, 1}},
		Island{Kind: TerrainHigh, Pos: Cell{2, 1}},
	))
	medea := shipNamed(t, g, "Medea")
	if err := g.ValidateMove(medea, Cell{3, 1}); err != nil {
		t.Fatalf("terrain on the way should not block the destination, got %v", err)
	}
}

func TestValidateMove_OccupiedByShip(t *testing.T) {
	g := startGame(t)
	weymouth := shipNamed(t, g, "Weymouth") // (0,3), speed 3
	if r := reason(t, g.ValidateMove(weymouth, Cell{0, 1})); r != ReasonOccupied {
		t.Fatalf("expected occupied, got %s", r)
	}
}

// Property: a destination farther than speed is never legal.
func TestValidateMove_RangeProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7)) // #nosec G404 -- test
	for i := 0; i < 2000; i++ {
		class := ShipClass(rng.Intn(int(shipClassCount)))
		start := Cell{rng.Intn(GridSize), rng.Intn(GridSize)}
		to := Cell{rng.Intn(GridSize), rng.Intn(GridSize)}
		g := startGame(t, WithFleet(ShipSpec{FactionGreen, class, "probe", start}))
		probe := g.Ships()[0]
		err := g.ValidateMove(probe, to)
		if Distance(start, to) > StatsFor(class).Speed {
			if err == nil {
				t.Fatalf("%s from %v to %v (%.2f > %.0f) was accepted", class, start, to, Distance(start, to), StatsFor(class).Speed)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s from %v to %v in range was rejected: %v", class, start, to, err)
		}
	}
}

func TestReachableCells_BattleshipOpenWater(t *testing.T) {
	g := startGame(t, WithFleet(ShipSpec{FactionGreen, Battleship, "probe", Cell{3, 3}}))
	cells := g.ReachableCells(g.Ships()[0].ID)
	// Every offset with dx²+dy² <= 4 except the centre.
	if len(cells) != 12 {
		t.Fatalf("expected 12 reachable cells, got %d: %v", len(cells), cells)
	}
	for _, c := range cells {
		if c == (Cell{3, 3}) {
			t.Fatal("own cell must not be listed")
		}
	}
}

func TestReachableCells_UnknownShip(t *testing.T) {
	g := startGame(t)
	if cells := g.ReachableCells(999); cells != nil {
		t.Fatalf("expected nil for unknown ship, got %v", cells)
	}
}
