package engine

// TerrainKind is the obstruction class of an island cell.
type TerrainKind int

const (
	TerrainHigh TerrainKind = iota // cliff: blocks all fire
	TerrainLow                     // low island: blocks destroyer fire only
)

func (k TerrainKind) String() string {
	if k == TerrainHigh {
		return "cliff"
	}
	return "island"
}

// BlocksFireFrom reports whether terrain of this kind stops fire from the given class
// when it lies strictly between attacker and target.
func (k TerrainKind) BlocksFireFrom(c ShipClass) bool {
	if k == TerrainHigh {
		return true
	}
	return c == Destroyer
}

// Island is an impassable terrain cell. Islands never move once placed.
type Island struct {
	Kind TerrainKind
	Pos  Cell
}
