package engine

// Faction distinguishes the two opposing fleets.
type Faction int

const (
	FactionGreen Faction = iota
	FactionRed
)

func (f Faction) String() string {
	switch f {
	case FactionGreen:
		return "green"
	case FactionRed:
		return "red"
	default:
		return "unknown"
	}
}

// Opponent returns the other faction.
func (f Faction) Opponent() Faction {
	if f == FactionGreen {
		return FactionRed
	}
	return FactionGreen
}

// ShipClass selects the weapon and hull profile of a ship.
type ShipClass int

const (
	Destroyer ShipClass = iota
	Cruiser
	Battleship
	shipClassCount // sentinel
)

func (c ShipClass) String() string {
	switch c {
	case Destroyer:
		return "destroyer"
	case Cruiser:
		return "cruiser"
	case Battleship:
		return "battleship"
	default:
		return "unknown"
	}
}

// ClassStats holds the per-class constants.
type ClassStats struct {
	MaxHealth int
	Damage    int
	Speed     float64 // cells per move, straight-line
}

var classStats = [shipClassCount]ClassStats{
	Destroyer:  {MaxHealth: 15, Damage: 30, Speed: 4},
	Cruiser:    {MaxHealth: 30, Damage: 15, Speed: 3},
	Battleship: {MaxHealth: 50, Damage: 20, Speed: 2},
}

// StatsFor returns the constants for a class. Unknown classes fall back to destroyer.
func StatsFor(c ShipClass) ClassStats {
	if c < 0 || c >= shipClassCount {
		return classStats[Destroyer]
	}
	return classStats[c]
}

// Ship is one hull in the roster. The engine owns every Ship; callers receive copies.
type Ship struct {
	ID      int
	Faction Faction
	Class   ShipClass
	Name    string
	Pos     Cell
	Health  int
}

// Stats returns the class constants for this ship.
func (s Ship) Stats() ClassStats {
	return StatsFor(s.Class)
}

// HealthFraction is the health bar proportion in [0,1].
func (s Ship) HealthFraction() float64 {
	return healthFraction(s.Health, s.Class)
}

func healthFraction(health int, c ShipClass) float64 {
	if health < 0 {
		health = 0
	}
	return float64(health) / float64(StatsFor(c).MaxHealth)
}

// ShipSpec describes a ship to spawn.
type ShipSpec struct {
	Faction Faction
	Class   ShipClass
	Name    string
	Pos     Cell
}

// startFleet is the fixed opening layout: destroyer, cruiser, battleship per side.
var startFleet = []ShipSpec{
	{FactionGreen, Destroyer, "Medea", Cell{0, 1}},
	{FactionGreen, Cruiser, "Weymouth", Cell{0, 3}},
	{FactionGreen, Battleship, "Iron Duke", Cell{0, 5}},
	{FactionRed, Destroyer, "G-101", Cell{6, 1}},
	{FactionRed, Cruiser, "Kolberg", Cell{6, 3}},
	{FactionRed, Battleship, "Koening", Cell{6, 5}},
}

// StartFleet returns a copy of the opening layout.
func StartFleet() []ShipSpec {
	out := make([]ShipSpec, len(startFleet))
	copy(out, startFleet)
	return out
}
