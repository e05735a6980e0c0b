package engine

import "fmt"

// EffectKind tags an observable outcome of an engine call.
type EffectKind int

const (
	EffectGameStarted EffectKind = iota
	EffectShipSpawned
	EffectIslandPlaced
	EffectSelected
	EffectDeselected
	EffectMoved
	EffectRejected
	EffectDamaged
	EffectDestroyed
	EffectTurnChanged
	EffectGameOver
)

func (k EffectKind) String() string {
	switch k {
	case EffectGameStarted:
		return "game_started"
	case EffectShipSpawned:
		return "ship_spawned"
	case EffectIslandPlaced:
		return "island_placed"
	case EffectSelected:
		return "selected"
	case EffectDeselected:
		return "deselected"
	case EffectMoved:
		return "moved"
	case EffectRejected:
		return "rejected"
	case EffectDamaged:
		return "damaged"
	case EffectDestroyed:
		return "destroyed"
	case EffectTurnChanged:
		return "turn_changed"
	case EffectGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Effect is one entry of the ordered list the adapter renders.
// Fields that do not apply to a kind are left at their zero value.
type Effect struct {
	Kind           EffectKind
	Faction        Faction
	ShipID         int
	ShipName       string
	Class          ShipClass
	Terrain        TerrainKind // island_placed only
	From           Cell
	To             Cell
	Damage         int
	Health         int
	HealthFraction float64
	Reason         MoveReason // rejected only
	Message        string     // log line; empty for silent effects
}

func shipEffect(kind EffectKind, s Ship) Effect {
	return Effect{
		Kind:           kind,
		Faction:        s.Faction,
		ShipID:         s.ID,
		ShipName:       s.Name,
		Class:          s.Class,
		From:           s.Pos,
		To:             s.Pos,
		Health:         s.Health,
		HealthFraction: s.HealthFraction(),
	}
}

func spawnedEffect(s Ship) Effect {
	return shipEffect(EffectShipSpawned, s)
}

func islandEffect(is Island) Effect {
	return Effect{Kind: EffectIslandPlaced, Terrain: is.Kind, From: is.Pos, To: is.Pos}
}

func selectedEffect(s Ship) Effect {
	e := shipEffect(EffectSelected, s)
	e.Message = fmt.Sprintf("Selected ship %s of team %s at %s.", s.Name, s.Faction, s.Pos)
	return e
}

func deselectedEffect(s Ship, announce bool) Effect {
	e := shipEffect(EffectDeselected, s)
	if announce {
		e.Message = "Selection cleared."
	}
	return e
}

func movedEffect(s Ship, from Cell) Effect {
	e := shipEffect(EffectMoved, s)
	e.From = from
	e.Message = fmt.Sprintf("Ship %s moved to %s.", s.Name, s.Pos)
	return e
}

func rejectedEffect(s Ship, err *IllegalMoveError) Effect {
	e := shipEffect(EffectRejected, s)
	e.To = err.To
	e.Reason = err.Reason
	e.Message = err.Reason.Message()
	return e
}

func damagedEffect(s Ship, dmg int) Effect {
	e := shipEffect(EffectDamaged, s)
	e.Damage = dmg
	e.Message = fmt.Sprintf("Ship %s (%s) of team %s took %d damage.", s.Name, s.Class, s.Faction, dmg)
	return e
}

func destroyedEffect(s Ship, dmg int) Effect {
	e := shipEffect(EffectDestroyed, s)
	e.Damage = dmg
	e.Message = fmt.Sprintf("Ship %s (%s) of team %s destroyed.", s.Name, s.Class, s.Faction)
	return e
}

func turnEffect(f Faction) Effect {
	return Effect{Kind: EffectTurnChanged, Faction: f, Message: fmt.Sprintf("Team %s's turn.", f)}
}

func gameOverEffect(winner Faction) Effect {
	return Effect{
		Kind:    EffectGameOver,
		Faction: winner,
		Message: fmt.Sprintf("Team %s wins: the %s fleet is destroyed.", winner, winner.Opponent()),
	}
}
