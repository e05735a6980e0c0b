package engine

// Target is an eligible defender together with its range from the attacker.
type Target struct {
	Ship     Ship
	Distance float64
}

// Engagement is one attacker's target set for the current attack phase.
type Engagement struct {
	Attacker Ship
	Targets  []Target
	// LastScanned is the range to the last enemy examined, eligible or not.
	LastScanned float64
}

// ResolveTargets computes, for every ship of the attacking faction, the enemies it can
// hit. It only reads its arguments; callers pass a snapshot of the roster.
func ResolveTargets(ships []Ship, islands []Island, attacking Faction) []Engagement {
	var out []Engagement
	for _, attacker := range ships {
		if attacker.Faction != attacking {
			continue
		}
		eng := Engagement{Attacker: attacker}
		for _, defender := range ships {
			if defender.Faction == attacking {
				continue
			}
			dist := Distance(attacker.Pos, defender.Pos)
			eng.LastScanned = dist
			if canFire(attacker, defender, dist, islands) {
				eng.Targets = append(eng.Targets, Target{Ship: defender, Distance: dist})
			}
		}
		out = append(out, eng)
	}
	return out
}

func canFire(attacker, defender Ship, dist float64, islands []Island) bool {
	switch attacker.Class {
	case Destroyer:
		if dist > 1 {
			return false
		}
	case Cruiser, Battleship:
		if !SameLine(attacker.Pos, defender.Pos) {
			return false
		}
	default:
		return false
	}
	return lineClear(attacker.Pos, defender.Pos, attacker.Class, islands)
}

// lineClear reports whether no terrain that blocks this class lies strictly between a and b.
func lineClear(a, b Cell, class ShipClass, islands []Island) bool {
	for _, is := range islands {
		if !is.Kind.BlocksFireFrom(class) {
			continue
		}
		if StrictlyBetween(a, b, is.Pos) {
			return false
		}
	}
	return true
}
