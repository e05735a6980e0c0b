package engine

import "fmt"

const (
	// Destroyer and cruiser targets take half damage beyond this range.
	longRange = 2.0
	// Battleships ignore hits at or below this value.
	battleshipArmour = 10
)

// MitigationPolicy selects which range feeds the long-range halving rule.
type MitigationPolicy int

const (
	// MitigatePerTarget measures range from the attacker to each target separately.
	MitigatePerTarget MitigationPolicy = iota
	// MitigateLastScanned reuses the range to the last enemy examined during targeting
	// for every target of that attacker, as the first version of the game did.
	MitigateLastScanned
)

func (p MitigationPolicy) String() string {
	switch p {
	case MitigatePerTarget:
		return "per-target"
	case MitigateLastScanned:
		return "last-scanned"
	default:
		return "unknown"
	}
}

// ParseMitigation maps a policy name back to its value.
func ParseMitigation(s string) (MitigationPolicy, error) {
	switch s {
	case "", "per-target":
		return MitigatePerTarget, nil
	case "last-scanned":
		return MitigateLastScanned, nil
	default:
		return 0, fmt.Errorf("unknown mitigation policy %q (want per-target or last-scanned)", s)
	}
}

// Hit is one planned damage application.
type Hit struct {
	AttackerID int
	TargetID   int
	Damage     int
}

// PlanDamage turns engagements into hits without touching any ship.
// Each attacker splits its damage evenly across its targets, remainder discarded.
func PlanDamage(engagements []Engagement, policy MitigationPolicy) []Hit {
	var hits []Hit
	for _, eng := range engagements {
		if len(eng.Targets) == 0 {
			continue
		}
		base := eng.Attacker.Stats().Damage / len(eng.Targets)
		for _, t := range eng.Targets {
			dist := t.Distance
			if policy == MitigateLastScanned {
				dist = eng.LastScanned
			}
			hits = append(hits, Hit{
				AttackerID: eng.Attacker.ID,
				TargetID:   t.Ship.ID,
				Damage:     mitigate(base, t.Ship.Class, dist),
			})
		}
	}
	return hits
}

// mitigate applies the target-class rules to one share of damage.
func mitigate(dmg int, target ShipClass, dist float64) int {
	if (target == Destroyer || target == Cruiser) && dist > longRange {
		dmg /= 2
	}
	if target == Battleship && dmg <= battleshipArmour {
		dmg = 0
	}
	return dmg
}

// applyHits is the mutation phase. Hits against ships already sunk in this batch are
// dropped; health is clamped at zero and sunk ships leave the roster.
func (g *Game) applyHits(hits []Hit) []Effect {
	var effects []Effect
	for _, h := range hits {
		target, ok := g.shipByID(h.TargetID)
		if !ok {
			continue
		}
		applied := h.Damage
		if applied > target.Health {
			applied = target.Health
		}
		target.Health -= applied
		if target.Health <= 0 {
			target.Health = 0
			g.removeShip(target.ID)
			effects = append(effects, destroyedEffect(*target, h.Damage))
			continue
		}
		effects = append(effects, damagedEffect(*target, h.Damage))
	}
	return effects
}
