package game

import "github.com/Garsondee/Fleet-Skirmish/internal/engine"

// scene is everything the adapter draws, rebuilt only from engine effects.
type scene struct {
	markers    map[int]*marker
	order      []int // spawn order, for stable draw order
	islands    []engine.Island
	selectedID int
	reachable  []engine.Cell
	current    engine.Faction
	turn       int
	over       bool
	winner     engine.Faction
	log        *MessageLog
}

func newScene() *scene {
	return &scene{
		markers: make(map[int]*marker),
		turn:    1,
		log:     NewMessageLog(),
	}
}

// apply mirrors a batch of effects. reach lists the legal destinations of a ship and
// is only called when a ship becomes selected.
func (sc *scene) apply(effects []engine.Effect, reach func(shipID int) []engine.Cell) {
	for _, e := range effects {
		switch e.Kind {
		case engine.EffectGameStarted:
			sc.current = e.Faction
		case engine.EffectShipSpawned:
			sc.markers[e.ShipID] = newMarker(e)
			sc.order = append(sc.order, e.ShipID)
		case engine.EffectIslandPlaced:
			sc.islands = append(sc.islands, engine.Island{Kind: e.Terrain, Pos: e.To})
		case engine.EffectSelected:
			if m, ok := sc.markers[e.ShipID]; ok {
				m.selected = true
			}
			sc.selectedID = e.ShipID
			sc.reachable = nil
			if reach != nil {
				sc.reachable = reach(e.ShipID)
			}
		case engine.EffectDeselected:
			if m, ok := sc.markers[e.ShipID]; ok {
				m.selected = false
			}
			if sc.selectedID == e.ShipID {
				sc.selectedID = 0
				sc.reachable = nil
			}
		case engine.EffectMoved:
			if m, ok := sc.markers[e.ShipID]; ok {
				m.moveTo(e.To)
			}
			sc.reachable = nil
		case engine.EffectDamaged:
			if m, ok := sc.markers[e.ShipID]; ok {
				m.health = e.HealthFraction
			}
		case engine.EffectDestroyed:
			delete(sc.markers, e.ShipID)
			sc.removeFromOrder(e.ShipID)
		case engine.EffectTurnChanged:
			sc.current = e.Faction
			sc.turn++
		case engine.EffectGameOver:
			sc.over = true
			sc.winner = e.Faction
		}
		if e.Message != "" {
			sc.log.Add(LogEntry{
				Turn:    sc.turn,
				Faction: e.Faction,
				Neutral: e.Kind == engine.EffectGameStarted || e.Kind == engine.EffectGameOver,
				Message: e.Message,
			})
		}
	}
}

func (sc *scene) removeFromOrder(id int) {
	kept := sc.order[:0]
	for _, v := range sc.order {
		if v != id {
			kept = append(kept, v)
		}
	}
	sc.order = kept
}

// tick advances every marker animation by one frame.
func (sc *scene) tick() {
	for _, m := range sc.markers {
		m.tick()
	}
}

// isReachable reports whether c is highlighted as a legal destination.
func (sc *scene) isReachable(c engine.Cell) bool {
	for _, r := range sc.reachable {
		if r == c {
			return true
		}
	}
	return false
}
