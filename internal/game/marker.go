package game

import "github.com/Garsondee/Fleet-Skirmish/internal/engine"

// moveTicks is how long a ship takes to glide to its new cell (500 ms at 60 TPS).
const moveTicks = 30

// marker is the on-screen token of one ship. It only mirrors engine effects.
type marker struct {
	id       int
	name     string
	faction  engine.Faction
	class    engine.ShipClass
	health   float64 // bar proportion, 0..1
	selected bool

	// Animation: screen position slides from (fromX,fromY) to (toX,toY).
	fromX, fromY float64
	toX, toY     float64
	elapsed      int
}

func newMarker(e engine.Effect) *marker {
	x, y := cellOrigin(e.To)
	return &marker{
		id:      e.ShipID,
		name:    e.ShipName,
		faction: e.Faction,
		class:   e.Class,
		health:  e.HealthFraction,
		fromX:   x,
		fromY:   y,
		toX:     x,
		toY:     y,
		elapsed: moveTicks,
	}
}

// moveTo starts a glide from wherever the marker is now.
func (m *marker) moveTo(c engine.Cell) {
	m.fromX, m.fromY = m.position()
	m.toX, m.toY = cellOrigin(c)
	m.elapsed = 0
}

// tick advances the animation by one frame.
func (m *marker) tick() {
	if m.elapsed < moveTicks {
		m.elapsed++
	}
}

// animating reports whether the marker is still gliding.
func (m *marker) animating() bool {
	return m.elapsed < moveTicks
}

// position returns the current top-left pixel, eased between the two cells.
func (m *marker) position() (float64, float64) {
	t := float64(m.elapsed) / moveTicks
	if t >= 1 {
		return m.toX, m.toY
	}
	// Smoothstep.
	t = t * t * (3 - 2*t)
	return m.fromX + (m.toX-m.fromX)*t, m.fromY + (m.toY-m.fromY)*t
}
