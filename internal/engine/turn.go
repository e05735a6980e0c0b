package engine

import "errors"

// HandleClick runs one player intent to completion and returns what happened, in order.
// Off-board cells, clicks before Start and clicks after the game is decided are no-ops.
func (g *Game) HandleClick(c Cell) []Effect {
	if !g.started || g.over || !c.InBounds() {
		return nil
	}

	if s, ok := g.ShipAt(c); ok && s.Faction == g.current {
		return g.record(g.toggleSelection(s))
	}

	sel, ok := g.Selected()
	if !ok {
		return nil
	}

	if err := g.ValidateMove(sel, c); err != nil {
		var illegal *IllegalMoveError
		if errors.As(err, &illegal) {
			return g.record([]Effect{rejectedEffect(sel, illegal)})
		}
		return nil
	}

	// Move and attack are logged under the turn that produced them.
	effects := g.record([]Effect{g.moveShip(sel.ID, c)})
	attack := g.record(g.attack())
	effects = append(effects, attack...)
	effects = append(effects, g.advanceTurn()...)
	return effects
}

func (g *Game) toggleSelection(s *Ship) []Effect {
	if g.selectedID == s.ID {
		g.selectedID = 0
		return []Effect{deselectedEffect(*s, true)}
	}
	var effects []Effect
	if prev, ok := g.Selected(); ok {
		effects = append(effects, deselectedEffect(prev, false))
	}
	g.selectedID = s.ID
	return append(effects, selectedEffect(*s))
}

func (g *Game) moveShip(id int, to Cell) Effect {
	s, _ := g.shipByID(id)
	from := s.Pos
	s.Pos = to
	return movedEffect(*s, from)
}

// attack lets every ship of the acting faction fire. Targets and damage are decided
// against a snapshot first, then applied as one batch.
func (g *Game) attack() []Effect {
	engagements := ResolveTargets(g.Ships(), g.Islands(), g.current)
	hits := PlanDamage(engagements, g.policy)
	return g.applyHits(hits)
}

// advanceTurn hands control to the other faction and clears the selection.
// If the attack sank the last enemy ship the game ends here.
func (g *Game) advanceTurn() []Effect {
	acting := g.current
	var prev Ship
	hadSelection := false
	if s, ok := g.Selected(); ok {
		prev, hadSelection = s, true
	}

	g.current = acting.Opponent()
	g.selectedID = 0
	g.turn++

	effects := []Effect{turnEffect(g.current)}
	if hadSelection {
		effects = append(effects, deselectedEffect(prev, false))
	}
	if g.FleetSize(acting.Opponent()) == 0 {
		g.over = true
		g.winner = acting
		effects = append(effects, gameOverEffect(acting))
	}
	return g.record(effects)
}
