// Package engine holds the rules of the fleet skirmish: board geometry, ships and
// terrain, move validation, targeting, damage and the turn state machine. It has no
// rendering or input dependency; every call returns the effects the caller should show.
package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// DefaultScatterAttempts is how many random cells are tried when placing terrain.
const DefaultScatterAttempts = 15

// Game is one independent match. It is not safe for concurrent use: the owner must
// serialise calls, one click at a time.
type Game struct {
	id         string
	ships      []*Ship
	islands    []Island
	current    Faction
	selectedID int // 0 = none
	turn       int
	over       bool
	winner     Faction
	nextID     int

	rng             *rand.Rand
	policy          MitigationPolicy
	fleet           []ShipSpec
	fixedIslands    []Island
	useFixedIslands bool
	scatterAttempts int
	started         bool

	log *EventLog
}

// Option configures a Game before Start.
type Option func(*Game)

// WithSeed seeds the terrain scatter for reproducible boards.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- terrain layout only
	}
}

// WithRand uses the given source for terrain scatter.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithMitigation selects the long-range halving rule.
func WithMitigation(p MitigationPolicy) Option {
	return func(g *Game) {
		g.policy = p
	}
}

// WithFleet replaces the opening fleet.
func WithFleet(specs ...ShipSpec) Option {
	return func(g *Game) {
		g.fleet = append([]ShipSpec(nil), specs...)
	}
}

// WithIslands places exactly these islands instead of scattering at random.
func WithIslands(islands ...Island) Option {
	return func(g *Game) {
		g.fixedIslands = append([]Island(nil), islands...)
		g.useFixedIslands = true
	}
}

// WithScatterAttempts changes how many random terrain placements are tried.
func WithScatterAttempts(n int) Option {
	return func(g *Game) {
		g.scatterAttempts = n
	}
}

// New creates a game. Call Start before handling clicks.
func New(opts ...Option) *Game {
	g := &Game{
		id:              uuid.NewString(),
		current:         FactionGreen,
		turn:            1,
		nextID:          1,
		policy:          MitigatePerTarget,
		fleet:           StartFleet(),
		scatterAttempts: DefaultScatterAttempts,
		log:             NewEventLog(),
	}
	for _, o := range opts {
		o(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- terrain layout only
	}
	return g
}

// Start spawns both fleets, places terrain and returns the placements.
// Calling it twice is a no-op.
func (g *Game) Start() []Effect {
	if g.started {
		return nil
	}
	g.started = true

	effects := []Effect{{Kind: EffectGameStarted, Faction: g.current, Message: "Game started!"}}
	for _, spec := range g.fleet {
		s, err := g.spawnShip(spec)
		if err != nil {
			// Start positions are fixed; a clash here is a programming error.
			panic(err)
		}
		effects = append(effects, spawnedEffect(*s))
	}

	if g.useFixedIslands {
		for _, is := range g.fixedIslands {
			if placed, ok := g.placeIsland(is); ok {
				effects = append(effects, islandEffect(placed))
			}
		}
	} else {
		for i := 0; i < g.scatterAttempts; i++ {
			c := Cell{g.rng.Intn(GridSize), g.rng.Intn(GridSize)}
			if g.Occupied(c) {
				continue
			}
			kind := TerrainLow
			if g.rng.Float64() < 0.5 {
				kind = TerrainHigh
			}
			if placed, ok := g.placeIsland(Island{Kind: kind, Pos: c}); ok {
				effects = append(effects, islandEffect(placed))
			}
		}
	}
	return g.record(effects)
}

func (g *Game) spawnShip(spec ShipSpec) (*Ship, error) {
	if !spec.Pos.InBounds() {
		return nil, fmt.Errorf("%w: %s at %s is off the board", ErrInvalidSpawn, spec.Name, spec.Pos)
	}
	if g.Occupied(spec.Pos) {
		return nil, fmt.Errorf("%w: %s at %s is occupied", ErrInvalidSpawn, spec.Name, spec.Pos)
	}
	s := &Ship{
		ID:      g.nextID,
		Faction: spec.Faction,
		Class:   spec.Class,
		Name:    spec.Name,
		Pos:     spec.Pos,
		Health:  StatsFor(spec.Class).MaxHealth,
	}
	g.nextID++
	g.ships = append(g.ships, s)
	return s, nil
}

// placeIsland adds terrain unless the cell is taken or off the board.
func (g *Game) placeIsland(is Island) (Island, bool) {
	if !is.Pos.InBounds() || g.Occupied(is.Pos) {
		return Island{}, false
	}
	g.islands = append(g.islands, is)
	return is, true
}

func (g *Game) shipByID(id int) (*Ship, bool) {
	for _, s := range g.ships {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

func (g *Game) removeShip(id int) {
	kept := g.ships[:0]
	for _, s := range g.ships {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	for i := len(kept); i < len(g.ships); i++ {
		g.ships[i] = nil
	}
	g.ships = kept
}

// record appends effects to the event log under the current turn and returns them.
func (g *Game) record(effects []Effect) []Effect {
	for _, e := range effects {
		g.log.Record(g.turn, g.current, e)
	}
	return effects
}

// ID is the unique identifier of this match.
func (g *Game) ID() string { return g.id }

// Current returns the faction whose turn it is.
func (g *Game) Current() Faction { return g.current }

// Turn returns the 1-based turn counter.
func (g *Game) Turn() int { return g.turn }

// Log returns the full event log.
func (g *Game) Log() *EventLog { return g.log }

// Policy returns the active mitigation policy.
func (g *Game) Policy() MitigationPolicy { return g.policy }

// Selected returns a copy of the selected ship, if any.
func (g *Game) Selected() (Ship, bool) {
	if g.selectedID == 0 {
		return Ship{}, false
	}
	s, ok := g.shipByID(g.selectedID)
	if !ok {
		return Ship{}, false
	}
	return *s, true
}

// Winner reports the winning faction once the other fleet has been sunk.
func (g *Game) Winner() (Faction, bool) {
	return g.winner, g.over
}

// Ships returns copies of every ship in roster order.
func (g *Game) Ships() []Ship {
	out := make([]Ship, len(g.ships))
	for i, s := range g.ships {
		out[i] = *s
	}
	return out
}

// Islands returns a copy of the terrain list.
func (g *Game) Islands() []Island {
	return append([]Island(nil), g.islands...)
}

// State is a read-only copy of a game at one moment.
type State struct {
	ID         string
	Turn       int
	Current    Faction
	SelectedID int // 0 = none
	Ships      []Ship
	Islands    []Island
	Over       bool
	Winner     Faction
}

// Snapshot copies the observable state.
func (g *Game) Snapshot() State {
	return State{
		ID:         g.id,
		Turn:       g.turn,
		Current:    g.current,
		SelectedID: g.selectedID,
		Ships:      g.Ships(),
		Islands:    g.Islands(),
		Over:       g.over,
		Winner:     g.winner,
	}
}

// FleetSize counts the ships a faction has left.
func (g *Game) FleetSize(f Faction) int {
	n := 0
	for _, s := range g.ships {
		if s.Faction == f {
			n++
		}
	}
	return n
}
