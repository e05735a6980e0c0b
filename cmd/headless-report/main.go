package main

import (
	"flag"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/Garsondee/Fleet-Skirmish/internal/config"
	"github.com/Garsondee/Fleet-Skirmish/internal/engine"
)

type runStats struct {
	runIndex int
	seed     int64
	gameID   string

	turns      int
	finished   bool
	stalled    bool   // side to move had no legal move
	winner     string // "green", "red" or "none"
	islands    int
	moves      int
	rejections int

	damageDealt [2]int // indexed by attacking faction
	shipsLost   [2]int // indexed by faction that lost them
	zeroHits    int    // hits absorbed entirely (battleship armour)
	firstKill   int    // turn of first destroyed ship, 0 if none

	violations []string
}

func main() {
	var runs int
	var turns int
	var seedBase int64
	var seedStep int64
	var mitigation string
	var noise float64

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	flag.IntVar(&runs, "runs", 5, "number of headless games")
	flag.IntVar(&turns, "turns", 200, "turn cap per game")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&mitigation, "mitigation", cfg.Mitigation.String(), "long-range rule: per-target or last-scanned")
	flag.Float64Var(&noise, "noise", 0.1, "probability of a random (possibly illegal) click before each move")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if turns <= 0 {
		fmt.Println("error: -turns must be > 0")
		return
	}
	policy, err := engine.ParseMitigation(mitigation)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Headless Skirmish Report ===\n")
	fmt.Printf("runs=%d turns=%d seed_base=%d seed_step=%d mitigation=%s noise=%.2f\n\n",
		runs, turns, seedBase, seedStep, policy, noise)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs := runGame(i+1, seed, turns, policy, noise, cfg.ScatterAttempts)
		all = append(all, rs)
		printRun(rs)
	}

	printAggregate(all)
}

// runGame plays one match with a random legal-move driver: each turn it selects a
// random ship of the side to move and clicks a random reachable cell.
func runGame(runIndex int, seed int64, maxTurns int, policy engine.MitigationPolicy, noise float64, scatter int) runStats {
	cfg := config.Config{Seed: seed, Mitigation: policy, ScatterAttempts: scatter}
	g := engine.New(cfg.Options()...)
	g.Start()
	rng := rand.New(rand.NewSource(seed ^ 0x5eed)) // #nosec G404 -- driver only

	rs := runStats{runIndex: runIndex, seed: seed, gameID: g.ID(), islands: len(g.Islands())}
	health := healthByID(g.Ships())

	for g.Turn() <= maxTurns {
		if _, over := g.Winner(); over {
			break
		}
		if !playTurn(g, rng, noise) {
			rs.stalled = true
			break
		}
		rs.violations = append(rs.violations, checkInvariants(g.Turn(), health, g.Ships())...)
		health = healthByID(g.Ships())
	}

	rs.turns = g.Turn() - 1
	rs.winner = "none"
	if w, over := g.Winner(); over {
		rs.finished = true
		rs.winner = w.String()
	}
	summarizeLog(&rs, g.Log(), shipFactions(g))
	return rs
}

// playTurn makes one legal move for the side to move. It returns false when no ship
// of that side can move anywhere.
func playTurn(g *engine.Game, rng *rand.Rand, noise float64) bool {
	var mine []engine.Ship
	for _, s := range g.Ships() {
		if s.Faction == g.Current() {
			mine = append(mine, s)
		}
	}
	rng.Shuffle(len(mine), func(i, j int) { mine[i], mine[j] = mine[j], mine[i] })

	for _, s := range mine {
		cells := g.ReachableCells(s.ID)
		if len(cells) == 0 {
			continue
		}
		if sel, ok := g.Selected(); !ok || sel.ID != s.ID {
			g.HandleClick(s.Pos)
		}
		if rng.Float64() < noise {
			// May be rejected, may toggle another ship; either way re-select below.
			g.HandleClick(engine.Cell{X: rng.Intn(engine.GridSize), Y: rng.Intn(engine.GridSize)})
			if g.Current() != s.Faction {
				return true
			}
			if sel, ok := g.Selected(); !ok || sel.ID != s.ID {
				g.HandleClick(s.Pos)
			}
			cells = g.ReachableCells(s.ID)
			if len(cells) == 0 {
				continue
			}
		}
		g.HandleClick(cells[rng.Intn(len(cells))])
		return true
	}
	return false
}

func healthByID(ships []engine.Ship) map[int]int {
	out := make(map[int]int, len(ships))
	for _, s := range ships {
		out[s.ID] = s.Health
	}
	return out
}

// shipFactions maps ship names to their side. Sunk ships are no longer in the
// roster, so the opening fleet is included.
func shipFactions(g *engine.Game) map[string]engine.Faction {
	out := map[string]engine.Faction{}
	for _, spec := range engine.StartFleet() {
		out[spec.Name] = spec.Faction
	}
	for _, s := range g.Ships() {
		out[s.Name] = s.Faction
	}
	return out
}

// checkInvariants compares the roster against the previous health snapshot.
func checkInvariants(turn int, prev map[int]int, ships []engine.Ship) []string {
	var out []string
	seen := map[engine.Cell]string{}
	for _, s := range ships {
		if s.Health <= 0 {
			out = append(out, fmt.Sprintf("turn %d: %s in roster with health %d", turn, s.Name, s.Health))
		}
		if before, ok := prev[s.ID]; ok && s.Health > before {
			out = append(out, fmt.Sprintf("turn %d: %s health rose %d -> %d", turn, s.Name, before, s.Health))
		}
		if !s.Pos.InBounds() {
			out = append(out, fmt.Sprintf("turn %d: %s off the board at %s", turn, s.Name, s.Pos))
		}
		if other, ok := seen[s.Pos]; ok {
			out = append(out, fmt.Sprintf("turn %d: %s and %s share %s", turn, other, s.Name, s.Pos))
		}
		seen[s.Pos] = s.Name
	}
	return out
}

// summarizeLog fills the damage and loss counters from the event log.
func summarizeLog(rs *runStats, log *engine.EventLog, factions map[string]engine.Faction) {
	for _, e := range log.Entries() {
		switch e.Kind {
		case engine.EffectMoved:
			rs.moves++
		case engine.EffectRejected:
			rs.rejections++
		case engine.EffectDamaged, engine.EffectDestroyed:
			victim, ok := factions[e.Ship]
			if !ok {
				continue
			}
			rs.damageDealt[victim.Opponent()] += e.NumVal
			if e.NumVal == 0 {
				rs.zeroHits++
			}
			if e.Kind == engine.EffectDestroyed {
				rs.shipsLost[victim]++
				if rs.firstKill == 0 {
					rs.firstKill = e.Turn
				}
			}
		}
	}
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d game=%s) ---\n", rs.runIndex, rs.seed, rs.gameID)
	fmt.Printf("outcome: winner=%s finished=%v stalled=%v turns=%d first_kill_turn=%d\n",
		rs.winner, rs.finished, rs.stalled, rs.turns, rs.firstKill)
	fmt.Printf("board: islands=%d moves=%d rejections=%d\n", rs.islands, rs.moves, rs.rejections)
	fmt.Printf("damage_dealt: green=%d red=%d zero_hits=%d\n",
		rs.damageDealt[engine.FactionGreen], rs.damageDealt[engine.FactionRed], rs.zeroHits)
	fmt.Printf("ships_lost: green=%d red=%d\n", rs.shipsLost[engine.FactionGreen], rs.shipsLost[engine.FactionRed])
	if len(rs.violations) > 0 {
		fmt.Printf("INVARIANT VIOLATIONS (%d):\n", len(rs.violations))
		for _, v := range rs.violations {
			fmt.Printf("  %s\n", v)
		}
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	wins := map[string]int{}
	var turns, moves, rejections, zeroHits, violations int
	var damage, lost [2]int
	var finishedTurns []int
	for _, rs := range all {
		wins[rs.winner]++
		turns += rs.turns
		moves += rs.moves
		rejections += rs.rejections
		zeroHits += rs.zeroHits
		violations += len(rs.violations)
		for f := 0; f < 2; f++ {
			damage[f] += rs.damageDealt[f]
			lost[f] += rs.shipsLost[f]
		}
		if rs.finished {
			finishedTurns = append(finishedTurns, rs.turns)
		}
	}

	fmt.Printf("=== Aggregate ===\n")
	fmt.Printf("runs=%d\n", len(all))
	fmt.Printf("wins: %s\n", formatWins(wins))
	fmt.Printf("avg_per_run: turns=%.1f moves=%.1f rejections=%.1f zero_hits=%.1f\n",
		avg(turns, len(all)), avg(moves, len(all)), avg(rejections, len(all)), avg(zeroHits, len(all)))
	fmt.Printf("avg_damage_dealt: green=%.1f red=%.1f\n", avg(damage[0], len(all)), avg(damage[1], len(all)))
	fmt.Printf("avg_ships_lost: green=%.2f red=%.2f\n", avg(lost[0], len(all)), avg(lost[1], len(all)))
	fmt.Printf("median_turns_to_finish=%s\n", medianString(finishedTurns))
	fmt.Printf("invariant_violations=%d\n", violations)
}

func avg(sum int, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func medianString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sorted := append([]int(nil), vals...)
	sort.Ints(sorted)
	return fmt.Sprintf("%d", sorted[len(sorted)/2])
}

func formatWins(wins map[string]int) string {
	keys := make([]string, 0, len(wins))
	for k := range wins {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, wins[k])
	}
	return strings.Join(parts, " ")
}
