package engine

import "testing"

// startGame builds and starts a game with no random terrain unless opts add some.
func startGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	base := []Option{WithSeed(1), WithIslands()}
	g := New(append(base, opts...)...)
	g.Start()
	return g
}

// click is HandleClick on raw coordinates.
func click(g *Game, x, y int) []Effect {
	return g.HandleClick(Cell{x, y})
}

// kinds lists effect kinds in order for compact assertions.
func kinds(effects []Effect) []EffectKind {
	out := make([]EffectKind, len(effects))
	for i, e := range effects {
		out[i] = e.Kind
	}
	return out
}

func hasKind(effects []Effect, k EffectKind) bool {
	for _, e := range effects {
		if e.Kind == k {
			return true
		}
	}
	return false
}

func shipNamed(t *testing.T, g *Game, name string) Ship {
	t.Helper()
	for _, s := range g.Ships() {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("ship %q not in roster", name)
	return Ship{}
}

// dumpLog prints the event log so it appears in `go test -v` output.
func dumpLog(t *testing.T, g *Game) {
	t.Helper()
	t.Log("\n" + g.Log().Format())
}
