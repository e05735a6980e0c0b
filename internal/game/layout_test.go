package game

import (
	"testing"

	"github.com/Garsondee/Fleet-Skirmish/internal/engine"
)

func TestCellAt(t *testing.T) {
	cases := []struct {
		mx, my int
		want   engine.Cell
		ok     bool
	}{
		{50, 50, engine.Cell{X: 0, Y: 0}, true},
		{149, 149, engine.Cell{X: 0, Y: 0}, true},
		{150, 149, engine.Cell{X: 1, Y: 0}, true},
		{749, 749, engine.Cell{X: 6, Y: 6}, true},
		{49, 100, engine.Cell{}, false},  // left border
		{750, 100, engine.Cell{}, false}, // right border
		{100, 760, engine.Cell{}, false}, // bottom border
		{900, 300, engine.Cell{}, false}, // log panel
	}
	for _, tc := range cases {
		got, ok := cellAt(tc.mx, tc.my)
		if ok != tc.ok || got != tc.want {
			t.Errorf("cellAt(%d, %d) = %v, %v; want %v, %v", tc.mx, tc.my, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCellOrigin_RoundTrip(t *testing.T) {
	for y := 0; y < engine.GridSize; y++ {
		for x := 0; x < engine.GridSize; x++ {
			c := engine.Cell{X: x, Y: y}
			px, py := cellOrigin(c)
			got, ok := cellAt(int(px)+cellSize/2, int(py)+cellSize/2)
			if !ok || got != c {
				t.Fatalf("centre of %v maps back to %v (%v)", c, got, ok)
			}
		}
	}
}
