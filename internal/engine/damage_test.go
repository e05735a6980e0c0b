package engine

import "testing"

func TestPlanDamage_EvenSplit(t *testing.T) {
	ships := []Ship{
		ship(1, FactionGreen, Destroyer, 3, 3), // 30 damage
		ship(2, FactionRed, Cruiser, 2, 3),
		ship(3, FactionRed, Cruiser, 4, 3),
	}
	hits := PlanDamage(ResolveTargets(ships, nil, FactionGreen), MitigatePerTarget)
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	for _, h := range hits {
		if h.Damage != 15 {
			t.Errorf("hit on %d: expected 15 (30 split two ways), got %d", h.TargetID, h.Damage)
		}
	}
}

func TestPlanDamage_RemainderDiscarded(t *testing.T) {
	ships := []Ship{
		ship(1, FactionGreen, Battleship, 3, 3), // 20 damage
		ship(2, FactionRed, Destroyer, 3, 1),
		ship(3, FactionRed, Destroyer, 3, 5),
		ship(4, FactionRed, Destroyer, 1, 3),
	}
	hits := PlanDamage(ResolveTargets(ships, nil, FactionGreen), MitigatePerTarget)
	for _, h := range hits {
		if h.Damage != 6 {
			t.Errorf("hit on %d: expected 20/3 = 6, got %d", h.TargetID, h.Damage)
		}
	}
}

func TestMitigate(t *testing.T) {
	cases := []struct {
		name   string
		dmg    int
		target ShipClass
		dist   float64
		want   int
	}{
		{"destroyer close", 15, Destroyer, 2, 15},
		{"destroyer far halved", 15, Destroyer, 3, 7},
		{"cruiser far halved", 30, Cruiser, 2.5, 15},
		{"battleship far not halved", 20, Battleship, 6, 20},
		{"battleship shrugs at 10", 10, Battleship, 1, 0},
		{"battleship shrugs small", 7, Battleship, 1, 0},
		{"battleship takes 11", 11, Battleship, 1, 11},
		{"zero stays zero", 0, Cruiser, 5, 0},
	}
	for _, tc := range cases {
		if got := mitigate(tc.dmg, tc.target, tc.dist); got != tc.want {
			t.Errorf("%s: mitigate(%d, %s, %.1f) = %d, want %d", tc.name, tc.dmg, tc.target, tc.dist, got, tc.want)
		}
	}
}

func TestPlanDamage_BattleshipImmuneToSplitFire(t *testing.T) {
	ships := []Ship{
		ship(1, FactionGreen, Cruiser, 0, 3), // 15 damage, two targets -> 7 each
		ship(2, FactionRed, Battleship, 1, 3),
		ship(3, FactionRed, Battleship, 0, 4),
	}
	hits := PlanDamage(ResolveTargets(ships, nil, FactionGreen), MitigatePerTarget)
	for _, h := range hits {
		if h.Damage != 0 {
			t.Errorf("battleship %d should take 0 from a 7-point share, got %d", h.TargetID, h.Damage)
		}
	}
}

func TestPlanDamage_MitigationPolicies(t *testing.T) {
	ships := []Ship{
		ship(1, FactionGreen, Cruiser, 0, 3),
		ship(2, FactionRed, Cruiser, 1, 3),   // eligible at distance 1
		ship(3, FactionRed, Destroyer, 4, 6), // ineligible, scanned last at distance 5
	}
	engs := ResolveTargets(ships, nil, FactionGreen)

	perTarget := PlanDamage(engs, MitigatePerTarget)
	if len(perTarget) != 1 || perTarget[0].Damage != 15 {
		t.Fatalf("per-target: expected one 15-point hit, got %+v", perTarget)
	}
	legacy := PlanDamage(engs, MitigateLastScanned)
	if len(legacy) != 1 || legacy[0].Damage != 7 {
		t.Fatalf("last-scanned: expected one 7-point hit, got %+v", legacy)
	}
}

func TestPlanDamage_NoTargetsNoHits(t *testing.T) {
	ships := []Ship{
		ship(1, FactionGreen, Destroyer, 0, 0),
		ship(2, FactionRed, Destroyer, 6, 6),
	}
	if hits := PlanDamage(ResolveTargets(ships, nil, FactionGreen), MitigatePerTarget); len(hits) != 0 {
		t.Fatalf("expected no hits, got %+v", hits)
	}
}

func TestParseMitigation(t *testing.T) {
	for _, p := range []MitigationPolicy{MitigatePerTarget, MitigateLastScanned} {
		got, err := ParseMitigation(p.String())
		if err != nil || got != p {
			t.Errorf("ParseMitigation(%q) = %v, %v", p.String(), got, err)
		}
	}
	if got, err := ParseMitigation(""); err != nil || got != MitigatePerTarget {
		t.Errorf("empty name should default to per-target, got %v, %v", got, err)
	}
	if _, err := ParseMitigation("nearest"); err == nil {
		t.Error("expected error for unknown policy")
	}
}

func TestApplyHits_ClampsAndRemoves(t *testing.T) {
	g := startGame(t, WithFleet(
		ShipSpec{FactionGreen, Cruiser, "Weymouth", Cell{0, 0}},
		ShipSpec{FactionRed, Destroyer, "G-101", Cell{2, 0}},
		ShipSpec{FactionRed, Cruiser, "Kolberg", Cell{5, 5}},
	))
	g101 := shipNamed(t, g, "G-101")
	kolberg := shipNamed(t, g, "Kolberg")

	effects := g.applyHits([]Hit{
		{AttackerID: 1, TargetID: g101.ID, Damage: 20},
		{AttackerID: 1, TargetID: g101.ID, Damage: 5}, // already sunk: dropped
		{AttackerID: 1, TargetID: kolberg.ID, Damage: 0},
	})
	if got := kinds(effects); len(got) != 2 || got[0] != EffectDestroyed || got[1] != EffectDamaged {
		t.Fatalf("expected [destroyed damaged], got %v", got)
	}
	if effects[0].Health != 0 || effects[0].HealthFraction != 0 {
		t.Fatalf("destroyed ship should report zero health, got %d (%.2f)", effects[0].Health, effects[0].HealthFraction)
	}
	if effects[1].Damage != 0 || effects[1].Message != "Ship Kolberg (cruiser) of team red took 0 damage." {
		t.Fatalf("unexpected zero-damage effect: %+v", effects[1])
	}
	if _, ok := g.ShipAt(Cell{2, 0}); ok {
		t.Fatal("sunk ship should leave the roster")
	}
	if g.FleetSize(FactionRed) != 1 {
		t.Fatalf("expected 1 red ship left, got %d", g.FleetSize(FactionRed))
	}
}
