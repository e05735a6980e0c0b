package engine

import (
	"strings"
	"testing"
)

func TestEventLog_RecordsEveryEffect(t *testing.T) {
	g := startGame(t)
	click(g, 0, 1)
	click(g, 1, 1)

	log := g.Log()
	if log.Count(EffectShipSpawned) != 6 {
		t.Fatalf("expected 6 spawn entries, got %d", log.Count(EffectShipSpawned))
	}
	if log.Count(EffectMoved) != 1 || log.Count(EffectTurnChanged) != 1 {
		t.Fatalf("expected one move and one turn change:\n%s", log.Format())
	}
	moved := log.Filter(EffectMoved)[0]
	if moved.Turn != 1 || moved.Faction != "green" || moved.Ship != "Medea" {
		t.Fatalf("move logged with wrong context: %+v", moved)
	}
	turn := log.Filter(EffectTurnChanged)[0]
	if turn.Turn != 2 || turn.Faction != "red" {
		t.Fatalf("turn change should be logged under the new turn: %+v", turn)
	}
}

func TestEventLog_MessagesSkipSilentEntries(t *testing.T) {
	g := startGame(t)
	click(g, 0, 1)
	click(g, 0, 3) // silent deselect of Medea, then select Weymouth

	msgs := g.Log().Messages()
	if msgs[0] != "Game started!" {
		t.Fatalf("first message should be the start banner, got %q", msgs[0])
	}
	for _, m := range msgs {
		if strings.HasPrefix(m, "ship_spawned") || strings.HasPrefix(m, "deselected") {
			t.Fatalf("silent entry leaked into messages: %q", m)
		}
	}
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %v", msgs)
	}
}

func TestLogEntry_String(t *testing.T) {
	e := LogEntry{Turn: 3, Faction: "red", Kind: EffectDamaged, Ship: "Kolberg", Value: "hit"}
	got := e.String()
	if !strings.HasPrefix(got, "[T=003] red    damaged") || !strings.HasSuffix(got, "hit") {
		t.Fatalf("unexpected format %q", got)
	}
}
