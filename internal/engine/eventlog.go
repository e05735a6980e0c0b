package engine

import (
	"fmt"
	"strings"
)

// LogEntry is one recorded effect.
type LogEntry struct {
	Turn    int
	Faction string // acting faction when the effect was emitted
	Kind    EffectKind
	Ship    string // ship name, or "--" for global events
	Value   string // message text or a terse description for silent effects
	NumVal  int    // damage for damaged/destroyed entries
	Silent  bool   // no player-facing message
}

// String formats the entry as a fixed-width log line.
//
//	[T=003] red    damaged       Kolberg          Ship Kolberg (cruiser) of team red took 15 damage.
func (e LogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-6s %-13s %-16s %s",
		e.Turn, e.Faction, e.Kind, e.Ship, e.Value)
}

// EventLog is the unbounded, machine-readable record of everything a game emitted.
// The adapter's message panel keeps only recent lines; this keeps all of them.
type EventLog struct {
	entries []LogEntry
}

// NewEventLog creates an empty log.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// Record appends one effect.
func (l *EventLog) Record(turn int, acting Faction, e Effect) {
	ship := e.ShipName
	if ship == "" {
		ship = "--"
	}
	value := e.Message
	silent := value == ""
	if silent {
		value = fmt.Sprintf("%s %s", e.Kind, e.To)
	}
	l.entries = append(l.entries, LogEntry{
		Turn:    turn,
		Faction: acting.String(),
		Kind:    e.Kind,
		Ship:    ship,
		Value:   value,
		NumVal:  e.Damage,
		Silent:  silent,
	})
}

// Entries returns all recorded entries.
func (l *EventLog) Entries() []LogEntry {
	return l.entries
}

// Filter returns entries of the given kind.
func (l *EventLog) Filter(kind EffectKind) []LogEntry {
	var out []LogEntry
	for _, e := range l.entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many entries have the given kind.
func (l *EventLog) Count(kind EffectKind) int {
	return len(l.Filter(kind))
}

// HasMessage reports whether any entry's value contains substr.
func (l *EventLog) HasMessage(substr string) bool {
	for _, e := range l.entries {
		if strings.Contains(e.Value, substr) {
			return true
		}
	}
	return false
}

// Messages returns the player-facing lines in order, skipping silent effects.
func (l *EventLog) Messages() []string {
	var out []string
	for _, e := range l.entries {
		if e.Silent {
			continue
		}
		out = append(out, e.Value)
	}
	return out
}

// Format returns the full log as a single string for t.Log output.
func (l *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range l.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
