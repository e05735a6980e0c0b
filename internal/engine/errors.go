package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidSpawn is returned when a ship is spawned on an occupied or off-board cell.
var ErrInvalidSpawn = errors.New("invalid spawn")

// MoveReason names why a move was refused.
type MoveReason int

const (
	ReasonTooFar MoveReason = iota
	ReasonIslandBlocked
	ReasonOccupied
)

func (r MoveReason) String() string {
	switch r {
	case ReasonTooFar:
		return "too_far"
	case ReasonIslandBlocked:
		return "island_blocked"
	case ReasonOccupied:
		return "occupied"
	default:
		return "unknown"
	}
}

// Message is the player-facing text for the rejection.
func (r MoveReason) Message() string {
	switch r {
	case ReasonTooFar:
		return "Too far to move."
	case ReasonIslandBlocked:
		return "Cannot stop on an island."
	case ReasonOccupied:
		return "Another ship is already there."
	default:
		return "Illegal move."
	}
}

// IllegalMoveError reports a refused move. Engine state is unchanged when it is returned.
type IllegalMoveError struct {
	Reason MoveReason
	Ship   string
	To     Cell
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move of %s to %s: %s", e.Ship, e.To, e.Reason)
}
