// Package domain contains core concepts of the reservation system.
// This file defines Reservation records and the derived room views.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCancelled Status = "CANCELLED"
)

// Reservation is a record of exclusive room use for a time range.
// All fields except Status are write-once; Status only ever moves
// ACTIVE -> CANCELLED. Cancelled rows are kept for history and are
// invisible to conflict checks and live views.
type Reservation struct {
	ID     uuid.UUID
	Start  time.Time
	End    time.Time
	Owner  string // opaque token from the chat platform
	Label  string
	Status Status
}

func (r Reservation) Range() Range {
	return Range{Start: r.Start, End: r.End}
}

// Ongoing reports whether the reservation is in progress at the given instant.
func (r Reservation) Ongoing(at time.Time) bool {
	return !r.Start.After(at) && r.End.After(at)
}

// RoomState is the derived, ordered view of current and future ACTIVE
// reservations. It is recomputed from the store on demand, never persisted.
type RoomState struct {
	AsOf         time.Time
	Reservations []Reservation // ordered by Start ascending, End > AsOf
}
