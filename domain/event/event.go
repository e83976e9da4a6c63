package event

import (
	"time"

	"github.com/google/uuid"

	"booking-lab/domain"
)

// DomainEvent marks a committed change to the reservation ledger.
// Exactly one event is emitted per successful mutation, after the
// store write commits. Broadcasting consumes these; persistence never
// depends on them.
type DomainEvent interface {
	OccurredAt() time.Time
}

type ReservationBooked struct {
	Reservation domain.Reservation
	At          time.Time
}

func (e ReservationBooked) OccurredAt() time.Time { return e.At }

type ReservationCancelled struct {
	ID    uuid.UUID
	Owner string
	At    time.Time
}

func (e ReservationCancelled) OccurredAt() time.Time { return e.At }

type ReservationExtended struct {
	Reservation domain.Reservation
	PreviousEnd time.Time
	At          time.Time
}

func (e ReservationExtended) OccurredAt() time.Time { return e.At }

// ScheduleTick is a clock-driven event: nothing changed in the ledger,
// but connected displays must roll "upcoming" into "ongoing" and drop
// rows whose end has passed. Emitted by the pulse worker.
type ScheduleTick struct {
	At time.Time
}

func (e ScheduleTick) OccurredAt() time.Time { return e.At }
