// Package projection derives display-ready views from room state.
// It never reads the store or emits events.
package projection

import (
	"time"

	"booking-lab/domain"
)

// Schedule turns raw room state into the hallway screen layout. All
// times are converted to the facility's timezone before they leave
// the server, so a dumb display never does date math.
type Schedule struct {
	location *time.Location
}

func NewSchedule(location *time.Location) *Schedule {
	if location == nil {
		location = time.UTC
	}
	return &Schedule{location: location}
}

// Snapshot builds the self-contained display message: the reservation
// in progress, the next two, and the full ordered upcoming list.
// Input reservations must be ACTIVE and ordered by start, which is how
// the engine hands them over.
func (s *Schedule) Snapshot(state domain.RoomState) domain.Snapshot {
	snap := domain.Snapshot{
		GeneratedAt: state.AsOf.In(s.location),
		Next:        []domain.Entry{},
		Upcoming:    make([]domain.Entry, 0, len(state.Reservations)),
	}

	for _, res := range state.Reservations {
		entry := s.entry(res)
		snap.Upcoming = append(snap.Upcoming, entry)

		switch {
		case res.Ongoing(state.AsOf):
			snap.Current = &entry
		case res.Start.After(state.AsOf) && len(snap.Next) < 2:
			snap.Next = append(snap.Next, entry)
		}
	}

	return snap
}

func (s *Schedule) entry(res domain.Reservation) domain.Entry {
	return domain.Entry{
		ID:    res.ID.String(),
		Start: res.Start.In(s.location),
		End:   res.End.In(s.location),
		Label: res.Label,
	}
}
