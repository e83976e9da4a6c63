package projection

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"booking-lab/domain"
)

func TestSchedule_Snapshot(t *testing.T) {
	req := require.New(t)

	amsterdam, err := time.LoadLocation("Europe/Amsterdam")
	req.NoError(err)
	schedule := NewSchedule(amsterdam)

	asOf := time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)
	mk := func(startOffset, endOffset time.Duration, label string) domain.Reservation {
		return domain.Reservation{
			ID:     uuid.New(),
			Start:  asOf.Add(startOffset),
			End:    asOf.Add(endOffset),
			Label:  label,
			Status: domain.StatusActive,
		}
	}

	ongoing := mk(-30*time.Minute, 30*time.Minute, "Standup")
	first := mk(time.Hour, 2*time.Hour, "Demo")
	second := mk(3*time.Hour, 4*time.Hour, "Retro")
	third := mk(5*time.Hour, 6*time.Hour, "Planning")

	snap := schedule.Snapshot(domain.RoomState{
		AsOf:         asOf,
		Reservations: []domain.Reservation{ongoing, first, second, third},
	})

	// The in-progress reservation fills the Current slot
	req.NotNil(snap.Current)
	req.Equal("Standup", snap.Current.Label)

	// Next holds exactly the two reservations after it
	req.Len(snap.Next, 2)
	req.Equal("Demo", snap.Next[0].Label)
	req.Equal("Retro", snap.Next[1].Label)

	// Upcoming keeps the full ordered view
	req.Len(snap.Upcoming, 4)
	req.Equal("Planning", snap.Upcoming[3].Label)

	// Times are rendered in the facility timezone
	req.Equal("Europe/Amsterdam", snap.GeneratedAt.Location().String())
	req.Equal("Europe/Amsterdam", snap.Upcoming[0].Start.Location().String())
	req.True(snap.Upcoming[0].Start.Equal(ongoing.Start))
}

func TestSchedule_Snapshot_EmptyRoom(t *testing.T) {
	req := require.New(t)
	schedule := NewSchedule(nil)

	asOf := time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)
	snap := schedule.Snapshot(domain.RoomState{AsOf: asOf})

	req.Nil(snap.Current)
	req.Empty(snap.Next)
	req.Empty(snap.Upcoming)
	req.Equal(asOf, snap.GeneratedAt)
}

func TestSchedule_Snapshot_BoundaryIsNotOngoing(t *testing.T) {
	req := require.New(t)
	schedule := NewSchedule(time.UTC)

	asOf := time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC)
	// Ends exactly at asOf: the half-open interval excludes it from Current
	ended := domain.Reservation{
		ID:     uuid.New(),
		Start:  asOf.Add(-time.Hour),
		End:    asOf,
		Label:  "Done",
		Status: domain.StatusActive,
	}
	// Starts exactly at asOf: counts as Current, not Next
	starting := domain.Reservation{
		ID:     uuid.New(),
		Start:  asOf,
		End:    asOf.Add(time.Hour),
		Label:  "Starting",
		Status: domain.StatusActive,
	}

	snap := schedule.Snapshot(domain.RoomState{
		AsOf:         asOf,
		Reservations: []domain.Reservation{ended, starting},
	})

	req.NotNil(snap.Current)
	req.Equal("Starting", snap.Current.Label)
	req.Empty(snap.Next)
}
