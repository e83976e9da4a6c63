package storage

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/database"
	"github.com/stretchr/testify/require"

	"booking-lab/domain"
	"booking-lab/errors"
)

func reservation(start, end time.Time, owner, label string) domain.Reservation {
	return domain.Reservation{
		ID:     uuid.New(),
		Start:  start,
		End:    end,
		Owner:  owner,
		Label:  label,
		Status: domain.StatusActive,
	}
}

func Test_Insert_And_Upcoming_Ordering(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repo := NewReservationRepository(badgerDB, blugeWriter, slog.Default())
	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	// Given three reservations inserted out of start order
	late := reservation(base.Add(4*time.Hour), base.Add(5*time.Hour), "U1", "retro")
	early := reservation(base, base.Add(time.Hour), "U2", "standup")
	middle := reservation(base.Add(2*time.Hour), base.Add(3*time.Hour), "U3", "viewing")
	for _, res := range []domain.Reservation{late, early, middle} {
		req.NoError(repo.Insert(res))
	}

	// When reading the upcoming view
	upcoming, err := repo.Upcoming(base.Add(-time.Minute))
	req.NoError(err)

	// Then rows come back ordered by start thanks to the padded keys
	req.Len(upcoming, 3)
	req.Equal(early.ID, upcoming[0].ID)
	req.Equal(middle.ID, upcoming[1].ID)
	req.Equal(late.ID, upcoming[2].ID)
}

func Test_Insert_Duplicate_ID_Fails(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repo := NewReservationRepository(badgerDB, blugeWriter, slog.Default())
	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	res := reservation(base, base.Add(time.Hour), "U1", "standup")
	req.NoError(repo.Insert(res))

	// Re-inserting the same id must fail even with a different range
	res.Start = base.Add(6 * time.Hour)
	res.End = base.Add(7 * time.Hour)
	req.ErrorIs(repo.Insert(res), errors.ErrDuplicateID)
}

func Test_ListOverlapping_HalfOpen_Bounds(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repo := NewReservationRepository(badgerDB, blugeWriter, slog.Default())
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	booked := reservation(base, base.Add(time.Hour), "U1", "viewing")
	req.NoError(repo.Insert(booked))

	// Back-to-back before and after: no overlap
	before, err := repo.ListOverlapping(base.Add(-time.Hour), base)
	req.NoError(err)
	req.Empty(before)

	after, err := repo.ListOverlapping(base.Add(time.Hour), base.Add(2*time.Hour))
	req.NoError(err)
	req.Empty(after)

	// Contained range overlaps
	inside, err := repo.ListOverlapping(base.Add(30*time.Minute), base.Add(45*time.Minute))
	req.NoError(err)
	req.Len(inside, 1)
	req.Equal(booked.ID, inside[0].ID)
}

func Test_Cancel_Frees_Range_And_Keeps_History(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repo := NewReservationRepository(badgerDB, blugeWriter, slog.Default())
	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	res := reservation(base, base.Add(time.Hour), "U1", "viewing")
	req.NoError(repo.Insert(res))
	req.NoError(repo.Cancel(res.ID, "U1"))

	// The range is free for conflict checks
	overlapping, err := repo.ListOverlapping(base, base.Add(time.Hour))
	req.NoError(err)
	req.Empty(overlapping)

	// But the row survives with CANCELLED status
	stored, err := repo.Get(res.ID)
	req.NoError(err)
	req.Equal(domain.StatusCancelled, stored.Status)

	// And cancelling twice is rejected
	req.ErrorIs(repo.Cancel(res.ID, "U1"), errors.ErrAlreadyCancelled)
}

func Test_Cancel_Wrong_Owner_Fails_Closed(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repo := NewReservationRepository(badgerDB, blugeWriter, slog.Default())
	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	res := reservation(base, base.Add(time.Hour), "U1", "viewing")
	req.NoError(repo.Insert(res))

	req.ErrorIs(repo.Cancel(res.ID, "intruder"), errors.ErrNotOwner)

	// The reservation is untouched
	stored, err := repo.Get(res.ID)
	req.NoError(err)
	req.Equal(domain.StatusActive, stored.Status)
}

func Test_UpdateEnd_Rewrites_In_Place(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repo := NewReservationRepository(badgerDB, blugeWriter, slog.Default())
	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	res := reservation(base, base.Add(time.Hour), "U1", "viewing")
	req.NoError(repo.Insert(res))

	updated, err := repo.UpdateEnd(res.ID, "U1", base.Add(90*time.Minute))
	req.NoError(err)
	req.Equal(base.Add(90*time.Minute), updated.End)

	// The new end is visible through the id index and the scan path
	stored, err := repo.Get(res.ID)
	req.NoError(err)
	req.Equal(updated.End, stored.End)

	overlapping, err := repo.ListOverlapping(base.Add(time.Hour), base.Add(2*time.Hour))
	req.NoError(err)
	req.Len(overlapping, 1)
}

func Test_OwnerUpcoming_And_Window(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repo := NewReservationRepository(badgerDB, blugeWriter, slog.Default())
	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	mine := reservation(base.Add(10*time.Hour), base.Add(11*time.Hour), "U1", "viewing")
	theirs := reservation(base.Add(12*time.Hour), base.Add(13*time.Hour), "U2", "demo")
	nextWeek := reservation(base.Add(8*24*time.Hour), base.Add(8*24*time.Hour+time.Hour), "U1", "later")
	for _, res := range []domain.Reservation{mine, theirs, nextWeek} {
		req.NoError(repo.Insert(res))
	}

	owned, err := repo.OwnerUpcoming("U1", base)
	req.NoError(err)
	req.Len(owned, 2)

	week, err := repo.Window(base, base.Add(7*24*time.Hour))
	req.NoError(err)
	req.Len(week, 2)
	req.Equal(mine.ID, week[0].ID)
	req.Equal(theirs.ID, week[1].ID)
}

func Test_SearchLabels_Finds_And_Skips_Cancelled(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repo := NewReservationRepository(badgerDB, blugeWriter, slog.Default())
	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	viewing := reservation(base, base.Add(time.Hour), "U1", "candidate viewing session")
	demo := reservation(base.Add(2*time.Hour), base.Add(3*time.Hour), "U2", "product demo")
	req.NoError(repo.Insert(viewing))
	req.NoError(repo.Insert(demo))

	found, err := repo.SearchLabels(ctx, "viewing", 10)
	req.NoError(err)
	req.Len(found, 1)
	req.Equal(viewing.ID, found[0].ID)

	// Cancelling removes the label from the index
	req.NoError(repo.Cancel(viewing.ID, "U1"))
	found, err = repo.SearchLabels(ctx, "viewing", 10)
	req.NoError(err)
	req.Empty(found)
}
