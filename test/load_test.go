package test

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"booking-lab/domain"
	"booking-lab/domain/event"
	"booking-lab/errors"
	"booking-lab/mocks"
	"booking-lab/moderation"
	"booking-lab/services"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Hammers the booking path with many clients fighting over a limited set
// of slots. Whatever the interleaving, every slot must end up with exactly
// one winner and the ledger must never hold two overlapping ACTIVE rows.
func TestReservationService_LoadTest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req := require.New(t)

	// 1. Setup minimaliste (on mock le repo pour ne pas être bridé par le disque/Badger)
	ctrl := gomock.NewController(t)
	mockRepository := mocks.NewMockIReservationRepository(ctrl)

	var ledger []domain.Reservation
	mockRepository.EXPECT().
		ListOverlapping(gomock.Any(), gomock.Any()).
		DoAndReturn(func(start, end time.Time) ([]domain.Reservation, error) {
			var hits []domain.Reservation
			for _, res := range ledger {
				if res.Start.Before(end) && start.Before(res.End) {
					hits = append(hits, res)
				}
			}
			return hits, nil
		}).
		AnyTimes()
	mockRepository.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(res domain.Reservation) error {
			time.Sleep(time.Millisecond) // Simulate the disk write
			ledger = append(ledger, res)
			return nil
		}).
		AnyTimes()

	log := slog.New(slog.DiscardHandler) // On désactive les logs pour la perf
	events := make(chan event.DomainEvent, 5000)
	moderator, err := moderation.NewModerator([]string{"snake"}, '*')
	req.NoError(err)
	service := services.NewReservationService(log, mockRepository, moderator, events, 5*time.Second)

	// 2. Variables de mesure
	var successCount atomic.Uint64
	var conflictCount atomic.Uint64

	numClients := 20
	attemptsPerClient := 25
	numSlots := 50
	base := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Hour)

	start := time.Now()
	var wg sync.WaitGroup
	for client := 0; client < numClients; client++ {
		wg.Add(1)
		go func(client int) {
			defer wg.Done()
			for attempt := 0; attempt < attemptsPerClient; attempt++ {
				slot := (client*attemptsPerClient + attempt) % numSlots
				slotStart := base.Add(time.Duration(slot) * time.Hour)
				_, err := service.Book(ctx, domain.BookCommand{
					Start: slotStart,
					End:   slotStart.Add(time.Hour),
					Owner: fmt.Sprintf("U%06d", client),
					Label: fmt.Sprintf("load run %d", attempt),
				})
				switch {
				case err == nil:
					successCount.Add(1)
				default:
					_, isConflict := errors.AsConflict(err)
					req.True(isConflict, "Unexpected failure kind: %v", err)
					conflictCount.Add(1)
				}
			}
		}(client)
	}
	wg.Wait()
	elapsed := time.Since(start)

	total := numClients * attemptsPerClient
	t.Logf("Processed %d attempts in %v (%.0f req/s), %d booked, %d rejected",
		total, elapsed, float64(total)/elapsed.Seconds(),
		successCount.Load(), conflictCount.Load())

	// Every slot has exactly one winner, every other attempt was rejected
	req.Equal(uint64(numSlots), successCount.Load())
	req.Equal(uint64(total-numSlots), conflictCount.Load())
	req.Len(ledger, numSlots)

	// No two ACTIVE rows may overlap, whatever the interleaving was
	for i := 0; i < len(ledger); i++ {
		for j := i + 1; j < len(ledger); j++ {
			a, b := ledger[i], ledger[j]
			req.False(a.Start.Before(b.End) && b.Start.Before(a.End),
				"Ledger holds overlapping reservations %s and %s", a.ID, b.ID)
		}
	}
}
