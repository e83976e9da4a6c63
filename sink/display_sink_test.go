package sink_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"booking-lab/domain"
	"booking-lab/errors"
	"booking-lab/sink"
)

func TestDisplaySink_Consume(t *testing.T) {
	req := require.New(t)
	// Silencing logs for clean test output
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("Buffered delivery reaches the transport side", func(t *testing.T) {
		s := sink.NewDisplaySink(logger, 2, 10*time.Millisecond)

		snap := domain.Snapshot{GeneratedAt: time.Now()}
		req.NoError(s.Consume(ctx, snap))

		received := <-s.Snapshots()
		req.Equal(snap.GeneratedAt, received.GeneratedAt)
	})

	t.Run("Slow client is reported after the grace period", func(t *testing.T) {
		s := sink.NewDisplaySink(logger, 1, 20*time.Millisecond)

		// Fill the buffer, nobody drains it
		req.NoError(s.Consume(ctx, domain.Snapshot{}))

		start := time.Now()
		err := s.Consume(ctx, domain.Snapshot{})
		req.ErrorIs(err, errors.ErrSlowDisplay)
		req.GreaterOrEqual(time.Since(start), 20*time.Millisecond)
	})

	t.Run("Grace period rescues a draining client", func(t *testing.T) {
		s := sink.NewDisplaySink(logger, 1, 200*time.Millisecond)

		req.NoError(s.Consume(ctx, domain.Snapshot{}))

		// The transport drains shortly after the buffer filled
		go func() {
			time.Sleep(20 * time.Millisecond)
			<-s.Snapshots()
		}()

		req.NoError(s.Consume(ctx, domain.Snapshot{}))
	})

	t.Run("Closed sink rejects producers", func(t *testing.T) {
		s := sink.NewDisplaySink(logger, 1, time.Second)
		s.Close()
		s.Close() // idempotent

		err := s.Consume(ctx, domain.Snapshot{})
		req.ErrorIs(err, errors.ErrSlowDisplay)
	})
}
