package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"booking-lab/domain/event"
)

func TestPulse_EmitsTicks(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	events := make(chan event.DomainEvent, 4)
	worker := NewPulse(log, events, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	// Then ticks arrive as schedule events
	select {
	case evt := <-events:
		_, ok := evt.(event.ScheduleTick)
		req.True(ok)
		req.False(evt.OccurredAt().IsZero())
	case <-time.After(time.Second):
		req.Fail("No tick emitted at time")
	}
}

func TestPulse_FullChannelDoesNotBlock(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given a channel nobody drains
	events := make(chan event.DomainEvent, 1)
	events <- event.ScheduleTick{At: time.Now()}

	worker := NewPulse(log, events, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		_ = worker.Run(ctx)
		close(done)
	}()

	// Then the worker still stops cleanly instead of blocking on send
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Pulse blocked on a full channel")
	}
}
