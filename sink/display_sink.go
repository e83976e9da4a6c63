// Package sink holds delivery endpoints for display clients. A sink
// decouples the broadcaster from transport speed: the broadcaster
// writes into the sink's buffer and moves on, the transport drains it
// at the pace of its connection.
package sink

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"booking-lab/domain"
	"booking-lab/errors"
)

type DisplaySink struct {
	log             *slog.Logger
	buffer          chan domain.Snapshot
	deliveryTimeout time.Duration
	closeOnce       sync.Once
	closed          chan struct{}
}

func NewDisplaySink(log *slog.Logger, bufferSize int, deliveryTimeout time.Duration) *DisplaySink {
	return &DisplaySink{
		log:             log,
		buffer:          make(chan domain.Snapshot, bufferSize),
		deliveryTimeout: deliveryTimeout,
		closed:          make(chan struct{}),
	}
}

// Consume hands a snapshot to this connection. The fast path is a
// non-blocking buffer write. A full buffer gets one grace period of
// deliveryTimeout; past that the client is declared too slow and the
// caller drops the connection. Losing intermediate snapshots is fine,
// each one is self-contained.
func (s *DisplaySink) Consume(ctx context.Context, snapshot domain.Snapshot) error {
	select {
	case <-s.closed:
		return errors.ErrSlowDisplay
	case s.buffer <- snapshot:
		return nil
	default:
	}

	timer := time.NewTimer(s.deliveryTimeout)
	defer timer.Stop()

	select {
	case s.buffer <- snapshot:
		return nil
	case <-s.closed:
		return errors.ErrSlowDisplay
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		s.log.Debug("Display buffer full past grace period")
		return errors.ErrSlowDisplay
	}
}

// Snapshots is the transport's read side.
func (s *DisplaySink) Snapshots() <-chan domain.Snapshot {
	return s.buffer
}

// Done is closed when the sink is dropped. Transports select on it to
// tear down connections the broadcaster declared too slow.
func (s *DisplaySink) Done() <-chan struct{} {
	return s.closed
}

// Close releases any blocked producer. Safe to call twice.
func (s *DisplaySink) Close() {
	s.closeOnce.Do(func() { close(s.closed) })
}
