package workers

import (
	"context"
	"log/slog"
	"time"

	"booking-lab/domain/event"
)

// Pulse emits a ScheduleTick at a fixed interval. Reservations expire
// by clock, not by any mutation, so without the pulse a display would
// keep showing a finished booking as ongoing until someone happened to
// book or cancel. The tick rides the normal event channel and costs
// one snapshot recompute.
type Pulse struct {
	log      *slog.Logger
	events   chan event.DomainEvent
	interval time.Duration
}

func NewPulse(log *slog.Logger, events chan event.DomainEvent, interval time.Duration) *Pulse {
	return &Pulse{log: log, events: events, interval: interval}
}

func (w *Pulse) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping pulse")
			return nil
		case at := <-ticker.C:
			select {
			case w.events <- event.ScheduleTick{At: at.UTC()}:
			default:
				// A full channel already guarantees a pending re-push.
				w.log.Debug("Event channel full, skipping tick")
			}
		}
	}
}
