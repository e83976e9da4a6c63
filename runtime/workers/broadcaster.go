package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"booking-lab/contract"
	"booking-lab/domain"
	"booking-lab/domain/event"
	"booking-lab/projection"
)

// Broadcaster is the single consumer of the engine's event channel.
// Every event, whatever its type, means "the schedule may have
// changed": the worker recomputes one snapshot from the store and
// pushes the same message to every connected display.
//
// Delivery is fire-and-forget. A sink that errors is dropped from the
// registry on the spot; the others never wait for it.
type Broadcaster struct {
	log      *slog.Logger
	events   chan event.DomainEvent
	state    contract.StateProvider
	registry contract.IRegistry
	schedule *projection.Schedule
	now      func() time.Time
}

func NewBroadcaster(
	log *slog.Logger,
	events chan event.DomainEvent,
	state contract.StateProvider,
	registry contract.IRegistry,
	schedule *projection.Schedule,
) *Broadcaster {
	return &Broadcaster{
		log:      log,
		events:   events,
		state:    state,
		registry: registry,
		schedule: schedule,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Test seam only.
func (w *Broadcaster) WithClock(now func() time.Time) *Broadcaster {
	w.now = now
	return w
}

func (w *Broadcaster) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping broadcaster")
			return nil
		case evt := <-w.events:
			w.log.Debug("Schedule changed, pushing", "event", fmt.Sprintf("%T", evt))
			if err := w.push(ctx); err != nil {
				// The store refused the read. The next event or pulse
				// retries; displays keep their last snapshot meanwhile.
				w.log.Warn("Skipping push, state unavailable", "error", err)
			}
		}
	}
}

// push recomputes the snapshot ONCE and fans it out. Computing per
// sink would let a slow display observe fresher state than a fast one.
func (w *Broadcaster) push(ctx context.Context) error {
	state, err := w.state.CurrentState(ctx, w.now())
	if err != nil {
		return err
	}
	snapshot := w.schedule.Snapshot(state)
	w.fanout(ctx, snapshot)
	return nil
}

func (w *Broadcaster) fanout(ctx context.Context, snapshot domain.Snapshot) {
	for connID, sink := range w.registry.Sinks() {
		if err := sink.Consume(ctx, snapshot); err != nil {
			w.log.Info("Dropping display client", "conn", connID, "error", err)
			w.registry.Unsubscribe(connID)
			// Wakes the transport goroutine so the stalled connection
			// is actually torn down and the client can reconnect.
			sink.Close()
		}
	}
}
