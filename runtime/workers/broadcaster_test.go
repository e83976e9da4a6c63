package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"booking-lab/contract"
	"booking-lab/domain"
	"booking-lab/domain/event"
	"booking-lab/mocks"
	"booking-lab/projection"
)

var broadcastNow = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

func TestBroadcaster_PushesOneSnapshotToEverySink(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockState := mocks.NewMockStateProvider(ctrl)
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	sink1 := mocks.NewMockDisplaySink(ctrl)
	sink2 := mocks.NewMockDisplaySink(ctrl)

	res := domain.Reservation{
		ID:     uuid.New(),
		Start:  broadcastNow.Add(time.Hour),
		End:    broadcastNow.Add(2 * time.Hour),
		Owner:  "U123",
		Label:  "Demo",
		Status: domain.StatusActive,
	}

	mockState.EXPECT().CurrentState(gomock.Any(), broadcastNow).
		Return(domain.RoomState{AsOf: broadcastNow, Reservations: []domain.Reservation{res}}, nil).
		Times(1)
	mockRegistry.EXPECT().Sinks().
		Return(map[string]contract.DisplaySink{"conn-1": sink1, "conn-2": sink2}).
		Times(1)

	received := make(chan domain.Snapshot, 2)
	consume := func(ctx context.Context, snapshot domain.Snapshot) error {
		received <- snapshot
		return nil
	}
	sink1.EXPECT().Consume(gomock.Any(), gomock.Any()).DoAndReturn(consume).Times(1)
	sink2.EXPECT().Consume(gomock.Any(), gomock.Any()).DoAndReturn(consume).Times(1)

	events := make(chan event.DomainEvent, 1)
	worker := NewBroadcaster(log, events, mockState, mockRegistry, projection.NewSchedule(time.UTC)).
		WithClock(func() time.Time { return broadcastNow })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = worker.Run(ctx)
		close(done)
	}()

	// When a booking event arrives
	events <- event.ReservationBooked{Reservation: res, At: broadcastNow}

	// Then both sinks receive the same snapshot
	first := <-received
	second := <-received
	req.Equal(first, second)
	req.Len(first.Upcoming, 1)
	req.Equal("Demo", first.Upcoming[0].Label)
	req.Equal(res.ID.String(), first.Next[0].ID)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Broadcaster did not stop on context cancel")
	}
}

func TestBroadcaster_DropsFailingSink(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockState := mocks.NewMockStateProvider(ctrl)
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	broken := mocks.NewMockDisplaySink(ctrl)

	mockState.EXPECT().CurrentState(gomock.Any(), gomock.Any()).
		Return(domain.RoomState{AsOf: broadcastNow}, nil).
		Times(1)
	mockRegistry.EXPECT().Sinks().
		Return(map[string]contract.DisplaySink{"conn-broken": broken}).
		Times(1)
	broken.EXPECT().Consume(gomock.Any(), gomock.Any()).
		Return(context.DeadlineExceeded).
		Times(1)

	// A failing sink must be unsubscribed AND closed, so the transport
	// goroutine behind it unblocks and drops the connection
	dropped := make(chan string, 1)
	mockRegistry.EXPECT().Unsubscribe("conn-broken").
		Do(func(connID string) { dropped <- connID }).
		Times(1)
	closed := make(chan struct{})
	broken.EXPECT().Close().
		Do(func() { close(closed) }).
		Times(1)

	events := make(chan event.DomainEvent, 1)
	worker := NewBroadcaster(log, events, mockState, mockRegistry, projection.NewSchedule(time.UTC)).
		WithClock(func() time.Time { return broadcastNow })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	events <- event.ScheduleTick{At: broadcastNow}

	select {
	case connID := <-dropped:
		req.Equal("conn-broken", connID)
	case <-time.After(time.Second):
		req.Fail("Broken sink was not dropped at time")
	}
	select {
	case <-closed:
	case <-time.After(time.Second):
		req.Fail("Broken sink was never closed")
	}
}

func TestBroadcaster_StateUnavailableKeepsRunning(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockState := mocks.NewMockStateProvider(ctrl)
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	sink := mocks.NewMockDisplaySink(ctrl)

	// First read fails, second succeeds
	gomock.InOrder(
		mockState.EXPECT().CurrentState(gomock.Any(), gomock.Any()).
			Return(domain.RoomState{}, context.DeadlineExceeded),
		mockState.EXPECT().CurrentState(gomock.Any(), gomock.Any()).
			Return(domain.RoomState{AsOf: broadcastNow}, nil),
	)
	mockRegistry.EXPECT().Sinks().
		Return(map[string]contract.DisplaySink{"conn-1": sink}).
		Times(1)

	delivered := make(chan struct{})
	sink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, snapshot domain.Snapshot) error {
			close(delivered)
			return nil
		}).
		Times(1)

	events := make(chan event.DomainEvent, 2)
	worker := NewBroadcaster(log, events, mockState, mockRegistry, projection.NewSchedule(time.UTC)).
		WithClock(func() time.Time { return broadcastNow })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	// When the store hiccups on the first event
	events <- event.ScheduleTick{At: broadcastNow}
	// Then the next event still reaches the display
	events <- event.ScheduleTick{At: broadcastNow}

	select {
	case <-delivered:
	case <-time.After(time.Second):
		req.Fail("Broadcaster did not recover from a failed state read")
	}
}
