package feed

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"booking-lab/domain"
	"booking-lab/domain/event"
	"booking-lab/runtime"
)

func TestFeedServer_PushesJSONLines(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	registry := runtime.NewRegistry()
	events := make(chan event.DomainEvent, 4)
	server := NewServer(log, "127.0.0.1:0", registry, events, 4, 100*time.Millisecond, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The listener binds to a random port; discover it via the registry
	// by polling for the first subscription after dialing.
	done := make(chan struct{})
	go func() {
		_ = server.Run(ctx)
		close(done)
	}()

	addr := waitForListener(t, server)
	conn, err := net.Dial("tcp", addr)
	req.NoError(err)
	defer conn.Close()

	// When the connection registers, the server requests a resync tick
	select {
	case evt := <-events:
		_, ok := evt.(event.ScheduleTick)
		req.True(ok)
	case <-time.After(time.Second):
		req.Fail("No resync tick requested on connect")
	}

	// When a snapshot is fanned out to the registered sink
	waitForSubscription(t, registry)
	snapshot := domain.Snapshot{
		GeneratedAt: time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC),
		Upcoming: []domain.Entry{{
			ID:    "res-1",
			Start: time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC),
			End:   time.Date(2025, time.March, 10, 11, 0, 0, 0, time.UTC),
			Label: "Demo",
		}},
	}
	for _, s := range registry.Sinks() {
		req.NoError(s.Consume(ctx, snapshot))
	}

	// Then the client reads it back as one JSON line
	req.NoError(conn.SetReadDeadline(time.Now().Add(time.Second)))
	line, err := bufio.NewReader(conn).ReadBytes('\n')
	req.NoError(err)

	var decoded domain.Snapshot
	req.NoError(json.Unmarshal(line, &decoded))
	req.Nil(decoded.Current)
	req.Len(decoded.Upcoming, 1)
	req.Equal("Demo", decoded.Upcoming[0].Label)

	// And the worker stops cleanly
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Feed server did not stop on context cancel")
	}
}

func TestFeedServer_DisconnectCleansRegistry(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	registry := runtime.NewRegistry()
	events := make(chan event.DomainEvent, 4)
	server := NewServer(log, "127.0.0.1:0", registry, events, 4, 100*time.Millisecond, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = server.Run(ctx) }()

	addr := waitForListener(t, server)
	conn, err := net.Dial("tcp", addr)
	req.NoError(err)
	waitForSubscription(t, registry)

	// When the client hangs up and the next push fails
	req.NoError(conn.Close())
	req.Eventually(func() bool {
		for _, s := range registry.Sinks() {
			_ = s.Consume(ctx, domain.Snapshot{GeneratedAt: time.Now()})
		}
		return len(registry.Sinks()) == 0
	}, 2*time.Second, 20*time.Millisecond, "Disconnected display still registered")
}

func TestFeedServer_DroppedSinkClosesConnection(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	registry := runtime.NewRegistry()
	events := make(chan event.DomainEvent, 4)
	server := NewServer(log, "127.0.0.1:0", registry, events, 4, 100*time.Millisecond, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = server.Run(ctx) }()

	addr := waitForListener(t, server)
	conn, err := net.Dial("tcp", addr)
	req.NoError(err)
	defer conn.Close()
	waitForSubscription(t, registry)

	// When the broadcaster drops this display for falling behind
	for connID, s := range registry.Sinks() {
		registry.Unsubscribe(connID)
		s.Close()
	}

	// Then the server hangs up, so the client reconnects and resyncs
	req.NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	_, err = bufio.NewReader(conn).ReadBytes('\n')
	req.ErrorIs(err, io.EOF)
}

func waitForListener(t *testing.T, server *Server) string {
	t.Helper()
	req := require.New(t)
	var addr string
	req.Eventually(func() bool {
		server.mu.Lock()
		defer server.mu.Unlock()
		if server.boundAddr != "" {
			addr = server.boundAddr
			return true
		}
		return false
	}, 2*time.Second, 10*time.Millisecond, "Listener never bound")
	return addr
}

func waitForSubscription(t *testing.T, registry *runtime.Registry) {
	t.Helper()
	require.Eventually(t, func() bool {
		return len(registry.Sinks()) == 1
	}, 2*time.Second, 10*time.Millisecond, "Display never subscribed")
}
