// Package feed serves the raw display protocol: a TCP listener that
// pushes one JSON document per line for every room snapshot. It exists
// for dumb clients (kiosk screens, shell scripts piping through jq)
// that should not need a gRPC stack to render the schedule.
package feed

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"booking-lab/contract"
	"booking-lab/domain/event"
	"booking-lab/sink"
)

// Server is a supervised worker. Each accepted connection gets its own
// DisplaySink in the registry; the per-connection goroutine drains the
// sink and writes newline-delimited JSON until the peer goes away.
type Server struct {
	log                  *slog.Logger
	addr                 string
	registry             contract.IRegistry
	events               chan event.DomainEvent
	connectionBufferSize int
	deliveryTimeout      time.Duration
	writeTimeout         time.Duration

	mu        sync.Mutex
	boundAddr string // actual address once listening, for tests binding port 0
}

func NewServer(
	log *slog.Logger,
	addr string,
	registry contract.IRegistry,
	events chan event.DomainEvent,
	connectionBufferSize int,
	deliveryTimeout time.Duration,
	writeTimeout time.Duration,
) *Server {
	return &Server{
		log:                  log,
		addr:                 addr,
		registry:             registry,
		events:               events,
		connectionBufferSize: connectionBufferSize,
		deliveryTimeout:      deliveryTimeout,
		writeTimeout:         writeTimeout,
	}
}

func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.boundAddr = listener.Addr().String()
	s.mu.Unlock()
	s.log.Info("Display feed listening", "addr", listener.Addr().String())

	// Unblock Accept when the supervisor stops us.
	go func() {
		<-ctx.Done()
		_ = listener.Close()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				s.log.Debug("Context done, stopping display feed")
				return nil
			}
			return err
		}
		go s.serve(ctx, conn)
	}
}

func (s *Server) serve(ctx context.Context, conn net.Conn) {
	connID := uuid.NewString()
	displaySink := sink.NewDisplaySink(s.log, s.connectionBufferSize, s.deliveryTimeout)
	s.registry.Subscribe(connID, displaySink)
	defer func() {
		s.registry.Unsubscribe(connID)
		displaySink.Close()
		_ = conn.Close()
	}()

	s.log.Info("Display connected", "conn", connID, "remote", conn.RemoteAddr().String())

	// Ask for an immediate snapshot so the screen is never blank until
	// the next mutation or pulse.
	select {
	case s.events <- event.ScheduleTick{At: time.Now().UTC()}:
	default:
	}

	encoder := json.NewEncoder(conn)
	for {
		select {
		case <-ctx.Done():
			return
		case <-displaySink.Done():
			s.log.Info("Display dropped, too slow", "conn", connID)
			return
		case snapshot := <-displaySink.Snapshots():
			if err := conn.SetWriteDeadline(time.Now().Add(s.writeTimeout)); err != nil {
				s.log.Debug("Display write deadline failed", "conn", connID, "error", err)
				return
			}
			if err := encoder.Encode(snapshot); err != nil {
				s.log.Info("Display disconnected", "conn", connID, "error", err)
				return
			}
		}
	}
}
