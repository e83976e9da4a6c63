package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	sdkgrpc "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"

	"booking-lab/auth"
	"booking-lab/domain/event"
	"booking-lab/feed"
	"booking-lab/infrastructure/grpc/server"
	"booking-lab/infrastructure/storage"
	"booking-lab/internal"
	"booking-lab/moderation"
	"booking-lab/projection"
	pb "booking-lab/proto/booking"
	pbstorage "booking-lab/proto/storage"
	"booking-lab/runtime"
	"booking-lab/runtime/workers"
	"booking-lab/services"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Booking server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// Returning instead of os.Exit keeps the defers (database cleanup) running on every path.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}

	facility, err := time.LoadLocation(config.FacilityTimezone)
	if err != nil {
		return exitConfig, fmt.Errorf("unknown facility timezone %q: %w", config.FacilityTimezone, err)
	}

	if config.JWTKey != nil {
		auth.SetSigningKey([]byte(*config.JWTKey))
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		// Defer ensures the database lock is released and buffers are flushed before the function returns.
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	if config.DebugPort != nil {
		endpoint := "/inspect"
		logger.Info("Debug ledger inspector available",
			"url", fmt.Sprintf("http://localhost:%d%s", *config.DebugPort, endpoint))
		internal.StartDebugServer(db, *config.DebugPort, endpoint, ReservationMapper, nil)
	}

	blugeCfg := bluge.DefaultConfig(config.BlugeFilepath)
	blugeWriter, err := bluge.OpenWriter(blugeCfg)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	// 3. Moderation (embedded word lists)
	censored, err := moderation.NewCensoredLoader().LoadAll("censored")
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to load censored words: %w", err)
	}
	logger.Info("Loaded censored dictionaries", "languages", censored.Languages, "words", len(censored.Words))
	moderator, err := moderation.NewModerator(censored.Words, charReplacement)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to build moderator: %w", err)
	}

	// 4. Engine wiring
	events := make(chan event.DomainEvent, config.BufferSize)
	repository := storage.NewReservationRepository(db, blugeWriter, logger)
	bookingService := services.NewReservationService(logger, repository, moderator, events, config.StoreTimeout)
	authService := services.NewAuthService(config.SecretHash, config.AuthTokenDuration)

	registry := runtime.NewRegistry()
	schedule := projection.NewSchedule(facility)

	feedServer := feed.NewServer(logger, config.FeedAddr, registry, events,
		config.ConnectionBufferSize, config.SinkTimeout, config.FeedWriteTimeout)

	sup := workers.NewSupervisor(logger)
	sup.Add(
		workers.NewBroadcaster(logger, events, bookingService, registry, schedule),
		workers.NewPulse(logger, events, config.PulseInterval),
		workers.NewHealthMonitoringWorker(logger, config.MetricInterval),
		workers.NewChannelCapacityWorker(logger,
			[]workers.NamedChannel{{Name: "events", Channel: events}}, config.MetricInterval),
		feedServer,
	)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	supDone := make(chan struct{})
	go func() {
		logger.Info("Starting supervisor...")
		sup.Run(ctx)
		close(supDone)
	}()

	// 6. gRPC Server Setup
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			sdkgrpc.UnaryLoggingInterceptor(logger),
			auth.AuthInterceptor,
		))
	bookingServer := server.NewBookingServer(logger, bookingService, authService,
		registry, events, config.ConnectionBufferSize, config.SinkTimeout)
	pb.RegisterBookingServiceServer(s, bookingServer)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && !stderrors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 8. Final Cleanup (Graceful Shutdown)
	// Active Watch streams finish, then workers drain.
	logger.Info("Shutting down gracefully...")
	s.GracefulStop()
	sup.Stop()
	<-supDone
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}

// ReservationMapper decodes a stored reservation row for the inspector.
func ReservationMapper(key string, val []byte) internal.InspectRow {
	row := internal.DefaultMapper(key, val)

	var p pbstorage.Reservation
	if err := proto.Unmarshal(val, &p); err != nil {
		row.Label = "Error: unmarshal failed"
		return row
	}

	row.Start = time.Unix(0, p.Start).UTC().Format("Jan 02 15:04")
	row.End = time.Unix(0, p.End).UTC().Format("Jan 02 15:04")
	row.Owner = p.Owner
	row.Label = p.Label
	row.Status = p.Status

	return row
}
