package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"booking-lab/auth"
	"booking-lab/contract"
	"booking-lab/domain"
	"booking-lab/domain/event"
	"booking-lab/errors"
	pb "booking-lab/proto/booking"
	"booking-lab/services"
	"booking-lab/sink"
)

type BookingServer struct {
	pb.UnimplementedBookingServiceServer
	log                  *slog.Logger
	bookingService       services.IReservationService
	authService          services.IAuthService
	registry             contract.IRegistry
	events               chan event.DomainEvent
	connectionBufferSize int
	deliveryTimeout      time.Duration
}

func NewBookingServer(
	log *slog.Logger,
	bookingService services.IReservationService,
	authService services.IAuthService,
	registry contract.IRegistry,
	events chan event.DomainEvent,
	connectionBufferSize int,
	deliveryTimeout time.Duration,
) *BookingServer {
	return &BookingServer{
		log:                  log,
		bookingService:       bookingService,
		authService:          authService,
		registry:             registry,
		events:               events,
		connectionBufferSize: connectionBufferSize,
		deliveryTimeout:      deliveryTimeout,
	}
}

func (s *BookingServer) Token(_ context.Context, req *pb.TokenRequest) (*pb.TokenResponse, error) {
	token, err := s.authService.Token(req.OwnerId, req.Secret)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.TokenResponse{Token: string(token)}, nil
}

func (s *BookingServer) Book(ctx context.Context, req *pb.BookRequest) (*pb.BookResponse, error) {
	owner, ok := auth.OwnerFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "owner identity is missing")
	}

	res, err := s.bookingService.Book(ctx, domain.BookCommand{
		Start: req.Start.AsTime(),
		End:   req.End.AsTime(),
		Owner: owner,
		Label: req.Label,
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.BookResponse{Reservation: toReservationView(res)}, nil
}

func (s *BookingServer) Cancel(ctx context.Context, req *pb.CancelRequest) (*pb.CancelResponse, error) {
	owner, ok := auth.OwnerFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "owner identity is missing")
	}

	err := s.bookingService.Cancel(ctx, domain.CancelCommand{
		ID:    req.ReservationId,
		Owner: owner,
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.CancelResponse{Success: true}, nil
}

func (s *BookingServer) Extend(ctx context.Context, req *pb.ExtendRequest) (*pb.ExtendResponse, error) {
	owner, ok := auth.OwnerFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "owner identity is missing")
	}

	res, err := s.bookingService.Extend(ctx, domain.ExtendCommand{
		ID:        req.ReservationId,
		Owner:     owner,
		Extension: req.Extension.AsDuration(),
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ExtendResponse{Reservation: toReservationView(res)}, nil
}

func (s *BookingServer) ListUpcoming(ctx context.Context, _ *pb.ListUpcomingRequest) (*pb.ListUpcomingResponse, error) {
	state, err := s.bookingService.CurrentState(ctx, time.Now().UTC())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ListUpcomingResponse{Reservations: toReservationViews(state.Reservations)}, nil
}

func (s *BookingServer) OwnerBookings(ctx context.Context, _ *pb.OwnerBookingsRequest) (*pb.ListUpcomingResponse, error) {
	owner, ok := auth.OwnerFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "owner identity is missing")
	}

	reservations, err := s.bookingService.OwnerBookings(ctx, owner, time.Now().UTC())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ListUpcomingResponse{Reservations: toReservationViews(reservations)}, nil
}

func (s *BookingServer) WeekSchedule(ctx context.Context, req *pb.WeekScheduleRequest) (*pb.ListUpcomingResponse, error) {
	from := time.Now().UTC()
	if req.From != nil {
		from = req.From.AsTime()
	}

	reservations, err := s.bookingService.WeekSchedule(ctx, from)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ListUpcomingResponse{Reservations: toReservationViews(reservations)}, nil
}

func (s *BookingServer) Search(ctx context.Context, req *pb.SearchRequest) (*pb.ListUpcomingResponse, error) {
	reservations, err := s.bookingService.Search(ctx, req.Query)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ListUpcomingResponse{Reservations: toReservationViews(reservations)}, nil
}

// Watch establishes the long-lived display stream. It registers a
// dedicated sink in the registry and blocks until the client
// disconnects or falls too far behind. The tick pushed at connect time
// makes the broadcaster deliver a first snapshot without waiting for
// the next mutation.
func (s *BookingServer) Watch(_ *pb.WatchRequest, stream pb.BookingService_WatchServer) error {
	displaySink := sink.NewDisplaySink(s.log, s.connectionBufferSize, s.deliveryTimeout)
	connID := uuid.NewString()
	s.registry.Subscribe(connID, displaySink)
	defer func() {
		s.registry.Unsubscribe(connID)
		displaySink.Close()
	}()

	select {
	case s.events <- event.ScheduleTick{At: time.Now().UTC()}:
	default:
		// A pending event will resync this client anyway.
	}

	for {
		select {
		case <-stream.Context().Done():
			s.log.Info(fmt.Sprintf("Display %s disconnected", connID))
			return nil
		case <-displaySink.Done():
			// The broadcaster dropped this client for falling behind.
			// Ending the stream forces a reconnect and a fresh sync.
			s.log.Info(fmt.Sprintf("Display %s dropped, too slow", connID))
			return errors.MapToGRPCError(errors.ErrSlowDisplay)
		case snapshot := <-displaySink.Snapshots():
			if err := stream.Send(toRoomSnapshot(snapshot)); err != nil {
				s.log.Error("failed to push snapshot to stream",
					"conn", connID,
					"error", err)
				return err
			}
		}
	}
}

func toReservationViews(reservations []domain.Reservation) []*pb.ReservationView {
	return lo.Map(reservations, func(item domain.Reservation, _ int) *pb.ReservationView {
		return toReservationView(item)
	})
}

func toReservationView(res domain.Reservation) *pb.ReservationView {
	return &pb.ReservationView{
		Id:     res.ID.String(),
		Start:  timestamppb.New(res.Start),
		End:    timestamppb.New(res.End),
		Label:  res.Label,
		Status: string(res.Status),
	}
}

func toRoomSnapshot(snap domain.Snapshot) *pb.RoomSnapshot {
	out := &pb.RoomSnapshot{
		GeneratedAt: timestamppb.New(snap.GeneratedAt),
		Next:        lo.Map(snap.Next, func(e domain.Entry, _ int) *pb.ReservationView { return entryView(e) }),
		Upcoming:    lo.Map(snap.Upcoming, func(e domain.Entry, _ int) *pb.ReservationView { return entryView(e) }),
	}
	if snap.Current != nil {
		out.Current = entryView(*snap.Current)
	}
	return out
}

func entryView(e domain.Entry) *pb.ReservationView {
	return &pb.ReservationView{
		Id:    e.ID,
		Start: timestamppb.New(e.Start),
		End:   timestamppb.New(e.End),
		Label: e.Label,
	}
}
