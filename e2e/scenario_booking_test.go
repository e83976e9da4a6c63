package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "booking-lab/proto/booking"
)

type testBookingLifecycleSuite struct {
	BaseGrpcSuite
}

func TestBookingLifecycleSuite(t *testing.T) {
	suite.Run(t, &testBookingLifecycleSuite{})
}

func (s *testBookingLifecycleSuite) TestFullBookingFlow() {
	// Book far enough in the future that the suite can rerun against the
	// same server without tripping over its own earlier reservations.
	start := time.Now().Add(72 * time.Hour).Truncate(time.Hour)
	end := start.Add(time.Hour)
	label := "e2e movie night"

	var reservationID string

	// --- STEP 0: AUTHENTICATION ---
	s.Run("Step 0: Exchange credential for a bearer token", func() {
		s.WithBooking("Token handshake", func(ctx context.Context, client pb.BookingServiceClient) {
			// Wrong secret must yield a generic credential rejection
			_, err := client.Token(ctx, &pb.TokenRequest{
				OwnerId: s.Config.OwnerID,
				Secret:  "definitely-not-the-secret",
			})
			s.Require().Equal(codes.Unauthenticated, status.Code(err))

			// Protected RPCs without a token must be refused outright
			_, err = client.ListUpcoming(ctx, &pb.ListUpcomingRequest{})
			s.Require().Equal(codes.Unauthenticated, status.Code(err))
		})
	})

	// --- STEP 1: BOOKING ---
	s.Run("Step 1: Book the room and hit the conflict wall", func() {
		s.WithBooking("Book then double-book", func(ctx context.Context, client pb.BookingServiceClient) {
			ctx = s.Authenticate(ctx, client)

			resp, err := client.Book(ctx, &pb.BookRequest{
				Start: timestamppb.New(start),
				End:   timestamppb.New(end),
				Label: label,
			})
			s.Require().NoError(err, "Failed to book a free slot")
			s.Require().NotEmpty(resp.GetReservation().GetId())
			s.Require().Equal("ACTIVE", resp.GetReservation().GetStatus())
			reservationID = resp.GetReservation().GetId()

			// The same window again must be rejected, not queued
			_, err = client.Book(ctx, &pb.BookRequest{
				Start: timestamppb.New(start.Add(30 * time.Minute)),
				End:   timestamppb.New(end.Add(30 * time.Minute)),
				Label: "overlapping attempt",
			})
			s.Require().Equal(codes.AlreadyExists, status.Code(err))

			// Back-to-back is NOT a conflict: intervals are half-open
			adjacent, err := client.Book(ctx, &pb.BookRequest{
				Start: timestamppb.New(end),
				End:   timestamppb.New(end.Add(30 * time.Minute)),
				Label: "e2e adjacent slot",
			})
			s.Require().NoError(err, "Adjacent slot sharing a boundary must be bookable")

			// Clean it up immediately so later steps see a single booking
			_, err = client.Cancel(ctx, &pb.CancelRequest{
				ReservationId: adjacent.GetReservation().GetId(),
			})
			s.Require().NoError(err)
		})
	})

	// --- STEP 2: READ MODELS ---
	s.Run("Step 2: Reservation is visible in every read model", func() {
		s.WithBooking("List, owner list, week and search", func(ctx context.Context, client pb.BookingServiceClient) {
			ctx = s.Authenticate(ctx, client)

			upcoming, err := client.ListUpcoming(ctx, &pb.ListUpcomingRequest{})
			s.Require().NoError(err)
			s.Require().True(containsReservation(upcoming, reservationID))

			mine, err := client.OwnerBookings(ctx, &pb.OwnerBookingsRequest{})
			s.Require().NoError(err)
			s.Require().True(containsReservation(mine, reservationID))

			week, err := client.WeekSchedule(ctx, &pb.WeekScheduleRequest{
				From: timestamppb.New(start.Add(-time.Hour)),
			})
			s.Require().NoError(err)
			s.Require().True(containsReservation(week, reservationID))

			found, err := client.Search(ctx, &pb.SearchRequest{Query: "movie"})
			s.Require().NoError(err)
			s.Require().True(containsReservation(found, reservationID), "Label search missed the booking")
		})
	})

	// --- STEP 3: EXTENSION ---
	s.Run("Step 3: Extend the reservation", func() {
		s.WithBooking("Extend by thirty minutes", func(ctx context.Context, client pb.BookingServiceClient) {
			ctx = s.Authenticate(ctx, client)

			resp, err := client.Extend(ctx, &pb.ExtendRequest{
				ReservationId: reservationID,
				Extension:     durationpb.New(30 * time.Minute),
			})
			s.Require().NoError(err, "Failed to extend into a free tail")
			s.T().Logf("Extended until %s", resp.GetReservation().GetEnd().AsTime())
			s.Require().Equal(end.Add(30*time.Minute).UTC(), resp.GetReservation().GetEnd().AsTime())
		})
	})

	// --- STEP 4: DISPLAY STREAM ---
	s.Run("Step 4: Display stream pushes a snapshot on connect", func() {
		s.WithBooking("Watch handshake", func(ctx context.Context, client pb.BookingServiceClient) {
			streamCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			stream, err := client.Watch(streamCtx, &pb.WatchRequest{})
			s.Require().NoError(err)

			// Connect handshake must trigger an immediate push
			snapshot, err := stream.Recv()
			s.Require().NoError(err, "No snapshot received on connect")
			s.Require().NotNil(snapshot.GetGeneratedAt())

			ids := lo.Map(snapshot.GetUpcoming(), func(v *pb.ReservationView, _ int) string {
				return v.GetId()
			})
			s.Require().Contains(ids, reservationID)

			cancel()
			// Drain until the server notices the dropped context
			for {
				if _, err := stream.Recv(); err != nil {
					break
				}
			}
		})
	})

	// --- STEP 5: CANCELLATION ---
	s.Run("Step 5: Cancel frees the slot for the next booker", func() {
		s.WithBooking("Cancel and rebook", func(ctx context.Context, client pb.BookingServiceClient) {
			ctx = s.Authenticate(ctx, client)

			resp, err := client.Cancel(ctx, &pb.CancelRequest{ReservationId: reservationID})
			s.Require().NoError(err)
			s.Require().True(resp.GetSuccess())

			// Cancelling twice must fail loudly, the row stays as history
			_, err = client.Cancel(ctx, &pb.CancelRequest{ReservationId: reservationID})
			s.Require().Equal(codes.FailedPrecondition, status.Code(err))

			// The freed window must be immediately bookable again
			rebook, err := client.Book(ctx, &pb.BookRequest{
				Start: timestamppb.New(start),
				End:   timestamppb.New(end),
				Label: "e2e rebooked slot",
			})
			s.Require().NoError(err, "Cancelled slot still blocks new bookings")

			_, err = client.Cancel(ctx, &pb.CancelRequest{
				ReservationId: rebook.GetReservation().GetId(),
			})
			s.Require().NoError(err)
		})
	})
}

func containsReservation(resp *pb.ListUpcomingResponse, id string) bool {
	return lo.ContainsBy(resp.GetReservations(), func(v *pb.ReservationView) bool {
		return v.GetId() == id
	})
}
