//go:generate go run go.uber.org/mock/mockgen -source=reservation_service.go -destination=../mocks/mock_reservation_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"booking-lab/domain"
	"booking-lab/domain/event"
	"booking-lab/errors"
	"booking-lab/infrastructure/storage"
	"booking-lab/moderation"
)

type IReservationService interface {
	Book(ctx context.Context, cmd domain.BookCommand) (domain.Reservation, error)
	Cancel(ctx context.Context, cmd domain.CancelCommand) error
	Extend(ctx context.Context, cmd domain.ExtendCommand) (domain.Reservation, error)
	CurrentState(ctx context.Context, asOf time.Time) (domain.RoomState, error)
	OwnerBookings(ctx context.Context, owner string, asOf time.Time) ([]domain.Reservation, error)
	WeekSchedule(ctx context.Context, from time.Time) ([]domain.Reservation, error)
	Search(ctx context.Context, query string) ([]domain.Reservation, error)
}

var validate = validator.New()

// ReservationService is the engine: it validates booking intents,
// serializes every check-then-write pair behind one mutex, persists
// through the repository, and emits exactly one change event per
// committed mutation.
//
// The mutex is the system's single critical section. Badger
// transactions alone are not enough: the overlap check reads a range,
// so two concurrent bookings of the same free slot could both pass
// their check before either writes. Reads run outside the mutex.
type ReservationService struct {
	mu           sync.Mutex
	log          *slog.Logger
	repository   storage.IReservationRepository
	moderator    *moderation.Moderator
	events       chan event.DomainEvent
	storeTimeout time.Duration
	now          func() time.Time
}

func NewReservationService(
	log *slog.Logger,
	repository storage.IReservationRepository,
	moderator *moderation.Moderator,
	events chan event.DomainEvent,
	storeTimeout time.Duration,
) *ReservationService {
	return &ReservationService{
		log:          log,
		repository:   repository,
		moderator:    moderator,
		events:       events,
		storeTimeout: storeTimeout,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Test seam only.
func (s *ReservationService) WithClock(now func() time.Time) *ReservationService {
	s.now = now
	return s
}

// Book validates the candidate range, checks it against every ACTIVE
// reservation, and inserts on success. A conflict returns the
// colliding rows so the adapter can report why the slot is taken.
func (s *ReservationService) Book(ctx context.Context, cmd domain.BookCommand) (domain.Reservation, error) {
	if err := validate.Struct(cmd); err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: %v", errors.ErrMalformedRange, err)
	}

	candidate := cmd.Range()
	if candidate.Malformed() {
		return domain.Reservation{}, errors.ErrMalformedRange
	}
	if candidate.Past(s.now()) {
		return domain.Reservation{}, errors.ErrPastRange
	}

	res := domain.Reservation{
		ID:     uuid.New(),
		Start:  cmd.Start.UTC(),
		End:    cmd.End.UTC(),
		Owner:  cmd.Owner,
		Label:  s.censor(cmd.Label),
		Status: domain.StatusActive,
	}

	err := s.mutateStore(ctx, func() error {
		existing, err := s.repository.ListOverlapping(res.Start, res.End)
		if err != nil {
			return err
		}
		if conflicts := domain.Conflicts(candidate, existing); len(conflicts) > 0 {
			return &errors.ConflictError{Conflicts: conflicts}
		}
		return s.repository.Insert(res)
	}, func() event.DomainEvent {
		return event.ReservationBooked{Reservation: res, At: s.now()}
	})
	if err != nil {
		return domain.Reservation{}, err
	}
	return res, nil
}

// Cancel delegates the owner check to the store and emits on success.
func (s *ReservationService) Cancel(ctx context.Context, cmd domain.CancelCommand) error {
	if err := validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidCommand, err)
	}
	id, err := uuid.Parse(cmd.ID)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidCommand, err)
	}

	return s.mutateStore(ctx, func() error {
		return s.repository.Cancel(id, cmd.Owner)
	}, func() event.DomainEvent {
		return event.ReservationCancelled{ID: id, Owner: cmd.Owner, At: s.now()}
	})
}

// Extend pushes a reservation's end forward. The new range is
// conflict-checked against every other ACTIVE reservation under the
// same mutex as Book; a failed extend leaves the stored end untouched.
func (s *ReservationService) Extend(ctx context.Context, cmd domain.ExtendCommand) (domain.Reservation, error) {
	if err := validate.Struct(cmd); err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: %v", errors.ErrInvalidCommand, err)
	}
	id, err := uuid.Parse(cmd.ID)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: %v", errors.ErrInvalidCommand, err)
	}
	if cmd.Extension <= 0 {
		return domain.Reservation{}, errors.ErrMalformedRange
	}

	var updated domain.Reservation
	var previousEnd time.Time

	err = s.mutateStore(ctx, func() error {
		current, err := s.repository.Get(id)
		if err != nil {
			return err
		}
		if current.Owner != cmd.Owner {
			return errors.ErrNotOwner
		}
		if current.Status == domain.StatusCancelled {
			return errors.ErrAlreadyCancelled
		}

		previousEnd = current.End
		newEnd := current.End.Add(cmd.Extension)
		grown := domain.Range{Start: current.End, End: newEnd}

		existing, err := s.repository.ListOverlapping(grown.Start, grown.End)
		if err != nil {
			return err
		}
		others := make([]domain.Reservation, 0, len(existing))
		for _, res := range existing {
			if res.ID != id {
				others = append(others, res)
			}
		}
		if conflicts := domain.Conflicts(grown, others); len(conflicts) > 0 {
			return &errors.ConflictError{Conflicts: conflicts}
		}

		updated, err = s.repository.UpdateEnd(id, cmd.Owner, newEnd)
		return err
	}, func() event.DomainEvent {
		return event.ReservationExtended{Reservation: updated, PreviousEnd: previousEnd, At: s.now()}
	})
	if err != nil {
		return domain.Reservation{}, err
	}
	return updated, nil
}

// CurrentState is the derived live view: ACTIVE reservations still
// relevant at asOf, ordered by start. Never includes cancelled rows.
func (s *ReservationService) CurrentState(ctx context.Context, asOf time.Time) (domain.RoomState, error) {
	var state domain.RoomState
	err := s.callStore(ctx, func() error {
		upcoming, err := s.repository.Upcoming(asOf)
		if err != nil {
			return err
		}
		state = domain.RoomState{AsOf: asOf, Reservations: upcoming}
		return nil
	})
	return state, err
}

func (s *ReservationService) OwnerBookings(ctx context.Context, owner string, asOf time.Time) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := s.callStore(ctx, func() error {
		res, err := s.repository.OwnerUpcoming(owner, asOf)
		out = res
		return err
	})
	return out, err
}

// WeekSchedule lists reservations starting within seven days of from.
func (s *ReservationService) WeekSchedule(ctx context.Context, from time.Time) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := s.callStore(ctx, func() error {
		res, err := s.repository.Window(from, from.Add(7*24*time.Hour))
		out = res
		return err
	})
	return out, err
}

func (s *ReservationService) Search(ctx context.Context, query string) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := s.callStore(ctx, func() error {
		res, err := s.repository.SearchLabels(ctx, query, 20)
		out = res
		return err
	})
	return out, err
}

// censor runs the label through moderation before it is persisted:
// the hallway display is public, so raw input never reaches the store.
func (s *ReservationService) censor(label string) string {
	if s.moderator == nil || label == "" {
		return label
	}
	censored, hits := s.moderator.Censor(label)
	if len(hits) > 0 {
		s.log.Info("Censored reservation label", "hits", len(hits), "lang", moderation.Language(label))
	}
	return censored
}

// callStore bounds a repository read. On deadline the call surfaces
// as a retryable ErrStoreUnavailable; the adapter may retry with
// backoff. Only reads may be abandoned this way: the goroutine
// finishing against the store on its own has no side effects.
func (s *ReservationService) callStore(ctx context.Context, op func() error) error {
	done := make(chan error, 1)
	go func() { done <- op() }()

	timer := time.NewTimer(s.storeTimeout)
	defer timer.Stop()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, ctx.Err())
	case <-timer.C:
		return errors.ErrStoreUnavailable
	}
}

// mutateStore runs a check-then-write pair under the engine mutex and
// emits the change event once the write commits. A slow mutation is
// never abandoned mid-flight: the lock is released only when op
// returns, so the next overlap check cannot run before a still-pending
// write lands. The caller still gets a bounded ErrStoreUnavailable on
// deadline; if the write commits after that, the event is emitted from
// here so displays converge on what the ledger really holds.
func (s *ReservationService) mutateStore(ctx context.Context, op func() error, evt func() event.DomainEvent) error {
	s.mu.Lock()
	done := make(chan error, 1)
	go func() {
		err := op()
		s.mu.Unlock()
		done <- err
	}()

	timer := time.NewTimer(s.storeTimeout)
	defer timer.Stop()

	var cause error
	select {
	case err := <-done:
		if err == nil {
			s.emit(evt())
		}
		return err
	case <-ctx.Done():
		cause = ctx.Err()
	case <-timer.C:
	}

	go func() {
		if err := <-done; err == nil {
			s.log.Warn("Store mutation committed after caller gave up")
			s.emit(evt())
		}
	}()
	if cause != nil {
		return fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, cause)
	}
	return errors.ErrStoreUnavailable
}

// emit publishes a change event after the store write committed.
// Emission never fails the mutation: a full channel drops the event
// with a warning and the periodic pulse resynchronizes displays.
func (s *ReservationService) emit(e event.DomainEvent) {
	select {
	case s.events <- e:
	default:
		s.log.Warn(fmt.Sprintf("Event channel full, dropping %T", e))
	}
}
