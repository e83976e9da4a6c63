//go:generate go run go.uber.org/mock/mockgen -source=reservation_repository.go -destination=../../mocks/mock_reservation_repository.go -package=mocks
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"

	pb "booking-lab/proto/storage"

	"booking-lab/domain"
	"booking-lab/errors"
)

type IReservationRepository interface {
	Insert(res domain.Reservation) error
	Get(id uuid.UUID) (domain.Reservation, error)
	ListOverlapping(start, end time.Time) ([]domain.Reservation, error)
	Cancel(id uuid.UUID, owner string) error
	UpdateEnd(id uuid.UUID, owner string, newEnd time.Time) (domain.Reservation, error)
	Upcoming(asOf time.Time) ([]domain.Reservation, error)
	OwnerUpcoming(owner string, asOf time.Time) ([]domain.Reservation, error)
	Window(from, to time.Time) ([]domain.Reservation, error)
	SearchLabels(ctx context.Context, query string, limit int) ([]domain.Reservation, error)
}

// ReservationRepository persists the ledger in BadgerDB and mirrors
// labels into a Bluge index for free-text lookup.
//
// The primary key is "resv:{start_unixnano_padded}:{uuid}":
//  1. The 19-digit zero padding keeps keys in chronological start
//     order under lexicographic iteration, so range views are plain
//     prefix scans with no sorting step.
//  2. The UUID suffix disambiguates two rows starting on the same
//     nanosecond (only one can be ACTIVE, but cancelled history keeps
//     its key forever).
//
// A secondary key "idx:resv:{uuid}" maps the immutable id to the
// primary key for cancel/extend lookups.
type ReservationRepository struct {
	db     *badger.DB
	labels *bluge.Writer
	log    *slog.Logger
}

func NewReservationRepository(db *badger.DB, labels *bluge.Writer, log *slog.Logger) ReservationRepository {
	return ReservationRepository{db: db, labels: labels, log: log}
}

const (
	primaryPrefix = "resv:"
	idPrefix      = "idx:resv:"
)

func primaryKey(start time.Time, id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("%s%019d:%s", primaryPrefix, start.UnixNano(), id))
}

func idKey(id uuid.UUID) []byte {
	return []byte(idPrefix + id.String())
}

// Insert writes a new row. Uniqueness is enforced on the id index
// inside a single Update transaction, so two inserts of the same id
// cannot both commit.
func (r ReservationRepository) Insert(res domain.Reservation) error {
	bytes, err := proto.Marshal(lo.ToPtr(fromReservation(res)))
	if err != nil {
		return err
	}

	key := primaryKey(res.Start, res.ID)
	err = r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(idKey(res.ID)); err == nil {
			return errors.ErrDuplicateID
		} else if err != badger.ErrKeyNotFound {
			return err
		}
		if err := txn.Set(key, bytes); err != nil {
			return err
		}
		return txn.Set(idKey(res.ID), key)
	})
	if err != nil {
		return err
	}

	r.indexLabel(res)
	return nil
}

// indexLabel mirrors the label into Bluge. Index failures are logged
// but never fail the booking: the ledger stays the source of truth.
func (r ReservationRepository) indexLabel(res domain.Reservation) {
	if r.labels == nil || res.Label == "" {
		return
	}
	doc := bluge.NewDocument(res.ID.String()).
		AddField(bluge.NewTextField("label", res.Label).StoreValue()).
		AddField(bluge.NewKeywordField("owner", res.Owner))
	if err := r.labels.Update(doc.ID(), doc); err != nil {
		r.log.Warn("Label index write failed", "id", res.ID, "error", err)
	}
}

func (r ReservationRepository) Get(id uuid.UUID) (domain.Reservation, error) {
	var res domain.Reservation
	err := r.db.View(func(txn *badger.Txn) error {
		found, err := r.getByID(txn, id)
		if err != nil {
			return err
		}
		res = found
		return nil
	})
	return res, err
}

// getByID resolves the id index then loads the primary row.
func (r ReservationRepository) getByID(txn *badger.Txn, id uuid.UUID) (domain.Reservation, error) {
	item, err := txn.Get(idKey(id))
	if err == badger.ErrKeyNotFound {
		return domain.Reservation{}, errors.ErrNotFound
	}
	if err != nil {
		return domain.Reservation{}, err
	}
	key, err := item.ValueCopy(nil)
	if err != nil {
		return domain.Reservation{}, err
	}
	primary, err := txn.Get(key)
	if err != nil {
		return domain.Reservation{}, err
	}
	var res domain.Reservation
	err = primary.Value(func(value []byte) error {
		decoded, err := decode(value)
		if err != nil {
			return err
		}
		res = decoded
		return nil
	})
	return res, err
}

// ListOverlapping returns ACTIVE rows intersecting [start, end).
// Keys are start-ordered, so the scan stops at the first row starting
// at or after the candidate's end; everything earlier is checked
// against its own end. A linear scan is fine at single-room scale and
// the interface hides the access path from callers.
func (r ReservationRepository) ListOverlapping(start, end time.Time) ([]domain.Reservation, error) {
	candidate := domain.Range{Start: start, End: end}
	return r.scan(func(res domain.Reservation) (keep, stop bool) {
		if !res.Start.Before(end) {
			return false, true
		}
		return res.Status == domain.StatusActive && candidate.Overlaps(res.Range()), false
	})
}

// Upcoming returns ACTIVE rows still relevant at asOf, ordered by start.
func (r ReservationRepository) Upcoming(asOf time.Time) ([]domain.Reservation, error) {
	return r.scan(func(res domain.Reservation) (keep, stop bool) {
		return res.Status == domain.StatusActive && res.End.After(asOf), false
	})
}

func (r ReservationRepository) OwnerUpcoming(owner string, asOf time.Time) ([]domain.Reservation, error) {
	return r.scan(func(res domain.Reservation) (keep, stop bool) {
		return res.Status == domain.StatusActive && res.Owner == owner && res.End.After(asOf), false
	})
}

// Window returns ACTIVE rows starting inside [from, to), for the
// week-schedule view.
func (r ReservationRepository) Window(from, to time.Time) ([]domain.Reservation, error) {
	return r.scan(func(res domain.Reservation) (keep, stop bool) {
		if !res.Start.Before(to) {
			return false, true
		}
		return res.Status == domain.StatusActive && !res.Start.Before(from), false
	})
}

// scan iterates primary keys in start order, decoding each row and
// applying the filter until it requests a stop.
func (r ReservationRepository) scan(filter func(domain.Reservation) (keep, stop bool)) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(primaryPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var res domain.Reservation
			err := it.Item().Value(func(value []byte) error {
				decoded, err := decode(value)
				if err != nil {
					return err
				}
				res = decoded
				return nil
			})
			if err != nil {
				return err
			}
			keep, stop := filter(res)
			if keep {
				out = append(out, res)
			}
			if stop {
				return nil
			}
		}
		return nil
	})
	return out, err
}

// Cancel flips the row to CANCELLED. Fails closed on an owner
// mismatch; the row itself is retained for history.
func (r ReservationRepository) Cancel(id uuid.UUID, owner string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		res, err := r.getByID(txn, id)
		if err != nil {
			return err
		}
		if res.Owner != owner {
			return errors.ErrNotOwner
		}
		if res.Status == domain.StatusCancelled {
			return errors.ErrAlreadyCancelled
		}
		res.Status = domain.StatusCancelled
		bytes, err := proto.Marshal(lo.ToPtr(fromReservation(res)))
		if err != nil {
			return err
		}
		return txn.Set(primaryKey(res.Start, res.ID), bytes)
	})
	if err != nil {
		return err
	}

	if r.labels != nil {
		if err := r.labels.Delete(bluge.Identifier(id.String())); err != nil {
			r.log.Warn("Label index delete failed", "id", id, "error", err)
		}
	}
	return nil
}

// UpdateEnd rewrites the row with a later end. The primary key is
// derived from the immutable start, so the row stays in place.
// Conflict checking against other rows is the engine's job.
func (r ReservationRepository) UpdateEnd(id uuid.UUID, owner string, newEnd time.Time) (domain.Reservation, error) {
	var updated domain.Reservation
	err := r.db.Update(func(txn *badger.Txn) error {
		res, err := r.getByID(txn, id)
		if err != nil {
			return err
		}
		if res.Owner != owner {
			return errors.ErrNotOwner
		}
		if res.Status == domain.StatusCancelled {
			return errors.ErrAlreadyCancelled
		}
		res.End = newEnd
		bytes, err := proto.Marshal(lo.ToPtr(fromReservation(res)))
		if err != nil {
			return err
		}
		if err := txn.Set(primaryKey(res.Start, res.ID), bytes); err != nil {
			return err
		}
		updated = res
		return nil
	})
	return updated, err
}

// SearchLabels resolves a free-text label query through the Bluge
// index, then loads the matching rows from the ledger.
func (r ReservationRepository) SearchLabels(ctx context.Context, query string, limit int) ([]domain.Reservation, error) {
	if r.labels == nil {
		return nil, nil
	}
	reader, err := r.labels.Reader()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	match := bluge.NewMatchQuery(query).SetField("label")
	iter, err := reader.Search(ctx, bluge.NewTopNSearch(limit, match))
	if err != nil {
		return nil, err
	}

	var out []domain.Reservation
	for {
		next, err := iter.Next()
		if err != nil {
			return nil, err
		}
		if next == nil {
			break
		}
		var docID string
		err = next.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				docID = string(value)
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		id, err := uuid.Parse(docID)
		if err != nil {
			r.log.Warn("Label index holds a non-uuid doc id", "doc", docID)
			continue
		}
		res, err := r.Get(id)
		if err == errors.ErrNotFound {
			// Index can lag the ledger; skip ghosts.
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func fromReservation(res domain.Reservation) pb.Reservation {
	return pb.Reservation{
		Id:     res.ID.String(),
		Start:  res.Start.UnixNano(),
		End:    res.End.UnixNano(),
		Owner:  res.Owner,
		Label:  res.Label,
		Status: string(res.Status),
	}
}

func decode(value []byte) (domain.Reservation, error) {
	var row pb.Reservation
	if err := proto.Unmarshal(value, &row); err != nil {
		return domain.Reservation{}, err
	}
	return toReservation(&row)
}

func toReservation(row *pb.Reservation) (domain.Reservation, error) {
	parsedID, err := uuid.Parse(row.Id)
	if err != nil {
		return domain.Reservation{}, err
	}
	return domain.Reservation{
		ID:     parsedID,
		Start:  time.Unix(0, row.Start).UTC(),
		End:    time.Unix(0, row.End).UTC(),
		Owner:  row.Owner,
		Label:  row.Label,
		Status: domain.Status(row.Status),
	}, nil
}
