package domain

import (
	"time"
)

// Range is a half-open booking interval [Start, End).
type Range struct {
	Start time.Time
	End   time.Time
}

func (r Range) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Overlaps reports whether two half-open ranges intersect.
// Back-to-back ranges (one's End equals the other's Start) do not overlap.
func (r Range) Overlaps(other Range) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Malformed reports whether the range is empty or inverted.
func (r Range) Malformed() bool {
	return !r.Start.Before(r.End)
}

// Past reports whether the range lies entirely before the given instant.
// Only new bookings and extensions are checked against this; stored rows
// from migrated history are never re-validated.
func (r Range) Past(now time.Time) bool {
	return !r.End.After(now)
}

// Conflicts returns the subset of existing reservations the candidate collides with.
func Conflicts(candidate Range, existing []Reservation) []Reservation {
	var conflicts []Reservation
	for _, res := range existing {
		if res.Status != StatusActive {
			continue
		}
		if candidate.Overlaps(res.Range()) {
			conflicts = append(conflicts, res)
		}
	}
	return conflicts
}
