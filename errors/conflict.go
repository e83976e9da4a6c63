package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"booking-lab/domain"
)

// ConflictError is returned when a booking or extension collides with
// existing ACTIVE reservations. It carries the colliding rows so the
// caller can tell the requester why the slot is taken, not just that it is.
type ConflictError struct {
	Conflicts []domain.Reservation
}

func (e *ConflictError) Error() string {
	if len(e.Conflicts) == 0 {
		return "time slot already booked"
	}
	labels := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		label := c.Label
		if label == "" {
			label = c.ID.String()
		}
		labels = append(labels, fmt.Sprintf("%q [%s - %s]",
			label,
			c.Start.Format("Jan 02 15:04"),
			c.End.Format("15:04")))
	}
	return "time slot already booked by " + strings.Join(labels, ", ")
}

// AsConflict unwraps err into a ConflictError if it is one.
func AsConflict(err error) (*ConflictError, bool) {
	var conflict *ConflictError
	if stderrors.As(err, &conflict) {
		return conflict, true
	}
	return nil, false
}
