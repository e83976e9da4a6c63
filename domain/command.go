package domain

import (
	"time"
)

// BookCommand is a structured booking intent produced by the chat adapter.
// Owner is the platform user id; the core treats it as an opaque token.
type BookCommand struct {
	Start time.Time `validate:"required"`
	End   time.Time `validate:"required"`
	Owner string    `validate:"required,max=256"`
	Label string    `validate:"max=512"`
}

func (c BookCommand) Range() Range {
	return Range{Start: c.Start, End: c.End}
}

type CancelCommand struct {
	ID    string `validate:"required,uuid"`
	Owner string `validate:"required,max=256"`
}

// ExtendCommand pushes an existing reservation's end forward.
// The new end is conflict-checked against every other ACTIVE reservation.
type ExtendCommand struct {
	ID        string        `validate:"required,uuid"`
	Owner     string        `validate:"required,max=256"`
	Extension time.Duration `validate:"required"`
}
