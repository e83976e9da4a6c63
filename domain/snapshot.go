package domain

import (
	"time"
)

// Entry is the display-facing shape of one reservation. Owner is
// deliberately absent: the hallway screen attributes by label only.
type Entry struct {
	ID    string    `json:"id"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// Snapshot is the self-contained message pushed to every display
// client. Clients render it as-is and never diff against prior state.
// Current and Next mirror the hallway screen layout (the booking in
// progress plus the next two); Upcoming is the full ordered view.
type Snapshot struct {
	GeneratedAt time.Time `json:"generated_at"`
	Current     *Entry    `json:"current"`
	Next        []Entry   `json:"next"`
	Upcoming    []Entry   `json:"upcoming"`
}
