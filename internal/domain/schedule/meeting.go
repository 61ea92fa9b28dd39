package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Meeting is the read model handed back by the persistence layer. The engine
// only scans these for conflicts; it never creates or mutates them.
type Meeting struct {
	ID           uuid.UUID
	Title        string
	Start        time.Time
	End          time.Time
	Participants []string
	RoomID       *uuid.UUID
	AccountID    *uuid.UUID
}

// Range returns the meeting's time range, or false when the stored row is
// malformed (zero start or end not after start). Scans skip such rows instead
// of failing the whole aggregate.
func (m Meeting) Range() (TimeRange, bool) {
	if m.Start.IsZero() || !m.End.After(m.Start) {
		return TimeRange{}, false
	}
	return TimeRange{start: m.Start, end: m.End}, true
}

// Summary is the caller-facing shape of a conflicting meeting, trimmed for
// display in conflict messages.
type Summary struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (m Meeting) Summarize() Summary {
	return Summary{ID: m.ID, Title: m.Title, Start: m.Start, End: m.End}
}
