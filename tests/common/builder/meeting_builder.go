//go:build unit

package builder

import (
	"time"

	dommeeting "meetingsync/internal/domain/meeting"
	"meetingsync/internal/domain/schedule"

	"github.com/google/uuid"
)

type DraftBuilder struct {
	MeetingID    *uuid.UUID
	Title        string
	Start        time.Time
	End          time.Time
	Type         dommeeting.Type
	Participants []string
	RoomID       *uuid.UUID
}

func NewDraftBuilder() *DraftBuilder {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	return &DraftBuilder{
		Title:        "Weekly sync",
		Start:        start,
		End:          start.Add(time.Hour),
		Type:         dommeeting.TypeOnline,
		Participants: []string{"ada@example.com", "grace@example.com"},
	}
}

func (b *DraftBuilder) WithType(t dommeeting.Type) *DraftBuilder {
	b.Type = t
	return b
}

func (b *DraftBuilder) WithRoom(roomID uuid.UUID) *DraftBuilder {
	b.RoomID = &roomID
	return b
}

func (b *DraftBuilder) WithMeetingID(id uuid.UUID) *DraftBuilder {
	b.MeetingID = &id
	return b
}

func (b *DraftBuilder) WithRange(start, end time.Time) *DraftBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *DraftBuilder) WithParticipants(participants ...string) *DraftBuilder {
	b.Participants = participants
	return b
}

func (b *DraftBuilder) Build() (dommeeting.Draft, error) {
	rng, err := schedule.NewTimeRange(b.Start, b.End)
	if err != nil {
		return dommeeting.Draft{}, err
	}
	return dommeeting.NewDraft(b.MeetingID, b.Title, rng, b.Type, b.Participants, b.RoomID)
}

// MeetingBuilder produces stored-meeting read models for conflict scans.
type MeetingBuilder struct {
	ID           uuid.UUID
	Title        string
	Start        time.Time
	End          time.Time
	Participants []string
	RoomID       *uuid.UUID
	AccountID    *uuid.UUID
}

func NewMeetingBuilder() *MeetingBuilder {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	return &MeetingBuilder{
		ID:    uuid.New(),
		Title: "Existing booking",
		Start: start,
		End:   start.Add(time.Hour),
	}
}

func (b *MeetingBuilder) WithRange(start, end time.Time) *MeetingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *MeetingBuilder) WithRoom(roomID uuid.UUID) *MeetingBuilder {
	b.RoomID = &roomID
	return b
}

func (b *MeetingBuilder) WithAccount(accountID uuid.UUID) *MeetingBuilder {
	b.AccountID = &accountID
	return b
}

// Malformed zeroes the start so the row is skipped by capacity scans.
func (b *MeetingBuilder) Malformed() *MeetingBuilder {
	b.Start = time.Time{}
	return b
}

func (b *MeetingBuilder) Build() schedule.Meeting {
	return schedule.Meeting{
		ID:           b.ID,
		Title:        b.Title,
		Start:        b.Start,
		End:          b.End,
		Participants: b.Participants,
		RoomID:       b.RoomID,
		AccountID:    b.AccountID,
	}
}
