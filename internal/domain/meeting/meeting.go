package meeting

import (
	"errors"
	"strings"

	"meetingsync/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle  = errors.New("meeting title cannot be empty")
	ErrInvalidType = errors.New("unknown meeting type")
)

// Type is the delivery mode of a meeting. It decides which resources the
// meeting needs: a physical room, a video-conferencing account, or both.
type Type string

const (
	TypeOffline Type = "offline"
	TypeHybrid  Type = "hybrid"
	TypeOnline  Type = "online"
)

func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case TypeOffline:
		return TypeOffline, nil
	case TypeHybrid:
		return TypeHybrid, nil
	case TypeOnline:
		return TypeOnline, nil
	default:
		return "", ErrInvalidType
	}
}

// RequiresVideo reports whether the meeting type has a remote leg and thus
// needs a video-conferencing account.
func (t Type) RequiresVideo() bool {
	return t == TypeHybrid || t == TypeOnline
}

// Draft is a proposed meeting under validation. ID is set only when an
// existing meeting is being edited, in which case it is excluded from every
// conflict scan so an unchanged slot does not conflict with itself.
type Draft struct {
	id           *uuid.UUID
	title        string
	timeRange    schedule.TimeRange
	meetingType  Type
	participants []string
	roomID       *uuid.UUID
}

func NewDraft(id *uuid.UUID, title string, rng schedule.TimeRange, mt Type, participants []string, roomID *uuid.UUID) (Draft, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Draft{}, ErrEmptyTitle
	}
	if _, err := ParseType(string(mt)); err != nil {
		return Draft{}, err
	}
	return Draft{
		id:           id,
		title:        title,
		timeRange:    rng,
		meetingType:  mt,
		participants: participants,
		roomID:       roomID,
	}, nil
}

func (d Draft) ID() *uuid.UUID          { return d.id }
func (d Draft) Title() string           { return d.title }
func (d Draft) Range() schedule.TimeRange { return d.timeRange }
func (d Draft) Type() Type              { return d.meetingType }
func (d Draft) Participants() []string  { return d.participants }
func (d Draft) RoomID() *uuid.UUID      { return d.roomID }

func (d Draft) HasRoom() bool {
	return d.roomID != nil
}

func (d Draft) ParticipantCount() int {
	return len(d.participants)
}
