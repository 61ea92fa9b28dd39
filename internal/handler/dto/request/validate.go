package request

import (
	"time"

	"meetingsync/internal/domain/meeting"
	"meetingsync/internal/domain/schedule"

	"github.com/google/uuid"
)

type ValidateMeetingRequest struct {
	// MeetingID is set when editing an existing meeting so the meeting's own
	// slot is excluded from conflict scans.
	MeetingID    *uuid.UUID `json:"meetingId,omitempty"`
	Title        string     `json:"title" binding:"required"`
	StartTime    time.Time  `json:"startTime" binding:"required"`
	EndTime      time.Time  `json:"endTime" binding:"required"`
	MeetingType  string     `json:"meetingType" binding:"required"`
	Participants []string   `json:"participants,omitempty"`
	RoomID       *uuid.UUID `json:"roomId,omitempty"`
}

func (r ValidateMeetingRequest) ToDomain() (meeting.Draft, error) {
	rng, err := schedule.NewTimeRange(r.StartTime, r.EndTime)
	if err != nil {
		return meeting.Draft{}, err
	}
	mt, err := meeting.ParseType(r.MeetingType)
	if err != nil {
		return meeting.Draft{}, err
	}
	return meeting.NewDraft(r.MeetingID, r.Title, rng, mt, r.Participants, r.RoomID)
}
