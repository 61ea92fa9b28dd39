package response

import (
	"meetingsync/internal/domain/room"
	"meetingsync/internal/domain/schedule"
	"meetingsync/internal/usecase"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Capacity int       `json:"capacity"`
	Location string    `json:"location"`
}

func FromRoom(r room.Room) RoomResponse {
	return RoomResponse{
		ID:       r.ID(),
		Name:     r.Name(),
		Capacity: r.Capacity(),
		Location: r.Location(),
	}
}

func FromRooms(rooms []room.Room) []RoomResponse {
	result := make([]RoomResponse, len(rooms))
	for i, r := range rooms {
		result[i] = FromRoom(r)
	}
	return result
}

type RoomAvailabilityResponse struct {
	Room                RoomResponse       `json:"room"`
	IsAvailable         bool               `json:"isAvailable"`
	ConflictingMeetings []schedule.Summary `json:"conflictingMeetings"`
	AlternativeRooms    []RoomResponse     `json:"alternativeRooms"`
}

func FromRoomAvailability(avail *usecase.RoomAvailability) *RoomAvailabilityResponse {
	summaries := make([]schedule.Summary, len(avail.ConflictingMeetings))
	for i, m := range avail.ConflictingMeetings {
		summaries[i] = m.Summarize()
	}
	return &RoomAvailabilityResponse{
		Room:                FromRoom(avail.Room),
		IsAvailable:         avail.IsAvailable,
		ConflictingMeetings: summaries,
		AlternativeRooms:    FromRooms(avail.AlternativeRooms),
	}
}
