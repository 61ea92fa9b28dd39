package usecase

import (
	"context"

	"meetingsync/internal/domain/room"
	"meetingsync/internal/domain/schedule"
	"meetingsync/internal/domain/videoaccount"

	"github.com/google/uuid"
)

// ScheduleReader is the persistence collaborator consumed by the engine. It
// returns read models only; the engine never writes through it. Lookup misses
// surface as infra.KindNotFound, transport failures as infra.KindDBFailure.
type ScheduleReader interface {
	FindRoom(ctx context.Context, id uuid.UUID) (room.Room, error)
	ListActiveRooms(ctx context.Context) ([]room.Room, error)
	ListActiveVideoAccounts(ctx context.Context) ([]videoaccount.Account, error)

	// FindRoomMeetings returns meetings booked against the room that overlap
	// rng, excluding excludeID when editing an existing meeting.
	FindRoomMeetings(ctx context.Context, roomID uuid.UUID, rng schedule.TimeRange, excludeID *uuid.UUID) ([]schedule.Meeting, error)

	// FindRoomMeetingsStartingIn returns meetings for the room whose start
	// falls inside rng, used for utilization reporting.
	FindRoomMeetingsStartingIn(ctx context.Context, roomID uuid.UUID, rng schedule.TimeRange) ([]schedule.Meeting, error)

	// FindAccountMeetings returns all meetings booked against the account,
	// excluding excludeID. Overlap filtering happens in the engine so that
	// malformed stored rows can be skipped rather than failing the query.
	FindAccountMeetings(ctx context.Context, accountID uuid.UUID, excludeID *uuid.UUID) ([]schedule.Meeting, error)
}

// SessionProvider is the opaque video-conferencing collaborator. The engine's
// capacity logic never inspects provider-side session state; this interface
// exists for the booking surface that commits a validated meeting.
type SessionProvider interface {
	CreateSession(ctx context.Context, accountRef, topic string, rng schedule.TimeRange) (HostedSession, error)
	UpdateSession(ctx context.Context, accountRef, sessionID string, rng schedule.TimeRange) error
	DeleteSession(ctx context.Context, accountRef, sessionID string) error
}

// HostedSession carries the join credentials returned by the provider.
type HostedSession struct {
	ID       string
	JoinURL  string
	Passcode string
}
