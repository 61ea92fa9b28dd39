// Package readstore implements the engine's persistence collaborator over
// postgres. Read-only: the engine never writes through this package.
package readstore

import (
	"context"
	"errors"

	"meetingsync/internal/domain/room"
	"meetingsync/internal/domain/schedule"
	"meetingsync/internal/domain/videoaccount"
	"meetingsync/internal/infra"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type ScheduleStore struct {
	pool *pgxpool.Pool
}

func NewScheduleStore(pool *pgxpool.Pool) *ScheduleStore {
	return &ScheduleStore{pool: pool}
}

func (s *ScheduleStore) FindRoom(ctx context.Context, id uuid.UUID) (room.Room, error) {
	query, args, err := psql.Select("id", "name", "capacity", "location", "active").
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return room.Room{}, infra.WrapRepoErr("failed to build room query", err)
	}

	var (
		roomID   uuid.UUID
		name     string
		capacity int
		location string
		active   bool
	)
	if err := s.pool.QueryRow(ctx, query, args...).Scan(&roomID, &name, &capacity, &location, &active); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return room.Room{}, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return room.Room{}, infra.WrapRepoErr("failed to find room", err)
	}
	r, err := room.NewRoom(roomID, name, capacity, location, active)
	if err != nil {
		return room.Room{}, infra.WrapRepoErr("invalid room row", err)
	}
	return r, nil
}

func (s *ScheduleStore) ListActiveRooms(ctx context.Context) ([]room.Room, error) {
	query, args, err := psql.Select("id", "name", "capacity", "location", "active").
		From("rooms").
		Where(squirrel.Eq{"active": true}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build rooms query", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var result []room.Room
	for rows.Next() {
		var (
			roomID   uuid.UUID
			name     string
			capacity int
			location string
			active   bool
		)
		if err := rows.Scan(&roomID, &name, &capacity, &location, &active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		r, err := room.NewRoom(roomID, name, capacity, location, active)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid room row", err)
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room rows", err)
	}
	return result, nil
}

func (s *ScheduleStore) ListActiveVideoAccounts(ctx context.Context) ([]videoaccount.Account, error) {
	query, args, err := psql.Select("id", "external_ref", "max_concurrent").
		From("video_accounts").
		Where(squirrel.Eq{"active": true}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build accounts query", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list video accounts", err)
	}
	defer rows.Close()

	var result []videoaccount.Account
	for rows.Next() {
		var (
			accountID     uuid.UUID
			externalRef   string
			maxConcurrent int
		)
		if err := rows.Scan(&accountID, &externalRef, &maxConcurrent); err != nil {
			return nil, infra.WrapRepoErr("failed to scan account row", err)
		}
		a, err := videoaccount.NewAccount(accountID, externalRef, maxConcurrent)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid account row", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read account rows", err)
	}
	return result, nil
}

// FindRoomMeetings filters overlap in SQL with the same half-open semantics
// as TimeRange.Overlaps: start < range_end AND range_start < end.
func (s *ScheduleStore) FindRoomMeetings(ctx context.Context, roomID uuid.UUID, rng schedule.TimeRange, excludeID *uuid.UUID) ([]schedule.Meeting, error) {
	builder := psql.Select("id", "title", "start_time", "end_time", "participants", "room_id", "account_id").
		From("meetings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Lt{"start_time": rng.End()}).
		Where(squirrel.Gt{"end_time": rng.Start()}).
		OrderBy("start_time")
	if excludeID != nil {
		builder = builder.Where(squirrel.NotEq{"id": *excludeID})
	}
	return s.queryMeetings(ctx, builder)
}

func (s *ScheduleStore) FindRoomMeetingsStartingIn(ctx context.Context, roomID uuid.UUID, rng schedule.TimeRange) ([]schedule.Meeting, error) {
	builder := psql.Select("id", "title", "start_time", "end_time", "participants", "room_id", "account_id").
		From("meetings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.GtOrEq{"start_time": rng.Start()}).
		Where(squirrel.Lt{"start_time": rng.End()}).
		OrderBy("start_time")
	return s.queryMeetings(ctx, builder)
}

// FindAccountMeetings returns every meeting for the account; overlap
// filtering happens in the engine so malformed rows can be skipped there.
func (s *ScheduleStore) FindAccountMeetings(ctx context.Context, accountID uuid.UUID, excludeID *uuid.UUID) ([]schedule.Meeting, error) {
	builder := psql.Select("id", "title", "start_time", "end_time", "participants", "room_id", "account_id").
		From("meetings").
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("start_time")
	if excludeID != nil {
		builder = builder.Where(squirrel.NotEq{"id": *excludeID})
	}
	return s.queryMeetings(ctx, builder)
}

func (s *ScheduleStore) queryMeetings(ctx context.Context, builder squirrel.SelectBuilder) ([]schedule.Meeting, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build meetings query", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query meetings", err)
	}
	defer rows.Close()

	var result []schedule.Meeting
	for rows.Next() {
		var m schedule.Meeting
		if err := rows.Scan(&m.ID, &m.Title, &m.Start, &m.End, &m.Participants, &m.RoomID, &m.AccountID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan meeting row", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read meeting rows", err)
	}
	return result, nil
}
