package usecase

import (
	"context"

	"meetingsync/internal/domain/room"
	"meetingsync/internal/domain/videoaccount"
	"meetingsync/internal/infra"
	"meetingsync/internal/pkg/errs"

	"github.com/google/uuid"
)

// Directory exposes read-only access to the catalog of bookable rooms and
// video accounts. It is a pass-through over the persistence collaborator:
// misses surface immediately as ErrResourceNotFound, unreachable storage as a
// recoverable resource error. Retries belong to the caller, which has
// request-level context.
type Directory interface {
	ListActiveRooms(ctx context.Context) ([]room.Room, error)
	GetRoom(ctx context.Context, id uuid.UUID) (room.Room, error)
	ListActiveVideoAccounts(ctx context.Context) ([]videoaccount.Account, error)
}

type directoryImpl struct {
	reader ScheduleReader
}

func NewDirectory(reader ScheduleReader) Directory {
	return &directoryImpl{reader: reader}
}

func (d *directoryImpl) ListActiveRooms(ctx context.Context) ([]room.Room, error) {
	rooms, err := d.reader.ListActiveRooms(ctx)
	if err != nil {
		return nil, asDirectoryError(err)
	}
	return rooms, nil
}

func (d *directoryImpl) GetRoom(ctx context.Context, id uuid.UUID) (room.Room, error) {
	r, err := d.reader.FindRoom(ctx, id)
	if err != nil {
		return room.Room{}, asDirectoryError(err)
	}
	return r, nil
}

func (d *directoryImpl) ListActiveVideoAccounts(ctx context.Context) ([]videoaccount.Account, error) {
	accounts, err := d.reader.ListActiveVideoAccounts(ctx)
	if err != nil {
		return nil, asDirectoryError(err)
	}
	return accounts, nil
}

// asDirectoryError maps infra error kinds onto the engine taxonomy.
func asDirectoryError(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrResourceNotFound)
	}
	return errs.NewConflictDetectionError(
		errs.ConflictErrorResource,
		true,
		errs.Mark(err, errs.ErrUpstreamUnavailable),
	)
}
