//go:build unit

package usecase_test

import (
	"context"
	"errors"

	"meetingsync/internal/domain/room"
	"meetingsync/internal/domain/schedule"
	"meetingsync/internal/domain/videoaccount"
	"meetingsync/internal/infra"

	"github.com/google/uuid"
)

// fakeReader is an in-memory ScheduleReader with the same semantics as the
// postgres store: room meetings are overlap-filtered, account meetings are
// returned whole so the engine does the filtering.
type fakeReader struct {
	rooms           []room.Room
	accounts        []videoaccount.Account
	roomMeetings    map[uuid.UUID][]schedule.Meeting
	accountMeetings map[uuid.UUID][]schedule.Meeting

	failWith error

	listAccountCalls int
}

func newFakeReader() *fakeReader {
	return &fakeReader{
		roomMeetings:    make(map[uuid.UUID][]schedule.Meeting),
		accountMeetings: make(map[uuid.UUID][]schedule.Meeting),
	}
}

func (f *fakeReader) FindRoom(_ context.Context, id uuid.UUID) (room.Room, error) {
	if f.failWith != nil {
		return room.Room{}, f.failWith
	}
	for _, r := range f.rooms {
		if r.ID() == id {
			return r, nil
		}
	}
	return room.Room{}, infra.WrapRepoErr("room not found", errors.New("no rows"), infra.KindNotFound)
}

func (f *fakeReader) ListActiveRooms(_ context.Context) ([]room.Room, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	active := make([]room.Room, 0, len(f.rooms))
	for _, r := range f.rooms {
		if r.Active() {
			active = append(active, r)
		}
	}
	return active, nil
}

func (f *fakeReader) ListActiveVideoAccounts(_ context.Context) ([]videoaccount.Account, error) {
	f.listAccountCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.accounts, nil
}

func (f *fakeReader) FindRoomMeetings(_ context.Context, roomID uuid.UUID, rng schedule.TimeRange, excludeID *uuid.UUID) ([]schedule.Meeting, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var result []schedule.Meeting
	for _, m := range f.roomMeetings[roomID] {
		if excludeID != nil && m.ID == *excludeID {
			continue
		}
		mRng, ok := m.Range()
		if !ok || !mRng.Overlaps(rng) {
			continue
		}
		result = append(result, m)
	}
	return result, nil
}

func (f *fakeReader) FindRoomMeetingsStartingIn(_ context.Context, roomID uuid.UUID, rng schedule.TimeRange) ([]schedule.Meeting, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var result []schedule.Meeting
	for _, m := range f.roomMeetings[roomID] {
		if m.Start.Before(rng.Start()) || !m.Start.Before(rng.End()) {
			continue
		}
		result = append(result, m)
	}
	return result, nil
}

func (f *fakeReader) FindAccountMeetings(_ context.Context, accountID uuid.UUID, excludeID *uuid.UUID) ([]schedule.Meeting, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var result []schedule.Meeting
	for _, m := range f.accountMeetings[accountID] {
		if excludeID != nil && m.ID == *excludeID {
			continue
		}
		result = append(result, m)
	}
	return result, nil
}
