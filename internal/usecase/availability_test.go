//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"meetingsync/internal/domain/room"
	"meetingsync/internal/domain/schedule"
	"meetingsync/internal/pkg/errs"
	"meetingsync/internal/usecase"
	"meetingsync/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAvailability(reader *fakeReader) usecase.AvailabilityService {
	directory := usecase.NewDirectory(reader)
	return usecase.NewAvailabilityService(directory, reader, nil)
}

func mustRange(t *testing.T, start, end time.Time) schedule.TimeRange {
	t.Helper()
	rng, err := schedule.NewTimeRange(start, end)
	require.NoError(t, err)
	return rng
}

func at(h, m int) time.Time {
	return time.Date(2026, 3, 10, h, m, 0, 0, time.UTC)
}

func TestCheckRoomAvailability(t *testing.T) {
	t.Run("booked room reports conflict and alternatives", func(t *testing.T) {
		conferenceA := builder.NewRoomBuilder().WithName("Conference A").WithCapacity(10).MustBuild()
		conferenceB := builder.NewRoomBuilder().WithName("Conference B").WithCapacity(6).MustBuild()

		reader := newFakeReader()
		reader.rooms = []room.Room{conferenceA, conferenceB}
		reader.roomMeetings[conferenceA.ID()] = []schedule.Meeting{
			builder.NewMeetingBuilder().WithRange(at(10, 0), at(11, 0)).WithRoom(conferenceA.ID()).Build(),
		}

		svc := newAvailability(reader)
		avail, err := svc.CheckRoomAvailability(context.Background(), conferenceA.ID(), mustRange(t, at(10, 30), at(11, 30)), nil)
		require.NoError(t, err)

		assert.False(t, avail.IsAvailable)
		require.Len(t, avail.ConflictingMeetings, 1)
		require.Len(t, avail.AlternativeRooms, 1)
		assert.Equal(t, "Conference B", avail.AlternativeRooms[0].Name())
	})

	t.Run("free room has no conflicts", func(t *testing.T) {
		conferenceA := builder.NewRoomBuilder().MustBuild()
		reader := newFakeReader()
		reader.rooms = []room.Room{conferenceA}
		reader.roomMeetings[conferenceA.ID()] = []schedule.Meeting{
			builder.NewMeetingBuilder().WithRange(at(9, 0), at(10, 0)).WithRoom(conferenceA.ID()).Build(),
		}

		svc := newAvailability(reader)
		// back-to-back with the existing booking: no overlap
		avail, err := svc.CheckRoomAvailability(context.Background(), conferenceA.ID(), mustRange(t, at(10, 0), at(11, 0)), nil)
		require.NoError(t, err)

		assert.True(t, avail.IsAvailable)
		assert.Empty(t, avail.ConflictingMeetings)
		assert.Empty(t, avail.AlternativeRooms)
	})

	t.Run("editing a meeting excludes its own slot", func(t *testing.T) {
		conferenceA := builder.NewRoomBuilder().MustBuild()
		existing := builder.NewMeetingBuilder().WithRange(at(10, 0), at(11, 0)).WithRoom(conferenceA.ID()).Build()

		reader := newFakeReader()
		reader.rooms = []room.Room{conferenceA}
		reader.roomMeetings[conferenceA.ID()] = []schedule.Meeting{existing}

		svc := newAvailability(reader)
		avail, err := svc.CheckRoomAvailability(context.Background(), conferenceA.ID(), mustRange(t, at(10, 0), at(11, 0)), &existing.ID)
		require.NoError(t, err)

		assert.True(t, avail.IsAvailable)
	})

	t.Run("unknown room fails with not found", func(t *testing.T) {
		svc := newAvailability(newFakeReader())
		_, err := svc.CheckRoomAvailability(context.Background(), uuid.New(), mustRange(t, at(10, 0), at(11, 0)), nil)
		assert.ErrorIs(t, err, errs.ErrResourceNotFound)
	})
}

func TestFindAvailableRooms(t *testing.T) {
	roomA := builder.NewRoomBuilder().WithName("A").MustBuild()
	roomB := builder.NewRoomBuilder().WithName("B").MustBuild()
	roomC := builder.NewRoomBuilder().WithName("C").MustBuild()

	reader := newFakeReader()
	reader.rooms = []room.Room{roomA, roomB, roomC}
	reader.roomMeetings[roomB.ID()] = []schedule.Meeting{
		builder.NewMeetingBuilder().WithRange(at(10, 0), at(11, 0)).WithRoom(roomB.ID()).Build(),
	}

	svc := newAvailability(reader)
	rooms, err := svc.FindAvailableRooms(context.Background(), mustRange(t, at(10, 0), at(11, 0)))
	require.NoError(t, err)

	// catalog order preserved, booked room dropped
	require.Len(t, rooms, 2)
	assert.Equal(t, "A", rooms[0].Name())
	assert.Equal(t, "C", rooms[1].Name())
}

func TestFindOptimalRooms(t *testing.T) {
	tiny := builder.NewRoomBuilder().WithName("Huddle").WithCapacity(2).MustBuild()
	exact := builder.NewRoomBuilder().WithName("Exact").WithCapacity(6).MustBuild()
	oversized := builder.NewRoomBuilder().WithName("Hall").WithCapacity(40).MustBuild()
	located := builder.NewRoomBuilder().WithName("Nearby").WithCapacity(8).WithLocation("Floor 1").MustBuild()

	reader := newFakeReader()
	reader.rooms = []room.Room{tiny, oversized, exact, located}

	svc := newAvailability(reader)
	rng := mustRange(t, at(10, 0), at(11, 0))

	t.Run("capacity fit ranks exact match first and excludes undersized", func(t *testing.T) {
		rooms, err := svc.FindOptimalRooms(context.Background(), rng, 6, "")
		require.NoError(t, err)

		require.Len(t, rooms, 3)
		assert.Equal(t, "Exact", rooms[0].Name())
		assert.Equal(t, "Nearby", rooms[1].Name())
		assert.Equal(t, "Hall", rooms[2].Name())
	})

	t.Run("location match outranks a slightly better capacity fit", func(t *testing.T) {
		rooms, err := svc.FindOptimalRooms(context.Background(), rng, 6, "Floor 1")
		require.NoError(t, err)

		require.NotEmpty(t, rooms)
		assert.Equal(t, "Nearby", rooms[0].Name())
	})

	t.Run("never returns a room findAvailableRooms excludes", func(t *testing.T) {
		reader.roomMeetings[exact.ID()] = []schedule.Meeting{
			builder.NewMeetingBuilder().WithRange(at(10, 0), at(11, 0)).WithRoom(exact.ID()).Build(),
		}
		defer delete(reader.roomMeetings, exact.ID())

		available, err := svc.FindAvailableRooms(context.Background(), rng)
		require.NoError(t, err)
		optimal, err := svc.FindOptimalRooms(context.Background(), rng, 0, "")
		require.NoError(t, err)

		availableIDs := make(map[uuid.UUID]bool)
		for _, r := range available {
			availableIDs[r.ID()] = true
		}
		for _, r := range optimal {
			assert.True(t, availableIDs[r.ID()], "optimal room %s not in available set", r.Name())
		}
	})
}

func TestGetRoomUtilization(t *testing.T) {
	conferenceA := builder.NewRoomBuilder().MustBuild()

	reader := newFakeReader()
	reader.rooms = []room.Room{conferenceA}
	reader.roomMeetings[conferenceA.ID()] = []schedule.Meeting{
		builder.NewMeetingBuilder().WithRange(at(10, 0), at(11, 0)).WithRoom(conferenceA.ID()).Build(),
		builder.NewMeetingBuilder().WithRange(at(14, 0), at(16, 0)).WithRoom(conferenceA.ID()).Build(),
	}

	svc := newAvailability(reader)
	periodStart := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.Add(48 * time.Hour)

	utilization, err := svc.GetRoomUtilization(context.Background(), conferenceA.ID(), periodStart, periodEnd)
	require.NoError(t, err)

	assert.Equal(t, 3.0, utilization.BookedHours)
	assert.Equal(t, 2, utilization.MeetingCount)
	assert.Equal(t, 48.0, utilization.TotalHours)
	assert.Equal(t, 6.25, utilization.UtilizationPercent)
}

func TestGetRoomUtilizationInvalidPeriod(t *testing.T) {
	svc := newAvailability(newFakeReader())
	start := at(10, 0)

	_, err := svc.GetRoomUtilization(context.Background(), uuid.New(), start, start)
	require.Error(t, err)

	cde, ok := errs.AsConflictDetectionError(err)
	require.True(t, ok)
	assert.Equal(t, errs.ConflictErrorValidation, cde.Type)
	assert.False(t, cde.Recoverable)
}
