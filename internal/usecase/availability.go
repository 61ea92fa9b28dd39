package usecase

import (
	"context"
	"math"
	"sort"
	"time"

	"meetingsync/internal/domain/room"
	"meetingsync/internal/domain/schedule"
	"meetingsync/internal/pkg/errs"

	"github.com/google/uuid"
)

// RoomAvailability is the outcome of checking one room against one range. An
// empty conflict list is a normal outcome, not an error.
type RoomAvailability struct {
	Room                room.Room
	IsAvailable         bool
	ConflictingMeetings []schedule.Meeting
	AlternativeRooms    []room.Room
}

// RoomUtilization reports how heavily a room was booked over a period.
type RoomUtilization struct {
	BookedHours        float64 `json:"bookedHours"`
	MeetingCount       int     `json:"meetingCount"`
	TotalHours         float64 `json:"totalHours"`
	UtilizationPercent float64 `json:"utilizationPercentage"`
}

// RoomScorer ranks an available room for a request. Higher is better; a
// negative score excludes the room. The exact weighting is a tuning
// parameter, so it is injected rather than hard-coded into orchestration.
type RoomScorer func(r room.Room, participantCount int, preferredLocation string) float64

// DefaultRoomScorer scores by capacity fit plus a fixed location bonus.
// An exact capacity match scores highest; oversized rooms score progressively
// lower; rooms below participantCount are excluded. Monotonic in the size of
// the capacity gap.
func DefaultRoomScorer(r room.Room, participantCount int, preferredLocation string) float64 {
	if participantCount > 0 && !r.Fits(participantCount) {
		return -1
	}
	score := 100.0
	if participantCount > 0 {
		score -= float64(r.Capacity() - participantCount)
	}
	if preferredLocation != "" && r.Location() == preferredLocation {
		score += 25
	}
	return score
}

type AvailabilityService interface {
	CheckRoomAvailability(ctx context.Context, roomID uuid.UUID, rng schedule.TimeRange, excludeID *uuid.UUID) (*RoomAvailability, error)
	FindAvailableRooms(ctx context.Context, rng schedule.TimeRange) ([]room.Room, error)
	FindOptimalRooms(ctx context.Context, rng schedule.TimeRange, participantCount int, preferredLocation string) ([]room.Room, error)
	GetRoomUtilization(ctx context.Context, roomID uuid.UUID, periodStart, periodEnd time.Time) (*RoomUtilization, error)
}

type availabilityServiceImpl struct {
	directory Directory
	reader    ScheduleReader
	scorer    RoomScorer
}

func NewAvailabilityService(directory Directory, reader ScheduleReader, scorer RoomScorer) AvailabilityService {
	if scorer == nil {
		scorer = DefaultRoomScorer
	}
	return &availabilityServiceImpl{directory: directory, reader: reader, scorer: scorer}
}

func (s *availabilityServiceImpl) CheckRoomAvailability(ctx context.Context, roomID uuid.UUID, rng schedule.TimeRange, excludeID *uuid.UUID) (*RoomAvailability, error) {
	r, err := s.directory.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	conflicting, err := s.reader.FindRoomMeetings(ctx, roomID, rng, excludeID)
	if err != nil {
		return nil, asDirectoryError(err)
	}

	result := &RoomAvailability{
		Room:                r,
		IsAvailable:         len(conflicting) == 0,
		ConflictingMeetings: conflicting,
	}
	if !result.IsAvailable {
		alternatives, err := s.FindAvailableRooms(ctx, rng)
		if err != nil {
			return nil, err
		}
		// the conflicted room itself is never an alternative
		for _, alt := range alternatives {
			if alt.ID() != roomID {
				result.AlternativeRooms = append(result.AlternativeRooms, alt)
			}
		}
	}
	return result, nil
}

// FindAvailableRooms returns conflict-free rooms in catalog order. Callers
// needing a ranked list use FindOptimalRooms.
func (s *availabilityServiceImpl) FindAvailableRooms(ctx context.Context, rng schedule.TimeRange) ([]room.Room, error) {
	rooms, err := s.directory.ListActiveRooms(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]room.Room, 0, len(rooms))
	for _, r := range rooms {
		conflicting, err := s.reader.FindRoomMeetings(ctx, r.ID(), rng, nil)
		if err != nil {
			return nil, asDirectoryError(err)
		}
		if len(conflicting) == 0 {
			available = append(available, r)
		}
	}
	return available, nil
}

func (s *availabilityServiceImpl) FindOptimalRooms(ctx context.Context, rng schedule.TimeRange, participantCount int, preferredLocation string) ([]room.Room, error) {
	available, err := s.FindAvailableRooms(ctx, rng)
	if err != nil {
		return nil, err
	}

	type scored struct {
		room  room.Room
		score float64
	}
	ranked := make([]scored, 0, len(available))
	for _, r := range available {
		score := s.scorer(r, participantCount, preferredLocation)
		if score < 0 {
			continue
		}
		ranked = append(ranked, scored{room: r, score: score})
	}

	// stable: equal scores keep catalog order
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	result := make([]room.Room, len(ranked))
	for i, sc := range ranked {
		result[i] = sc.room
	}
	return result, nil
}

func (s *availabilityServiceImpl) GetRoomUtilization(ctx context.Context, roomID uuid.UUID, periodStart, periodEnd time.Time) (*RoomUtilization, error) {
	period, err := schedule.NewTimeRange(periodStart, periodEnd)
	if err != nil {
		return nil, errs.NewConflictDetectionError(errs.ConflictErrorValidation, false, err)
	}

	if _, err := s.directory.GetRoom(ctx, roomID); err != nil {
		return nil, err
	}

	meetings, err := s.reader.FindRoomMeetingsStartingIn(ctx, roomID, period)
	if err != nil {
		return nil, asDirectoryError(err)
	}

	var bookedMinutes float64
	for _, m := range meetings {
		rng, ok := m.Range()
		if !ok {
			continue
		}
		bookedMinutes += rng.Duration().Minutes()
	}

	totalHours := period.Hours()
	bookedHours := bookedMinutes / 60
	return &RoomUtilization{
		BookedHours:        round2(bookedHours),
		MeetingCount:       len(meetings),
		TotalHours:         round2(totalHours),
		UtilizationPercent: round2(bookedHours / totalHours * 100),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
