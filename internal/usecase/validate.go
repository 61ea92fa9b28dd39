package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"meetingsync/internal/domain/conflict"
	"meetingsync/internal/domain/meeting"
	"meetingsync/internal/domain/schedule"
	"meetingsync/internal/pkg/clock"
	"meetingsync/internal/pkg/config"
)

// maxRoomChangeSuggestions caps how many alternative rooms are turned into
// ROOM_CHANGE suggestions per conflict.
const maxRoomChangeSuggestions = 3

// MeetingValidator is the engine's primary entry point: one stateless
// validation pass over a proposed meeting, aggregating every conflict and a
// ranked list of remediations in a single round trip.
type MeetingValidator interface {
	ValidateMeeting(ctx context.Context, draft meeting.Draft) (*conflict.Result, error)
}

type meetingValidatorImpl struct {
	availability AvailabilityService
	capacity     CapacityService
	clock        clock.Clock
	cfg          config.SuggestionConfig
}

func NewMeetingValidator(
	availability AvailabilityService,
	capacity CapacityService,
	clk clock.Clock,
	cfg config.SuggestionConfig,
) MeetingValidator {
	return &meetingValidatorImpl{
		availability: availability,
		capacity:     capacity,
		clock:        clk,
		cfg:          cfg,
	}
}

func (v *meetingValidatorImpl) ValidateMeeting(ctx context.Context, draft meeting.Draft) (*conflict.Result, error) {
	// Structural rules run first and synchronously: pure function, no I/O.
	// Errors accumulate rather than short-circuiting so a caller gets the
	// full conflict picture in one pass.
	conflicts := meeting.ValidateRoomRequirement(draft.Type(), draft.HasRoom())

	// Room and capacity checks are read-only over disjoint resources, so
	// they run concurrently when both apply.
	var (
		wg          sync.WaitGroup
		roomAvail   *RoomAvailability
		roomErr     error
		capResult   *CapacityResult
		capacityErr error
	)
	if draft.HasRoom() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			roomAvail, roomErr = v.availability.CheckRoomAvailability(ctx, *draft.RoomID(), draft.Range(), draft.ID())
		}()
	}
	if draft.Type().RequiresVideo() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			capResult, capacityErr = v.capacity.CheckConcurrentMeetingCapacity(ctx, draft.Range(), draft.ID())
		}()
	}
	wg.Wait()
	if roomErr != nil {
		return nil, roomErr
	}
	if capacityErr != nil {
		return nil, capacityErr
	}

	var suggestions []conflict.Suggestion

	if roomAvail != nil && !roomAvail.IsAvailable {
		conflicts = append(conflicts, v.roomConflict(roomAvail))
		suggestions = append(suggestions, v.roomSuggestions(ctx, draft, roomAvail)...)
	}

	if capResult != nil && !capResult.HasAvailableAccount {
		conflicts = append(conflicts, v.capacityConflict(capResult))
		suggestions = append(suggestions, v.capacitySuggestions(ctx, draft)...)
	}

	for _, c := range conflicts {
		if c.Type == conflict.TypeMissingRoom && c.Severity == conflict.SeverityWarning {
			suggestions = append(suggestions, typeChangeSuggestion())
		}
	}

	result := conflict.NewResult(conflicts, suggestions)
	return &result, nil
}

func (v *meetingValidatorImpl) roomConflict(avail *RoomAvailability) conflict.Info {
	summaries := make([]schedule.Summary, len(avail.ConflictingMeetings))
	for i, m := range avail.ConflictingMeetings {
		summaries[i] = m.Summarize()
	}
	hints := make([]string, 0, len(avail.AlternativeRooms))
	for _, alt := range avail.AlternativeRooms {
		hints = append(hints, fmt.Sprintf("Room %q is free in this slot", alt.Name()))
	}
	return conflict.Info{
		Type:             conflict.TypeRoomConflict,
		Severity:         conflict.SeverityError,
		Message:          fmt.Sprintf("Room %q is already booked in this slot", avail.Room.Name()),
		AffectedResource: avail.Room.Name(),
		Meetings:         summaries,
		Suggestions:      hints,
	}
}

func (v *meetingValidatorImpl) capacityConflict(capResult *CapacityResult) conflict.Info {
	summaries := make([]schedule.Summary, len(capResult.ConflictingMeetings))
	for i, m := range capResult.ConflictingMeetings {
		summaries[i] = m.Summarize()
	}
	return conflict.Info{
		Type:     conflict.TypeZoomCapacity,
		Severity: conflict.SeverityError,
		Message: fmt.Sprintf("All %d video accounts are at capacity in this slot (%d/%d concurrent meetings)",
			capResult.TotalAccounts, capResult.CurrentTotalUsage, capResult.TotalMaxConcurrent),
		Meetings: summaries,
	}
}

func (v *meetingValidatorImpl) roomSuggestions(ctx context.Context, draft meeting.Draft, avail *RoomAvailability) []conflict.Suggestion {
	var suggestions []conflict.Suggestion

	for i, alt := range avail.AlternativeRooms {
		if i >= maxRoomChangeSuggestions {
			break
		}
		suggestions = append(suggestions, conflict.Suggestion{
			ID:          fmt.Sprintf("room-change-%s", alt.ID()),
			Type:        conflict.SuggestRoomChange,
			Description: fmt.Sprintf("Move to room %q (capacity %d)", alt.Name(), alt.Capacity()),
			Action:      conflict.Action{Field: "roomId", Value: alt.ID().String()},
			Priority:    conflict.PriorityRoomFix,
		})
	}

	if slot, ok := v.nearestFreeSlot(ctx, draft, func(probeCtx context.Context, rng schedule.TimeRange) bool {
		probe, err := v.availability.CheckRoomAvailability(probeCtx, avail.Room.ID(), rng, draft.ID())
		return err == nil && probe.IsAvailable
	}); ok {
		suggestions = append(suggestions, timeChangeSuggestion(slot, conflict.PriorityRoomFix,
			fmt.Sprintf("Keep room %q by moving to %s", avail.Room.Name(), slot.Start().Format("15:04"))))
	}

	return suggestions
}

func (v *meetingValidatorImpl) capacitySuggestions(ctx context.Context, draft meeting.Draft) []conflict.Suggestion {
	slot, ok := v.nearestFreeSlot(ctx, draft, func(probeCtx context.Context, rng schedule.TimeRange) bool {
		probe, err := v.capacity.CheckConcurrentMeetingCapacity(probeCtx, rng, draft.ID())
		return err == nil && probe.HasAvailableAccount
	})
	if !ok {
		return nil
	}
	return []conflict.Suggestion{timeChangeSuggestion(slot, conflict.PriorityCapacityFix,
		fmt.Sprintf("A video account is free at %s", slot.Start().Format("15:04")))}
}

// nearestFreeSlot probes the same duration at fixed offsets around the
// requested range, up to the configured window. A bounded approximation of
// slot search, not an exhaustive scan.
func (v *meetingValidatorImpl) nearestFreeSlot(ctx context.Context, draft meeting.Draft, isFree func(context.Context, schedule.TimeRange) bool) (schedule.TimeRange, bool) {
	step := v.cfg.SlotStep
	if step <= 0 {
		step = 30 * time.Minute
	}
	now := v.clock.Now()
	for offset := step; offset <= v.cfg.SlotWindow; offset += step {
		for _, shifted := range []schedule.TimeRange{draft.Range().Shift(offset), draft.Range().Shift(-offset)} {
			if shifted.Start().Before(now) {
				continue
			}
			if ctx.Err() != nil {
				return schedule.TimeRange{}, false
			}
			if isFree(ctx, shifted) {
				return shifted, true
			}
		}
	}
	return schedule.TimeRange{}, false
}

func timeChangeSuggestion(slot schedule.TimeRange, priority int, description string) conflict.Suggestion {
	return conflict.Suggestion{
		ID:          fmt.Sprintf("time-change-%d", slot.Start().Unix()),
		Type:        conflict.SuggestTimeChange,
		Description: description,
		Action: conflict.Action{
			Field: "startTime",
			Value: slot.Start().Format(time.RFC3339),
			AdditionalChanges: map[string]string{
				"endTime": slot.End().Format(time.RFC3339),
			},
		},
		Priority: priority,
	}
}

func typeChangeSuggestion() conflict.Suggestion {
	return conflict.Suggestion{
		ID:          "type-change-online",
		Type:        conflict.SuggestTypeChange,
		Description: "Switch to a fully online meeting, which needs no room",
		Action:      conflict.Action{Field: "meetingType", Value: string(meeting.TypeOnline)},
		Priority:    conflict.PriorityTypeChange,
	}
}
