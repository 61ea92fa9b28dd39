// Package conflict holds the transient result types of a validation pass.
// Everything here is produced fresh per call and never persisted.
package conflict

import (
	"sort"

	"meetingsync/internal/domain/schedule"
)

type Type string

const (
	TypeRoomConflict Type = "ROOM_CONFLICT"
	TypeZoomCapacity Type = "ZOOM_CAPACITY"
	TypeMissingRoom  Type = "MISSING_ROOM"
	TypeInvalidType  Type = "INVALID_TYPE"
	TypeOverlap      Type = "OVERLAP"
)

type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

// Info is one detected incompatibility between a proposed meeting and
// existing bookings or business rules.
type Info struct {
	Type             Type               `json:"type"`
	Severity         Severity           `json:"severity"`
	Message          string             `json:"message"`
	AffectedResource string             `json:"affectedResource,omitempty"`
	Meetings         []schedule.Summary `json:"conflictingMeetings,omitempty"`
	Suggestions      []string           `json:"suggestions,omitempty"`
}

func (i Info) Blocks() bool {
	return i.Severity == SeverityError
}

type SuggestionType string

const (
	SuggestTimeChange SuggestionType = "TIME_CHANGE"
	SuggestRoomChange SuggestionType = "ROOM_CHANGE"
	SuggestTypeChange SuggestionType = "TYPE_CHANGE"
)

// Suggestion priorities. Lower value ranks first: changing the proposed
// resource is less disruptive to the organizer than changing the meeting's
// nature.
const (
	PriorityRoomFix     = 10
	PriorityCapacityFix = 20
	PriorityTypeChange  = 30
)

// Action is the concrete form-field edit a suggestion proposes.
type Action struct {
	Field             string            `json:"field"`
	Value             string            `json:"value"`
	AdditionalChanges map[string]string `json:"additionalChanges,omitempty"`
}

type Suggestion struct {
	ID          string         `json:"id"`
	Type        SuggestionType `json:"type"`
	Description string         `json:"description"`
	Action      Action         `json:"action"`
	Priority    int            `json:"priority"`
}

// Result is the verdict of one validation pass. CanSubmit is false iff any
// conflict carries ERROR severity.
type Result struct {
	Conflicts   []Info       `json:"conflicts"`
	CanSubmit   bool         `json:"canSubmit"`
	Suggestions []Suggestion `json:"suggestions"`
}

func NewResult(conflicts []Info, suggestions []Suggestion) Result {
	canSubmit := true
	for _, c := range conflicts {
		if c.Blocks() {
			canSubmit = false
			break
		}
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Priority < suggestions[j].Priority
	})
	return Result{Conflicts: conflicts, CanSubmit: canSubmit, Suggestions: suggestions}
}
