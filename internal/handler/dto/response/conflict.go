package response

import (
	"meetingsync/internal/domain/conflict"
)

type ValidateMeetingResponse struct {
	Conflicts   []conflict.Info       `json:"conflicts"`
	CanSubmit   bool                  `json:"canSubmit"`
	Suggestions []conflict.Suggestion `json:"suggestions"`
}

func FromConflictResult(result *conflict.Result) *ValidateMeetingResponse {
	conflicts := result.Conflicts
	if conflicts == nil {
		conflicts = []conflict.Info{}
	}
	suggestions := result.Suggestions
	if suggestions == nil {
		suggestions = []conflict.Suggestion{}
	}
	return &ValidateMeetingResponse{
		Conflicts:   conflicts,
		CanSubmit:   result.CanSubmit,
		Suggestions: suggestions,
	}
}
