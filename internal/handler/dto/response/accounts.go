package response

import (
	"meetingsync/internal/domain/schedule"
	"meetingsync/internal/domain/videoaccount"
	"meetingsync/internal/usecase"

	"github.com/google/uuid"
)

type CapacityResponse struct {
	TotalAccounts       int                `json:"totalAccounts"`
	TotalMaxConcurrent  int                `json:"totalMaxConcurrent"`
	CurrentTotalUsage   int                `json:"currentTotalUsage"`
	AvailableSlots      int                `json:"availableSlots"`
	HasAvailableAccount bool               `json:"hasAvailableAccount"`
	SuggestedAccountID  *uuid.UUID         `json:"suggestedAccountId,omitempty"`
	ConflictingMeetings []schedule.Summary `json:"conflictingMeetings"`
}

func FromCapacityResult(result *usecase.CapacityResult) *CapacityResponse {
	summaries := make([]schedule.Summary, len(result.ConflictingMeetings))
	for i, m := range result.ConflictingMeetings {
		summaries[i] = m.Summarize()
	}
	resp := &CapacityResponse{
		TotalAccounts:       result.TotalAccounts,
		TotalMaxConcurrent:  result.TotalMaxConcurrent,
		CurrentTotalUsage:   result.CurrentTotalUsage,
		AvailableSlots:      result.AvailableSlots,
		HasAvailableAccount: result.HasAvailableAccount,
		ConflictingMeetings: summaries,
	}
	if result.SuggestedAccount != nil {
		id := result.SuggestedAccount.ID()
		resp.SuggestedAccountID = &id
	}
	return resp
}

type AccountLoadResponse struct {
	Accounts []videoaccount.LoadInfo `json:"accounts"`
}
