package response

import (
	"meetingsync/internal/usecase"
)

type SessionResponse struct {
	ID       string `json:"id"`
	JoinURL  string `json:"joinUrl"`
	Passcode string `json:"passcode,omitempty"`
}

type BookMeetingResponse struct {
	Validation *ValidateMeetingResponse `json:"validation"`
	AccountRef string                   `json:"accountRef,omitempty"`
	Session    *SessionResponse         `json:"session,omitempty"`
}

func FromBookingResult(result *usecase.BookingResult) *BookMeetingResponse {
	resp := &BookMeetingResponse{
		Validation: FromConflictResult(result.Validation),
	}
	if result.Account != nil {
		resp.AccountRef = result.Account.ExternalRef()
	}
	if result.Session != nil {
		resp.Session = &SessionResponse{
			ID:       result.Session.ID,
			JoinURL:  result.Session.JoinURL,
			Passcode: result.Session.Passcode,
		}
	}
	return resp
}
