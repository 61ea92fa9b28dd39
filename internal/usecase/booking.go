package usecase

import (
	"context"
	"log/slog"

	"meetingsync/internal/domain/conflict"
	"meetingsync/internal/domain/meeting"
	"meetingsync/internal/domain/schedule"
	"meetingsync/internal/domain/videoaccount"
	"meetingsync/internal/pkg/errs"
)

// BookingResult carries the validation verdict and, when a hosted session was
// created, the allocated account and join credentials.
type BookingResult struct {
	Validation *conflict.Result
	Account    *videoaccount.Account
	Session    *HostedSession
}

// BookingService commits a validated meeting against the video provider. It
// is the only consumer of SessionProvider; the detection engine itself never
// talks to the provider.
type BookingService interface {
	BookMeeting(ctx context.Context, draft meeting.Draft) (*BookingResult, error)
	RescheduleSession(ctx context.Context, accountRef, sessionID string, rng schedule.TimeRange) error
	CancelSession(ctx context.Context, accountRef, sessionID string) error
}

type bookingServiceImpl struct {
	validator MeetingValidator
	capacity  CapacityService
	provider  SessionProvider
	logger    *slog.Logger
}

func NewBookingService(
	validator MeetingValidator,
	capacity CapacityService,
	provider SessionProvider,
	logger *slog.Logger,
) BookingService {
	return &bookingServiceImpl{
		validator: validator,
		capacity:  capacity,
		provider:  provider,
		logger:    logger,
	}
}

// BookMeeting runs a full validation pass and, when the draft passes and has
// a remote leg, allocates the least-loaded account and creates a hosted
// session on it. A draft that fails validation gets the conflict report back
// without touching the provider.
func (s *bookingServiceImpl) BookMeeting(ctx context.Context, draft meeting.Draft) (*BookingResult, error) {
	validation, err := s.validator.ValidateMeeting(ctx, draft)
	if err != nil {
		return nil, err
	}
	result := &BookingResult{Validation: validation}
	if !validation.CanSubmit || !draft.Type().RequiresVideo() {
		return result, nil
	}

	account, err := s.capacity.GetLeastLoadedAccount(ctx, draft.Range())
	if err != nil {
		return nil, err
	}
	if account == nil {
		// validation passing guarantees headroom somewhere, so this only
		// happens when the roster changed between the two reads
		return nil, errs.Mark(errs.New("no video account available for booking"), errs.ErrProviderUnavailable)
	}

	session, err := s.provider.CreateSession(ctx, account.ExternalRef(), draft.Title(), draft.Range())
	if err != nil {
		return nil, err
	}
	s.logger.Info("hosted session created",
		"account_ref", account.ExternalRef(), "session_id", session.ID)

	result.Account = account
	result.Session = &session
	return result, nil
}

func (s *bookingServiceImpl) RescheduleSession(ctx context.Context, accountRef, sessionID string, rng schedule.TimeRange) error {
	return s.provider.UpdateSession(ctx, accountRef, sessionID, rng)
}

func (s *bookingServiceImpl) CancelSession(ctx context.Context, accountRef, sessionID string) error {
	return s.provider.DeleteSession(ctx, accountRef, sessionID)
}
