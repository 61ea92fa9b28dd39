package usecase

import (
	"context"
	"log/slog"
	"sort"

	"meetingsync/internal/domain/schedule"
	"meetingsync/internal/domain/videoaccount"
	"meetingsync/internal/pkg/ttlcache"

	"github.com/google/uuid"
)

// CapacityResult is the aggregate outcome of a concurrent-capacity check
// across every active video account for one time range.
type CapacityResult struct {
	TotalAccounts      int
	TotalMaxConcurrent int
	CurrentTotalUsage  int
	AvailableSlots     int
	// HasAvailableAccount is a per-account check: an account at its own cap
	// does not help even when another account has room.
	HasAvailableAccount bool
	SuggestedAccount    *videoaccount.Account
	// ConflictingMeetings lists every overlapping meeting across all
	// accounts, for display only.
	ConflictingMeetings []schedule.Meeting
}

type CapacityService interface {
	GetAvailableAccounts(ctx context.Context) ([]videoaccount.Account, error)
	CountConcurrentMeetings(ctx context.Context, accountID uuid.UUID, rng schedule.TimeRange, excludeID *uuid.UUID) (int, error)
	CheckConcurrentMeetingCapacity(ctx context.Context, rng schedule.TimeRange, excludeID *uuid.UUID) (*CapacityResult, error)
	GetLeastLoadedAccount(ctx context.Context, rng schedule.TimeRange) (*videoaccount.Account, error)
	GetAccountLoadBalancing(ctx context.Context, rng schedule.TimeRange) ([]videoaccount.LoadInfo, error)
	ClearCache()
	CacheStats() ttlcache.Stats
}

type capacityServiceImpl struct {
	directory Directory
	reader    ScheduleReader
	cache     *ttlcache.Cache[[]videoaccount.Account]
	logger    *slog.Logger
}

func NewCapacityService(directory Directory, reader ScheduleReader, cache *ttlcache.Cache[[]videoaccount.Account], logger *slog.Logger) CapacityService {
	return &capacityServiceImpl{
		directory: directory,
		reader:    reader,
		cache:     cache,
		logger:    logger,
	}
}

// GetAvailableAccounts is cache-first: on miss or TTL expiry the roster is
// refetched from the directory and the cache repopulated. Only the roster is
// cached; load is recomputed per call so capacity decisions stay correct.
func (s *capacityServiceImpl) GetAvailableAccounts(ctx context.Context) ([]videoaccount.Account, error) {
	if accounts, ok := s.cache.Get(); ok {
		return accounts, nil
	}
	accounts, err := s.directory.ListActiveVideoAccounts(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(accounts, len(accounts))
	return accounts, nil
}

// CountConcurrentMeetings counts the account's meetings that overlap rng.
// Malformed stored rows (zero date, non-positive duration) are skipped and
// logged rather than failing the count.
func (s *capacityServiceImpl) CountConcurrentMeetings(ctx context.Context, accountID uuid.UUID, rng schedule.TimeRange, excludeID *uuid.UUID) (int, error) {
	overlapping, err := s.overlappingMeetings(ctx, accountID, rng, excludeID)
	if err != nil {
		return 0, err
	}
	return len(overlapping), nil
}

func (s *capacityServiceImpl) CheckConcurrentMeetingCapacity(ctx context.Context, rng schedule.TimeRange, excludeID *uuid.UUID) (*CapacityResult, error) {
	accounts, err := s.GetAvailableAccounts(ctx)
	if err != nil {
		return nil, err
	}

	result := &CapacityResult{TotalAccounts: len(accounts)}
	bestUtilization := -1
	for _, account := range accounts {
		overlapping, err := s.overlappingMeetings(ctx, account.ID(), rng, excludeID)
		if err != nil {
			return nil, err
		}
		count := len(overlapping)
		result.CurrentTotalUsage += count
		result.TotalMaxConcurrent += account.MaxConcurrent()
		result.ConflictingMeetings = append(result.ConflictingMeetings, overlapping...)

		load := videoaccount.NewLoadInfo(account, count)
		if load.HasCapacity() {
			result.HasAvailableAccount = true
			// ties keep catalog order: first listed wins
			if bestUtilization == -1 || load.UtilizationPercent < bestUtilization {
				bestUtilization = load.UtilizationPercent
				suggested := account
				result.SuggestedAccount = &suggested
			}
		}
	}
	result.AvailableSlots = result.TotalMaxConcurrent - result.CurrentTotalUsage
	return result, nil
}

// GetLeastLoadedAccount picks the lowest-utilization account for rng, the
// selection step of load-balanced booking. Repeated bookings spread evenly
// without a persisted rotation pointer. Returns nil when no account exists.
func (s *capacityServiceImpl) GetLeastLoadedAccount(ctx context.Context, rng schedule.TimeRange) (*videoaccount.Account, error) {
	loads, err := s.GetAccountLoadBalancing(ctx, rng)
	if err != nil {
		return nil, err
	}
	if len(loads) == 0 {
		return nil, nil
	}
	accounts, err := s.GetAvailableAccounts(ctx)
	if err != nil {
		return nil, err
	}
	for _, account := range accounts {
		if account.ID() == loads[0].AccountID {
			found := account
			return &found, nil
		}
	}
	return nil, nil
}

// GetAccountLoadBalancing snapshots every account's load for rng, ascending
// by utilization. Ties keep catalog order (stable sort).
func (s *capacityServiceImpl) GetAccountLoadBalancing(ctx context.Context, rng schedule.TimeRange) ([]videoaccount.LoadInfo, error) {
	accounts, err := s.GetAvailableAccounts(ctx)
	if err != nil {
		return nil, err
	}
	loads := make([]videoaccount.LoadInfo, 0, len(accounts))
	for _, account := range accounts {
		count, err := s.CountConcurrentMeetings(ctx, account.ID(), rng, nil)
		if err != nil {
			return nil, err
		}
		loads = append(loads, videoaccount.NewLoadInfo(account, count))
	}
	sort.SliceStable(loads, func(i, j int) bool {
		return loads[i].UtilizationPercent < loads[j].UtilizationPercent
	})
	return loads, nil
}

func (s *capacityServiceImpl) ClearCache() {
	s.cache.Clear()
}

func (s *capacityServiceImpl) CacheStats() ttlcache.Stats {
	return s.cache.Stats()
}

func (s *capacityServiceImpl) overlappingMeetings(ctx context.Context, accountID uuid.UUID, rng schedule.TimeRange, excludeID *uuid.UUID) ([]schedule.Meeting, error) {
	meetings, err := s.reader.FindAccountMeetings(ctx, accountID, excludeID)
	if err != nil {
		return nil, asDirectoryError(err)
	}
	var overlapping []schedule.Meeting
	for _, m := range meetings {
		mRng, ok := m.Range()
		if !ok {
			s.logger.Warn("skipping malformed stored meeting in capacity scan",
				"meeting_id", m.ID, "account_id", accountID)
			continue
		}
		if mRng.Overlaps(rng) {
			overlapping = append(overlapping, m)
		}
	}
	return overlapping, nil
}
