//go:build unit

package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"meetingsync/internal/domain/schedule"
	"meetingsync/internal/domain/videoaccount"
	"meetingsync/internal/pkg/clock"
	"meetingsync/internal/pkg/ttlcache"
	"meetingsync/internal/usecase"
	"meetingsync/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCapacity(reader *fakeReader, clk clock.Clock) usecase.CapacityService {
	if clk == nil {
		clk = clock.NewMockClock(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	}
	directory := usecase.NewDirectory(reader)
	cache := ttlcache.New[[]videoaccount.Account](5*time.Minute, clk)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return usecase.NewCapacityService(directory, reader, cache, logger)
}

func TestCheckConcurrentMeetingCapacity(t *testing.T) {
	rng := func(t *testing.T) schedule.TimeRange { return mustRange(t, at(10, 0), at(11, 0)) }

	t.Run("three idle accounts", func(t *testing.T) {
		reader := newFakeReader()
		for i := 0; i < 3; i++ {
			reader.accounts = append(reader.accounts, builder.NewAccountBuilder().MustBuild())
		}

		svc := newCapacity(reader, nil)
		result, err := svc.CheckConcurrentMeetingCapacity(context.Background(), rng(t), nil)
		require.NoError(t, err)

		assert.Equal(t, 3, result.TotalAccounts)
		assert.Equal(t, 6, result.TotalMaxConcurrent)
		assert.Equal(t, 0, result.CurrentTotalUsage)
		assert.Equal(t, 6, result.AvailableSlots)
		assert.True(t, result.HasAvailableAccount)
		require.NotNil(t, result.SuggestedAccount)
		assert.Empty(t, result.ConflictingMeetings)
	})

	t.Run("single account at cap via exact match and containment", func(t *testing.T) {
		account := builder.NewAccountBuilder().MustBuild()
		reader := newFakeReader()
		reader.accounts = []videoaccount.Account{account}
		reader.accountMeetings[account.ID()] = []schedule.Meeting{
			// exact match of the queried range
			builder.NewMeetingBuilder().WithRange(at(10, 0), at(11, 0)).WithAccount(account.ID()).Build(),
			// fully contains the queried range
			builder.NewMeetingBuilder().WithRange(at(9, 0), at(12, 0)).WithAccount(account.ID()).Build(),
		}

		svc := newCapacity(reader, nil)
		result, err := svc.CheckConcurrentMeetingCapacity(context.Background(), rng(t), nil)
		require.NoError(t, err)

		assert.Equal(t, 2, result.CurrentTotalUsage)
		assert.False(t, result.HasAvailableAccount)
		assert.Nil(t, result.SuggestedAccount)
		assert.Len(t, result.ConflictingMeetings, 2)
	})

	t.Run("per-account gating suggests the account with headroom", func(t *testing.T) {
		full := builder.NewAccountBuilder().WithExternalRef("full@example.com").MustBuild()
		spare := builder.NewAccountBuilder().WithExternalRef("spare@example.com").MustBuild()

		reader := newFakeReader()
		reader.accounts = []videoaccount.Account{full, spare}
		reader.accountMeetings[full.ID()] = []schedule.Meeting{
			builder.NewMeetingBuilder().WithRange(at(10, 0), at(11, 0)).WithAccount(full.ID()).Build(),
			builder.NewMeetingBuilder().WithRange(at(10, 30), at(11, 30)).WithAccount(full.ID()).Build(),
		}
		reader.accountMeetings[spare.ID()] = []schedule.Meeting{
			builder.NewMeetingBuilder().WithRange(at(10, 0), at(11, 0)).WithAccount(spare.ID()).Build(),
		}

		svc := newCapacity(reader, nil)
		result, err := svc.CheckConcurrentMeetingCapacity(context.Background(), rng(t), nil)
		require.NoError(t, err)

		assert.Equal(t, 3, result.CurrentTotalUsage)
		assert.Equal(t, 1, result.AvailableSlots)
		assert.True(t, result.HasAvailableAccount)
		require.NotNil(t, result.SuggestedAccount)
		assert.Equal(t, spare.ID(), result.SuggestedAccount.ID())
	})

	t.Run("zero accounts configured", func(t *testing.T) {
		svc := newCapacity(newFakeReader(), nil)
		result, err := svc.CheckConcurrentMeetingCapacity(context.Background(), rng(t), nil)
		require.NoError(t, err)

		assert.Equal(t, 0, result.TotalAccounts)
		assert.Equal(t, 0, result.TotalMaxConcurrent)
		assert.Equal(t, 0, result.AvailableSlots)
		assert.False(t, result.HasAvailableAccount)
	})

	t.Run("capacity conservation", func(t *testing.T) {
		a := builder.NewAccountBuilder().WithMaxConcurrent(3).MustBuild()
		b := builder.NewAccountBuilder().WithMaxConcurrent(1).MustBuild()
		reader := newFakeReader()
		reader.accounts = []videoaccount.Account{a, b}
		reader.accountMeetings[a.ID()] = []schedule.Meeting{
			builder.NewMeetingBuilder().WithRange(at(10, 0), at(10, 30)).WithAccount(a.ID()).Build(),
		}

		svc := newCapacity(reader, nil)
		result, err := svc.CheckConcurrentMeetingCapacity(context.Background(), rng(t), nil)
		require.NoError(t, err)

		assert.Equal(t, a.MaxConcurrent()+b.MaxConcurrent(), result.TotalMaxConcurrent)
		assert.Equal(t, result.TotalMaxConcurrent-result.CurrentTotalUsage, result.AvailableSlots)
	})

	t.Run("excludes the meeting being edited", func(t *testing.T) {
		account := builder.NewAccountBuilder().MustBuild()
		existing := builder.NewMeetingBuilder().WithRange(at(10, 0), at(11, 0)).WithAccount(account.ID()).Build()

		reader := newFakeReader()
		reader.accounts = []videoaccount.Account{account}
		reader.accountMeetings[account.ID()] = []schedule.Meeting{existing}

		svc := newCapacity(reader, nil)
		result, err := svc.CheckConcurrentMeetingCapacity(context.Background(), mustRange(t, at(10, 0), at(11, 0)), &existing.ID)
		require.NoError(t, err)

		assert.Equal(t, 0, result.CurrentTotalUsage)
		assert.True(t, result.HasAvailableAccount)
	})
}

func TestCountConcurrentMeetingsSkipsMalformedRows(t *testing.T) {
	account := builder.NewAccountBuilder().MustBuild()
	reader := newFakeReader()
	reader.accounts = []videoaccount.Account{account}
	reader.accountMeetings[account.ID()] = []schedule.Meeting{
		builder.NewMeetingBuilder().WithRange(at(10, 0), at(11, 0)).WithAccount(account.ID()).Build(),
		builder.NewMeetingBuilder().Malformed().WithAccount(account.ID()).Build(),
	}

	svc := newCapacity(reader, nil)
	count, err := svc.CountConcurrentMeetings(context.Background(), account.ID(), mustRange(t, at(10, 0), at(11, 0)), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGetAccountLoadBalancing(t *testing.T) {
	busy := builder.NewAccountBuilder().WithExternalRef("busy@example.com").MustBuild()
	idle := builder.NewAccountBuilder().WithExternalRef("idle@example.com").MustBuild()

	reader := newFakeReader()
	reader.accounts = []videoaccount.Account{busy, idle}
	reader.accountMeetings[busy.ID()] = []schedule.Meeting{
		builder.NewMeetingBuilder().WithRange(at(10, 0), at(11, 0)).WithAccount(busy.ID()).Build(),
	}

	svc := newCapacity(reader, nil)
	loads, err := svc.GetAccountLoadBalancing(context.Background(), mustRange(t, at(10, 0), at(11, 0)))
	require.NoError(t, err)

	require.Len(t, loads, 2)
	assert.Equal(t, idle.ID(), loads[0].AccountID)
	assert.Equal(t, 0, loads[0].UtilizationPercent)
	assert.Equal(t, busy.ID(), loads[1].AccountID)
	assert.Equal(t, 50, loads[1].UtilizationPercent)

	least, err := svc.GetLeastLoadedAccount(context.Background(), mustRange(t, at(10, 0), at(11, 0)))
	require.NoError(t, err)
	require.NotNil(t, least)
	assert.Equal(t, idle.ID(), least.ID())
}

func TestGetLeastLoadedAccountNoAccounts(t *testing.T) {
	svc := newCapacity(newFakeReader(), nil)
	least, err := svc.GetLeastLoadedAccount(context.Background(), mustRange(t, at(10, 0), at(11, 0)))
	require.NoError(t, err)
	assert.Nil(t, least)
}

func TestAccountCache(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	reader := newFakeReader()
	reader.accounts = []videoaccount.Account{builder.NewAccountBuilder().MustBuild()}

	svc := newCapacity(reader, clk)

	_, err := svc.GetAvailableAccounts(context.Background())
	require.NoError(t, err)
	_, err = svc.GetAvailableAccounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, reader.listAccountCalls, "second read must hit the cache")

	t.Run("TTL expiry triggers refetch", func(t *testing.T) {
		clk.Add(5 * time.Minute)
		_, err := svc.GetAvailableAccounts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, reader.listAccountCalls)
	})

	t.Run("clear forces refetch", func(t *testing.T) {
		svc.ClearCache()
		assert.True(t, svc.CacheStats().IsExpired)

		_, err := svc.GetAvailableAccounts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 3, reader.listAccountCalls)
		assert.Equal(t, 1, svc.CacheStats().Size)
	})
}
