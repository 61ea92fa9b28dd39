package videoaccount

import (
	"errors"
	"math"

	"github.com/google/uuid"
)

// DefaultMaxConcurrent is the per-account concurrent meeting cap applied when
// the catalog does not specify one.
const DefaultMaxConcurrent = 2

var ErrInvalidCapacity = errors.New("account capacity must be positive")

// Account is a video-conferencing account able to host a bounded number of
// concurrent meetings. Current load is never stored on the account; it is
// recomputed from overlapping meetings for every capacity decision.
type Account struct {
	id            uuid.UUID
	externalRef   string
	maxConcurrent int
}

func NewAccount(id uuid.UUID, externalRef string, maxConcurrent int) (Account, error) {
	if maxConcurrent == 0 {
		maxConcurrent = DefaultMaxConcurrent
	}
	if maxConcurrent < 0 {
		return Account{}, ErrInvalidCapacity
	}
	return Account{id: id, externalRef: externalRef, maxConcurrent: maxConcurrent}, nil
}

func (a Account) ID() uuid.UUID       { return a.id }
func (a Account) ExternalRef() string { return a.externalRef }
func (a Account) MaxConcurrent() int  { return a.maxConcurrent }

// LoadInfo is an on-demand snapshot of one account's utilization. Never
// persisted.
type LoadInfo struct {
	AccountID          uuid.UUID `json:"accountId"`
	CurrentLoad        int       `json:"currentLoad"`
	MaxCapacity        int       `json:"maxCapacity"`
	UtilizationPercent int       `json:"utilizationPercentage"`
}

func NewLoadInfo(account Account, currentLoad int) LoadInfo {
	utilization := 0
	if account.maxConcurrent > 0 {
		utilization = int(math.Round(float64(currentLoad) / float64(account.maxConcurrent) * 100))
	}
	return LoadInfo{
		AccountID:          account.id,
		CurrentLoad:        currentLoad,
		MaxCapacity:        account.maxConcurrent,
		UtilizationPercent: utilization,
	}
}

func (l LoadInfo) HasCapacity() bool {
	return l.CurrentLoad < l.MaxCapacity
}
