package schedule

import (
	"fmt"
	"time"

	"meetingsync/internal/pkg/errs"
)

// TimeRange is a half-open interval [Start, End). End must be strictly after
// Start; NewTimeRange enforces this, Overlaps does not re-validate so it stays
// cheap inside scan loops.
type TimeRange struct {
	start time.Time
	end   time.Time
}

func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if !end.After(start) {
		return TimeRange{}, errs.Mark(
			errs.New(fmt.Sprintf("time range end %s is not after start %s", end.Format(time.RFC3339), start.Format(time.RFC3339))),
			errs.ErrInvalidTimeRange,
		)
	}
	return TimeRange{start: start, end: end}, nil
}

func (r TimeRange) Start() time.Time {
	return r.start
}

func (r TimeRange) End() time.Time {
	return r.end
}

// Overlaps reports whether the two ranges share at least one instant.
// Touching endpoints (a.end == b.start) do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.start.Before(other.end) && other.start.Before(r.end)
}

func (r TimeRange) Contains(other TimeRange) bool {
	return !r.start.After(other.start) && !r.end.Before(other.end)
}

func (r TimeRange) Duration() time.Duration {
	return r.end.Sub(r.start)
}

func (r TimeRange) Hours() float64 {
	return r.Duration().Hours()
}

// Shift returns the range moved by d, keeping the duration.
func (r TimeRange) Shift(d time.Duration) TimeRange {
	return TimeRange{start: r.start.Add(d), end: r.end.Add(d)}
}

func (r TimeRange) String() string {
	return fmt.Sprintf("[%s,%s)", r.start.Format(time.RFC3339), r.end.Format(time.RFC3339))
}
