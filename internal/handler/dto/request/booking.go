package request

import (
	"time"

	"meetingsync/internal/domain/schedule"
)

type RescheduleSessionRequest struct {
	AccountRef string    `json:"accountRef" binding:"required"`
	StartTime  time.Time `json:"startTime" binding:"required"`
	EndTime    time.Time `json:"endTime" binding:"required"`
}

func (r RescheduleSessionRequest) ToRange() (schedule.TimeRange, error) {
	return schedule.NewTimeRange(r.StartTime, r.EndTime)
}
