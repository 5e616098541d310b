package hours

import (
	"context"
	"encoding/json"
	"fmt"

	"deliveryhours/models"
	"deliveryhours/utils"

	"go.uber.org/zap"
)

func scheduleCacheKey(venueID string) string {
	return fmt.Sprintf("schedule:%s", venueID)
}

// cachedSchedule reads the consolidated schedule from Redis. Cache failures
// are logged and treated as misses; the database remains the source of truth.
func (s *DefaultHoursService) cachedSchedule(ctx context.Context, venueID string) (*models.ScheduleResponse, bool) {
	if s.Cache == nil {
		return nil, false
	}

	raw, err := s.Cache.Get(ctx, scheduleCacheKey(venueID)).Bytes()
	if err != nil {
		return nil, false
	}

	var resp models.ScheduleResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		utils.GetLogger().Warn("dropping unreadable schedule cache entry",
			zap.String("venueId", venueID), zap.Error(err))
		s.Cache.Del(ctx, scheduleCacheKey(venueID))
		return nil, false
	}
	return &resp, true
}

func (s *DefaultHoursService) storeSchedule(ctx context.Context, venueID string, resp *models.ScheduleResponse) {
	if s.Cache == nil {
		return
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, scheduleCacheKey(venueID), raw, utils.ScheduleCacheTTL()).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache schedule",
			zap.String("venueId", venueID), zap.Error(err))
	}
}

func (s *DefaultHoursService) invalidateSchedule(ctx context.Context, venueID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, scheduleCacheKey(venueID)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate schedule cache",
			zap.String("venueId", venueID), zap.Error(err))
	}
}
