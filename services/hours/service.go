package hours

import (
	"context"
	"fmt"
	"strings"

	"deliveryhours/domain"
	"deliveryhours/models"
	"deliveryhours/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultHoursService) CreateVenue(ctx context.Context, req models.CreateVenueRequest) (*models.Venue, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, newValidationError("name", "venue name is required")
	}

	venue := &models.Venue{
		ID:          uuid.NewString(),
		Name:        name,
		Address:     strings.TrimSpace(req.Address),
		Active:      true,
		WeeklyHours: models.WeeklyHours{},
	}
	if err := s.Repo.Create(ctx, venue); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("venue created",
		zap.String("venueId", venue.ID), zap.String("name", venue.Name))
	return venue, nil
}

func (s *DefaultHoursService) GetVenue(ctx context.Context, venueID string) (*models.Venue, error) {
	return s.Repo.GetByID(ctx, venueID)
}

func (s *DefaultHoursService) ListVenues(ctx context.Context, activeOnly bool) ([]models.Venue, error) {
	return s.Repo.List(ctx, activeOnly)
}

// SetVenueActive flips a venue's active flag. Deactivated venues drop out of
// the active listing and lose their cached schedule.
func (s *DefaultHoursService) SetVenueActive(ctx context.Context, venueID string, active bool) error {
	if err := s.Repo.SetActive(ctx, venueID, active); err != nil {
		return err
	}
	s.invalidateSchedule(ctx, venueID)

	utils.GetLogger().Info("venue active flag updated",
		zap.String("venueId", venueID), zap.Bool("active", active))
	return nil
}

func (s *DefaultHoursService) DeleteVenue(ctx context.Context, venueID string) error {
	if err := s.Repo.DeleteByID(ctx, venueID); err != nil {
		return err
	}
	s.invalidateSchedule(ctx, venueID)
	return nil
}

// SetWeeklyHours replaces a venue's hours after validating every window
// through the domain rules (known weekday, valid minute-of-day endpoints,
// minimum duration). Fail-fast: the first bad window rejects the whole
// payload and nothing is stored.
func (s *DefaultHoursService) SetWeeklyHours(ctx context.Context, venueID string, weekly models.WeeklyHours) error {
	if err := validateWeeklyHours(weekly); err != nil {
		return err
	}
	if err := s.Repo.UpdateWeeklyHours(ctx, venueID, weekly); err != nil {
		return err
	}
	s.invalidateSchedule(ctx, venueID)

	utils.GetLogger().Info("weekly hours updated", zap.String("venueId", venueID))
	return nil
}

func (s *DefaultHoursService) GetWeeklyHours(ctx context.Context, venueID string) (models.WeeklyHours, error) {
	venue, err := s.Repo.GetByID(ctx, venueID)
	if err != nil {
		return nil, err
	}
	return venue.WeeklyHours, nil
}

// ConsolidatedSchedule returns the week's delivery hours with overlapping and
// adjacent windows merged, one rendered line per day. Results are cached.
func (s *DefaultHoursService) ConsolidatedSchedule(ctx context.Context, venueID string) (*models.ScheduleResponse, error) {
	if cached, ok := s.cachedSchedule(ctx, venueID); ok {
		return cached, nil
	}

	venue, err := s.Repo.GetByID(ctx, venueID)
	if err != nil {
		return nil, err
	}

	schedule, err := consolidateWeekly(venue.WeeklyHours)
	if err != nil {
		// Stored hours are validated on write; a failure here means the
		// document was modified out of band.
		return nil, fmt.Errorf("stored hours for venue %s are corrupt: %w", venueID, err)
	}

	resp := &models.ScheduleResponse{VenueID: venueID, Schedule: schedule}
	s.storeSchedule(ctx, venueID, resp)
	return resp, nil
}

// RefreshSchedules recomputes and re-caches the consolidated schedule for
// every active venue, reporting how many were refreshed. Venues whose stored
// hours no longer validate are logged and skipped rather than failing the
// whole sweep.
func (s *DefaultHoursService) RefreshSchedules(ctx context.Context) (int, error) {
	venues, err := s.Repo.List(ctx, true)
	if err != nil {
		return 0, err
	}

	refreshed := 0
	for _, venue := range venues {
		schedule, err := consolidateWeekly(venue.WeeklyHours)
		if err != nil {
			utils.GetLogger().Warn("skipping venue with corrupt stored hours",
				zap.String("venueId", venue.ID), zap.Error(err))
			continue
		}
		s.storeSchedule(ctx, venue.ID, &models.ScheduleResponse{
			VenueID:  venue.ID,
			Schedule: schedule,
		})
		refreshed++
	}
	return refreshed, nil
}

// OpenAt reports whether the venue delivers at the given clock time on the
// given weekday. An overnight window answers for the same day's late-evening
// and small-hours times, matching the range's own wraparound semantics.
func (s *DefaultHoursService) OpenAt(ctx context.Context, venueID, day string, clock domain.Time) (bool, error) {
	if !models.IsWeekday(day) {
		return false, newValidationError("day", "unknown weekday %q", day)
	}

	venue, err := s.Repo.GetByID(ctx, venueID)
	if err != nil {
		return false, err
	}

	ranges, err := dayRanges(venue.WeeklyHours[day])
	if err != nil {
		return false, fmt.Errorf("stored hours for venue %s are corrupt: %w", venueID, err)
	}
	for _, r := range ranges {
		if r.ContainsTime(clock) {
			return true, nil
		}
	}
	return false, nil
}

func validateWeeklyHours(weekly models.WeeklyHours) error {
	for day, ranges := range weekly {
		if !models.IsWeekday(day) {
			return newValidationError("day", "unknown weekday %q", day)
		}
		for i, hr := range ranges {
			field := fmt.Sprintf("%s[%d]", day, i)

			start, err := domain.TimeFromMinuteOfDay(hr.Start)
			if err != nil {
				return newValidationError(field, "invalid start: %v", err)
			}
			end, err := domain.TimeFromMinuteOfDay(hr.End)
			if err != nil {
				return newValidationError(field, "invalid end: %v", err)
			}
			if _, err := domain.NewTimeRange(start, end); err != nil {
				return newValidationError(field, "invalid window: %v", err)
			}
		}
	}
	return nil
}
