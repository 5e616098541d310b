package hours

import (
	"sort"
	"strings"

	"deliveryhours/domain"
	"deliveryhours/models"
)

// closedMarker is rendered for a day without any delivery windows.
const closedMarker = "Closed"

// dayRanges converts a day's stored windows into validated domain ranges.
func dayRanges(stored []models.HoursRange) ([]domain.TimeRange, error) {
	ranges := make([]domain.TimeRange, 0, len(stored))
	for _, hr := range stored {
		start, err := domain.TimeFromMinuteOfDay(hr.Start)
		if err != nil {
			return nil, err
		}
		end, err := domain.TimeFromMinuteOfDay(hr.End)
		if err != nil {
			return nil, err
		}
		r, err := domain.NewTimeRange(start, end)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// consolidateRanges folds overlapping and adjacent ranges into the fewest
// windows covering the same time. Merging two ranges can make a third
// mergeable, so the fold runs to a fixpoint.
func consolidateRanges(ranges []domain.TimeRange) []domain.TimeRange {
	if len(ranges) <= 1 {
		return ranges
	}

	merged := make([]domain.TimeRange, len(ranges))
	copy(merged, ranges)

	for {
		combined := false
	scan:
		for i := 0; i < len(merged); i++ {
			for j := i + 1; j < len(merged); j++ {
				if m, ok := merged[i].Merge(merged[j]); ok {
					merged[i] = m
					merged = append(merged[:j], merged[j+1:]...)
					combined = true
					break scan
				}
			}
		}
		if !combined {
			break
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Start().MinutesSinceMidnight() < merged[j].Start().MinutesSinceMidnight()
	})
	return merged
}

// formatDay renders a day's consolidated windows, e.g. "09-12 / 14-20:30",
// or the closed marker when there are none.
func formatDay(ranges []domain.TimeRange) string {
	if len(ranges) == 0 {
		return closedMarker
	}
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = r.Format()
	}
	return strings.Join(parts, " / ")
}

// consolidateWeekly renders the full week in schedule order.
func consolidateWeekly(weekly models.WeeklyHours) ([]models.DaySchedule, error) {
	schedule := make([]models.DaySchedule, 0, len(models.Weekdays))
	for _, day := range models.Weekdays {
		ranges, err := dayRanges(weekly[day])
		if err != nil {
			return nil, err
		}
		schedule = append(schedule, models.DaySchedule{
			Day:   day,
			Hours: formatDay(consolidateRanges(ranges)),
		})
	}
	return schedule, nil
}
