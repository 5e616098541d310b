package models

// HoursRange is a stored delivery window in minutes from midnight
// (e.g., 840 for 2:00 PM). End may be numerically smaller than Start for
// windows that run past midnight.
type HoursRange struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// WeeklyHours maps a lowercase weekday name ("monday".."sunday") to that
// day's delivery windows. Missing or empty days are closed.
type WeeklyHours map[string][]HoursRange

// Weekdays lists the recognised day keys in schedule order.
var Weekdays = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// IsWeekday reports whether day is one of the recognised lowercase keys.
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// DaySchedule is one rendered line of a consolidated schedule.
type DaySchedule struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

// ScheduleResponse is the consolidated delivery hours for a venue, days in
// monday..sunday order with "Closed" for days without windows.
type ScheduleResponse struct {
	VenueID  string        `json:"venueId"`
	Schedule []DaySchedule `json:"schedule"`
}

// SetHoursRequest is the payload for replacing a venue's weekly hours.
type SetHoursRequest struct {
	WeeklyHours WeeklyHours `json:"weeklyHours" binding:"required"`
}

// OpenAtResponse answers whether a venue delivers at a given day and time.
type OpenAtResponse struct {
	VenueID string `json:"venueId"`
	Day     string `json:"day"`
	Time    string `json:"time"`
	Open    bool   `json:"open"`
}
