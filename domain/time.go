package domain

import "fmt"

const (
	MaxHours     = 23
	MaxMinutes   = 59
	MinutesInDay = 1440
	SecondsInDay = 86400
)

// Time is an immutable clock time within a single day. It carries no date or
// time zone; ordering and equality are defined entirely by minutes since
// midnight.
type Time struct {
	hours   int
	minutes int
	msm     int // minutes since midnight, derived once at construction
}

// NewTime builds a Time from an hour/minute pair.
func NewTime(hours, minutes int) (Time, error) {
	if hours < 0 || hours > MaxHours {
		return Time{}, &InvalidTimeError{
			Field:   "hours",
			Value:   hours,
			Message: fmt.Sprintf("hours must be between 0 and %d", MaxHours),
		}
	}
	if minutes < 0 || minutes > MaxMinutes {
		return Time{}, &InvalidTimeError{
			Field:   "minutes",
			Value:   minutes,
			Message: fmt.Sprintf("minutes must be between 0 and %d", MaxMinutes),
		}
	}
	return Time{hours: hours, minutes: minutes, msm: hours*60 + minutes}, nil
}

// TimeFromMinuteOfDay builds a Time from a minute-of-day value in [0,1439].
func TimeFromMinuteOfDay(minuteOfDay int) (Time, error) {
	if minuteOfDay < 0 || minuteOfDay >= MinutesInDay {
		return Time{}, &InvalidTimeError{
			Field:   "minuteOfDay",
			Value:   minuteOfDay,
			Message: fmt.Sprintf("minute of day must be between 0 and %d", MinutesInDay-1),
		}
	}
	return NewTime(minuteOfDay/60, minuteOfDay%60)
}

// TimeFromSecondOfDay builds a Time from a second-of-day value in [0,86399].
// Sub-minute precision is discarded, not rounded.
func TimeFromSecondOfDay(secondOfDay int) (Time, error) {
	if secondOfDay < 0 || secondOfDay >= SecondsInDay {
		return Time{}, &InvalidTimeError{
			Field:   "secondOfDay",
			Value:   secondOfDay,
			Message: fmt.Sprintf("second of day must be between 0 and %d", SecondsInDay-1),
		}
	}
	return TimeFromMinuteOfDay(secondOfDay / 60)
}

func (t Time) Hours() int   { return t.hours }
func (t Time) Minutes() int { return t.minutes }

// MinutesSinceMidnight returns the minute-of-day scalar in [0,1439].
func (t Time) MinutesSinceMidnight() int { return t.msm }

// AddMinutes returns the time n minutes later, wrapping across midnight in
// either direction. Total over all n, including negatives.
func (t Time) AddMinutes(n int) Time {
	msm := (t.msm + n) % MinutesInDay
	if msm < 0 {
		msm += MinutesInDay
	}
	return Time{hours: msm / 60, minutes: msm % 60, msm: msm}
}

// SubtractMinutes returns the time n minutes earlier.
func (t Time) SubtractMinutes(n int) Time {
	return t.AddMinutes(-n)
}

func (t Time) Before(other Time) bool { return t.msm < other.msm }
func (t Time) After(other Time) bool  { return t.msm > other.msm }
func (t Time) Equal(other Time) bool  { return t.msm == other.msm }

// Format renders "HH" when the minutes component is zero, otherwise "HH:MM",
// both zero-padded. 14:00 -> "14", 9:05 -> "09:05".
func (t Time) Format() string {
	if t.minutes == 0 {
		return fmt.Sprintf("%02d", t.hours)
	}
	return fmt.Sprintf("%02d:%02d", t.hours, t.minutes)
}

func (t Time) String() string { return t.Format() }
