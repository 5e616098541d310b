package domain

import "fmt"

// InvalidTimeError reports a clock value outside its valid range.
// Field names the offending input ("hours", "minutes", "minuteOfDay",
// "secondOfDay").
type InvalidTimeError struct {
	Field   string
	Value   int
	Message string
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("invalid time: %s (%s=%d)", e.Message, e.Field, e.Value)
}

// InvalidDurationError reports a time range shorter than the minimum
// allowed duration.
type InvalidDurationError struct {
	DurationMinutes int
	MinimumMinutes  int
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("invalid duration: %d minutes is below the %d minute minimum",
		e.DurationMinutes, e.MinimumMinutes)
}
