package domain

import "fmt"

// MinimumDurationMinutes is the shortest representable range. A range below
// this cannot be constructed.
const MinimumDurationMinutes = 30

// TimeRange is an immutable interval between two clock times within a day.
// A range whose end is strictly earlier than its start is overnight: it wraps
// through midnight and covers [start,24:00) plus [00:00,end].
//
// Equal start and end would nominally read as a full day, but the minimum
// duration check rejects it before the overnight rule ever sees it (duration
// zero), so such a range is unconstructible.
type TimeRange struct {
	start       Time
	end         Time
	isOvernight bool
	duration    int
}

// NewTimeRange builds a range from start to end. Overnight detection and
// duration are computed once here; construction fails with
// InvalidDurationError when the range covers less than
// MinimumDurationMinutes.
func NewTimeRange(start, end Time) (TimeRange, error) {
	isOvernight := end.MinutesSinceMidnight() < start.MinutesSinceMidnight()

	var duration int
	if isOvernight {
		duration = (MinutesInDay - start.MinutesSinceMidnight()) + end.MinutesSinceMidnight()
	} else {
		duration = end.MinutesSinceMidnight() - start.MinutesSinceMidnight()
	}

	if duration < MinimumDurationMinutes {
		return TimeRange{}, &InvalidDurationError{
			DurationMinutes: duration,
			MinimumMinutes:  MinimumDurationMinutes,
		}
	}
	return TimeRange{start: start, end: end, isOvernight: isOvernight, duration: duration}, nil
}

func (r TimeRange) Start() Time { return r.start }
func (r TimeRange) End() Time   { return r.end }

// IsOvernight reports whether the range crosses midnight.
func (r TimeRange) IsOvernight() bool { return r.isOvernight }

// DurationMinutes returns the covered length in minutes.
func (r TimeRange) DurationMinutes() int { return r.duration }

// ContainsTime reports whether t falls within the range, endpoints included.
// An overnight range is the union of [start,24:00) and [00:00,end].
func (r TimeRange) ContainsTime(t Time) bool {
	if r.isOvernight {
		return !t.Before(r.start) || !t.After(r.end)
	}
	return !t.Before(r.start) && !t.After(r.end)
}

// OverlapsWith reports whether the two ranges share any time. When either
// side is overnight the test is by endpoint containment, and two overnight
// ranges always overlap since both include midnight. Two regular ranges use
// the standard closed-interval test, so touching endpoints count as overlap.
func (r TimeRange) OverlapsWith(other TimeRange) bool {
	if r.isOvernight || other.isOvernight {
		if r.ContainsTime(other.start) || r.ContainsTime(other.end) ||
			other.ContainsTime(r.start) || other.ContainsTime(r.end) {
			return true
		}
		return r.isOvernight && other.isOvernight
	}
	return !other.end.Before(r.start) && !r.end.Before(other.start)
}

// IsAdjacentTo reports whether one range ends exactly where the other starts.
// Adjacency is only defined for regular ranges: when either side is
// overnight this always returns false, even if the endpoints touch at
// midnight.
func (r TimeRange) IsAdjacentTo(other TimeRange) bool {
	if !r.isOvernight && !other.isOvernight {
		return r.start.Equal(other.end) || r.end.Equal(other.start)
	}
	return false
}

// Merge combines two ranges that overlap or are adjacent into the smallest
// range covering both, reporting false when they do neither. When overnight
// ranges are involved there is no well-defined min-start/max-end across the
// wrap, so the larger of the two original ranges is returned instead.
func (r TimeRange) Merge(other TimeRange) (TimeRange, bool) {
	if !r.OverlapsWith(other) && !r.IsAdjacentTo(other) {
		return TimeRange{}, false
	}

	if r.isOvernight || other.isOvernight {
		if (r.isOvernight && !other.isOvernight) ||
			(r.isOvernight && other.isOvernight && r.duration >= other.duration) {
			return r, true
		}
		return other, true
	}

	start := r.start
	if other.start.Before(start) {
		start = other.start
	}
	end := r.end
	if other.end.After(end) {
		end = other.end
	}
	merged, err := NewTimeRange(start, end)
	if err != nil {
		// Unreachable: the merged span is at least as long as either input.
		return TimeRange{}, false
	}
	return merged, true
}

// FindIntersection returns the sub-range common to both ranges, reporting
// false when they do not overlap or when the common portion is too short to
// be a valid range. A too-short intersection is a normal negative result, not
// an error. The operation is symmetric.
func (r TimeRange) FindIntersection(other TimeRange) (TimeRange, bool) {
	if !r.OverlapsWith(other) {
		return TimeRange{}, false
	}

	if r.isOvernight != other.isOvernight {
		if r.isOvernight {
			return intersectOvernightWithRegular(r, other)
		}
		return intersectOvernightWithRegular(other, r)
	}

	start := r.start
	if other.start.After(start) {
		start = other.start
	}
	end := r.end
	if other.end.Before(end) {
		end = other.end
	}

	if !r.isOvernight && !end.After(start) {
		return TimeRange{}, false
	}
	return rangeOrNothing(start, end)
}

// intersectOvernightWithRegular resolves the mixed case by checking which of
// the regular range's endpoints the overnight range swallows.
func intersectOvernightWithRegular(overnight, regular TimeRange) (TimeRange, bool) {
	containsStart := overnight.ContainsTime(regular.start)
	containsEnd := overnight.ContainsTime(regular.end)

	switch {
	case containsStart && containsEnd:
		return regular, true
	case containsStart:
		return rangeOrNothing(regular.start, overnight.end)
	case containsEnd:
		return rangeOrNothing(overnight.start, regular.end)
	}
	return TimeRange{}, false
}

// rangeOrNothing attempts construction, folding a below-minimum duration into
// an absent result. NewTimeRange has no other failure mode for already-valid
// endpoints.
func rangeOrNothing(start, end Time) (TimeRange, bool) {
	r, err := NewTimeRange(start, end)
	if err != nil {
		return TimeRange{}, false
	}
	return r, true
}

// Equal is structural equality on the endpoints.
func (r TimeRange) Equal(other TimeRange) bool {
	return r.start.Equal(other.start) && r.end.Equal(other.end)
}

// Format renders the range as "start-end", e.g. "14-20" or "13:30-15".
func (r TimeRange) Format() string {
	return fmt.Sprintf("%s-%s", r.start.Format(), r.end.Format())
}

func (r TimeRange) String() string { return r.Format() }
