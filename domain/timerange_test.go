package domain

import (
	"errors"
	"testing"
)

func mustRange(t *testing.T, startH, startM, endH, endM int) TimeRange {
	t.Helper()
	r, err := NewTimeRange(mustTime(t, startH, startM), mustTime(t, endH, endM))
	if err != nil {
		t.Fatalf("NewTimeRange(%02d:%02d, %02d:%02d): %v", startH, startM, endH, endM, err)
	}
	return r
}

func TestNewTimeRangeValidation(t *testing.T) {
	t.Run("rejects below minimum duration", func(t *testing.T) {
		_, err := NewTimeRange(mustTime(t, 9, 0), mustTime(t, 9, 20))
		var durErr *InvalidDurationError
		if !errors.As(err, &durErr) {
			t.Fatalf("expected InvalidDurationError, got %v", err)
		}
		if durErr.DurationMinutes != 20 {
			t.Errorf("DurationMinutes = %d, want 20", durErr.DurationMinutes)
		}
		if durErr.MinimumMinutes != MinimumDurationMinutes {
			t.Errorf("MinimumMinutes = %d, want %d", durErr.MinimumMinutes, MinimumDurationMinutes)
		}
	})

	t.Run("rejects equal endpoints", func(t *testing.T) {
		// Zero duration fails the minimum check before the overnight rule
		// could ever classify it.
		if _, err := NewTimeRange(mustTime(t, 12, 0), mustTime(t, 12, 0)); err == nil {
			t.Fatal("equal endpoints should not construct")
		}
	})

	t.Run("accepts exactly the minimum", func(t *testing.T) {
		r := mustRange(t, 9, 0, 9, 30)
		if r.DurationMinutes() != 30 {
			t.Errorf("DurationMinutes = %d, want 30", r.DurationMinutes())
		}
	})
}

func TestTimeRangeOvernight(t *testing.T) {
	tests := []struct {
		name          string
		r             TimeRange
		wantOvernight bool
		wantDuration  int
	}{
		{name: "regular afternoon", r: mustRange(t, 14, 0, 20, 0), wantOvernight: false, wantDuration: 360},
		{name: "crosses midnight", r: mustRange(t, 22, 0, 6, 0), wantOvernight: true, wantDuration: 480},
		{name: "late evening wrap", r: mustRange(t, 23, 30, 0, 30), wantOvernight: true, wantDuration: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.IsOvernight(); got != tt.wantOvernight {
				t.Errorf("IsOvernight() = %v, want %v", got, tt.wantOvernight)
			}
			if got := tt.r.DurationMinutes(); got != tt.wantDuration {
				t.Errorf("DurationMinutes() = %d, want %d", got, tt.wantDuration)
			}
		})
	}
}

func TestContainsTime(t *testing.T) {
	overnight := mustRange(t, 22, 0, 6, 0)
	regular := mustRange(t, 9, 0, 17, 0)

	tests := []struct {
		name string
		r    TimeRange
		h, m int
		want bool
	}{
		{name: "overnight contains late evening", r: overnight, h: 23, m: 30, want: true},
		{name: "overnight contains early morning", r: overnight, h: 3, m: 0, want: true},
		{name: "overnight contains start", r: overnight, h: 22, m: 0, want: true},
		{name: "overnight contains end", r: overnight, h: 6, m: 0, want: true},
		{name: "overnight excludes midday", r: overnight, h: 12, m: 0, want: false},
		{name: "regular contains midpoint", r: regular, h: 12, m: 0, want: true},
		{name: "regular contains start", r: regular, h: 9, m: 0, want: true},
		{name: "regular contains end", r: regular, h: 17, m: 0, want: true},
		{name: "regular excludes before", r: regular, h: 8, m: 59, want: false},
		{name: "regular excludes after", r: regular, h: 17, m: 1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.ContainsTime(mustTime(t, tt.h, tt.m)); got != tt.want {
				t.Errorf("ContainsTime(%02d:%02d) = %v, want %v", tt.h, tt.m, got, tt.want)
			}
		})
	}
}

func TestOverlapsWith(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeRange
		want bool
	}{
		{name: "regular overlapping", a: mustRange(t, 9, 0, 12, 0), b: mustRange(t, 11, 0, 13, 0), want: true},
		{name: "regular disjoint", a: mustRange(t, 9, 0, 10, 0), b: mustRange(t, 11, 0, 12, 0), want: false},
		{name: "regular touching endpoints", a: mustRange(t, 9, 0, 12, 0), b: mustRange(t, 12, 0, 14, 0), want: true},
		{name: "two overnight always overlap", a: mustRange(t, 22, 0, 5, 0), b: mustRange(t, 23, 0, 4, 0), want: true},
		{name: "disjoint looking overnight pair", a: mustRange(t, 22, 0, 1, 0), b: mustRange(t, 2, 30, 2, 0), want: true},
		{name: "overnight and contained regular", a: mustRange(t, 22, 0, 6, 0), b: mustRange(t, 0, 0, 3, 0), want: true},
		{name: "overnight and straddling regular", a: mustRange(t, 22, 0, 6, 0), b: mustRange(t, 20, 0, 23, 0), want: true},
		{name: "overnight and disjoint regular", a: mustRange(t, 22, 0, 6, 0), b: mustRange(t, 10, 0, 14, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.OverlapsWith(tt.b); got != tt.want {
				t.Errorf("OverlapsWith = %v, want %v", got, tt.want)
			}
			if got := tt.b.OverlapsWith(tt.a); got != tt.want {
				t.Errorf("reversed OverlapsWith = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsAdjacentTo(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeRange
		want bool
	}{
		{name: "end meets start", a: mustRange(t, 9, 0, 12, 0), b: mustRange(t, 12, 0, 15, 0), want: true},
		{name: "start meets end", a: mustRange(t, 12, 0, 15, 0), b: mustRange(t, 9, 0, 12, 0), want: true},
		{name: "gap between", a: mustRange(t, 9, 0, 10, 0), b: mustRange(t, 11, 0, 12, 0), want: false},
		{name: "overnight side disables adjacency", a: mustRange(t, 22, 0, 2, 0), b: mustRange(t, 2, 0, 6, 0), want: false},
		{name: "both overnight never adjacent", a: mustRange(t, 22, 0, 2, 0), b: mustRange(t, 23, 0, 3, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.IsAdjacentTo(tt.b); got != tt.want {
				t.Errorf("IsAdjacentTo = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		a, b     TimeRange
		want     TimeRange
		wantNone bool
	}{
		{name: "disjoint returns nothing", a: mustRange(t, 9, 0, 10, 0), b: mustRange(t, 14, 0, 15, 0), wantNone: true},
		{name: "adjacent regular", a: mustRange(t, 9, 0, 12, 0), b: mustRange(t, 12, 0, 15, 0), want: mustRange(t, 9, 0, 15, 0)},
		{name: "overlapping regular", a: mustRange(t, 9, 0, 12, 0), b: mustRange(t, 11, 0, 13, 0), want: mustRange(t, 9, 0, 13, 0)},
		{name: "contained regular", a: mustRange(t, 9, 0, 17, 0), b: mustRange(t, 10, 0, 11, 0), want: mustRange(t, 9, 0, 17, 0)},
		{name: "overnight beats overlapping regular", a: mustRange(t, 22, 0, 6, 0), b: mustRange(t, 5, 0, 8, 0), want: mustRange(t, 22, 0, 6, 0)},
		{name: "regular receiver still yields overnight", a: mustRange(t, 5, 0, 8, 0), b: mustRange(t, 22, 0, 6, 0), want: mustRange(t, 22, 0, 6, 0)},
		{name: "both overnight picks longer", a: mustRange(t, 23, 0, 4, 0), b: mustRange(t, 22, 0, 6, 0), want: mustRange(t, 22, 0, 6, 0)},
		{name: "both overnight tie keeps receiver", a: mustRange(t, 22, 0, 6, 0), b: mustRange(t, 23, 0, 7, 0), want: mustRange(t, 22, 0, 6, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Merge(tt.b)
			if tt.wantNone {
				if ok {
					t.Fatalf("Merge = %v, want no result", got)
				}
				return
			}
			if !ok {
				t.Fatal("Merge returned no result")
			}
			if !got.Equal(tt.want) {
				t.Errorf("Merge = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindIntersection(t *testing.T) {
	tests := []struct {
		name     string
		a, b     TimeRange
		want     TimeRange
		wantNone bool
	}{
		{name: "no overlap", a: mustRange(t, 9, 0, 10, 0), b: mustRange(t, 14, 0, 15, 0), wantNone: true},
		{name: "regular overlap", a: mustRange(t, 9, 0, 12, 0), b: mustRange(t, 11, 0, 13, 0), want: mustRange(t, 11, 0, 12, 0)},
		{name: "touching endpoints only", a: mustRange(t, 9, 0, 12, 0), b: mustRange(t, 12, 0, 15, 0), wantNone: true},
		{name: "too short folds to nothing", a: mustRange(t, 9, 0, 12, 0), b: mustRange(t, 11, 40, 13, 0), wantNone: true},
		{name: "regular fully inside overnight", a: mustRange(t, 22, 0, 6, 0), b: mustRange(t, 0, 0, 3, 0), want: mustRange(t, 0, 0, 3, 0)},
		{name: "start only inside overnight", a: mustRange(t, 22, 0, 6, 0), b: mustRange(t, 23, 0, 12, 0), want: mustRange(t, 23, 0, 6, 0)},
		{name: "end only inside overnight", a: mustRange(t, 22, 0, 6, 0), b: mustRange(t, 20, 0, 23, 0), want: mustRange(t, 22, 0, 23, 0)},
		{name: "start only but sliver too short", a: mustRange(t, 22, 0, 6, 0), b: mustRange(t, 5, 45, 12, 0), wantNone: true},
		{name: "both overnight", a: mustRange(t, 22, 0, 6, 0), b: mustRange(t, 23, 0, 5, 0), want: mustRange(t, 23, 0, 5, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.FindIntersection(tt.b)
			if tt.wantNone {
				if ok {
					t.Fatalf("FindIntersection = %v, want no result", got)
				}
			} else {
				if !ok {
					t.Fatal("FindIntersection returned no result")
				}
				if !got.Equal(tt.want) {
					t.Errorf("FindIntersection = %v, want %v", got, tt.want)
				}
			}

			// The operation is symmetric.
			rev, revOK := tt.b.FindIntersection(tt.a)
			if revOK != ok {
				t.Fatalf("asymmetric presence: a->b=%v b->a=%v", ok, revOK)
			}
			if ok && !rev.Equal(got) {
				t.Errorf("asymmetric result: a->b=%v b->a=%v", got, rev)
			}
		})
	}
}

func TestTimeRangeFormat(t *testing.T) {
	tests := []struct {
		name string
		r    TimeRange
		want string
	}{
		{name: "whole hours", r: mustRange(t, 14, 0, 20, 0), want: "14-20"},
		{name: "mixed minutes", r: mustRange(t, 13, 30, 15, 0), want: "13:30-15"},
		{name: "overnight", r: mustRange(t, 22, 0, 2, 0), want: "22-02"},
		{name: "padded morning", r: mustRange(t, 9, 5, 9, 45), want: "09:05-09:45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Format(); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}
