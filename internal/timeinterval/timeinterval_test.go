package timeinterval

import (
	"context"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/vipcxj/intervals/internal/interval"
)

var now = FromTime(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))

var clock = FixedClock(now)

// dayBefore returns [now-1d, now].
func dayBefore(t *testing.T) *TimeInterval {
	t.Helper()
	ti, err := NewWithClock(0, clock)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ti.Start = ti.Start.AddDays(-1)
	return ti
}

func TestNew(t *testing.T) {
	ti, err := NewWithClock(3, clock)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ti.Start != now || ti.End != now {
		t.Fatalf("bounds = %v, want both %v", ti, now)
	}
	if ti.MinLength() != 3 {
		t.Fatalf("MinLength() = %d, want 3", ti.MinLength())
	}

	if _, err := NewWithClock(-1, clock); !errors.Is(err, interval.ErrInvalidArgument) {
		t.Fatalf("NewWithClock(-1) error = %v, want %v", err, interval.ErrInvalidArgument)
	}

	longest := MaxMinLength
	if _, err := NewWithClock(int(longest), clock); err != nil {
		t.Fatalf("NewWithClock(%d) unexpected error: %v", longest, err)
	}
	if _, err := NewWithClock(int(longest)+1, clock); !errors.Is(err, interval.ErrInvalidArgument) {
		t.Fatalf("NewWithClock(%d) error = %v, want %v", longest+1, err, interval.ErrInvalidArgument)
	}

	sys, err := New(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sys.Start != sys.End || !sys.IsValid() {
		t.Fatalf("New(0) = %v, want a valid point interval", sys)
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for negative minimum length")
		}
	}()
	MustNew(-2, clock)
}

func TestIsValid(t *testing.T) {
	t.Run("day_before_is_valid", func(t *testing.T) {
		if ti := dayBefore(t); !ti.IsValid() {
			t.Fatalf("%v should be valid", ti)
		}
	})

	t.Run("start_after_end_is_invalid", func(t *testing.T) {
		ti := dayBefore(t)
		ti.Start = now.AddDays(3)
		if ti.IsValid() {
			t.Fatalf("%v should be invalid", ti)
		}
	})

	t.Run("min_length_unmet_at_construction", func(t *testing.T) {
		ti := MustNew(1, clock)
		if ti.IsValid() {
			t.Fatalf("%v with minimum length 1 should be invalid", ti)
		}
		ti.Start = ti.Start.AddDays(-1)
		if !ti.IsValid() {
			t.Fatalf("%v with minimum length 1 should be valid", ti)
		}
	})

	t.Run("min_length_one_millisecond_short", func(t *testing.T) {
		ti := MustNew(2, clock)
		ti.End = ti.Start.Add(Millis(2) - 1)
		if ti.IsValid() {
			t.Fatalf("%v should be invalid", ti)
		}
		ti.End++
		if !ti.IsValid() {
			t.Fatalf("%v should be valid", ti)
		}
	})

	t.Run("zero_min_length_matches_default", func(t *testing.T) {
		for _, offset := range []int64{-MillisPerDay, -1, 0, 1, MillisPerDay} {
			ti := MustNew(0, clock)
			ti.End = ti.End.Add(offset)
			if got, want := ti.IsValid(), interval.IsValid(ti.Start, ti.End); got != want {
				t.Fatalf("offset %d: IsValid() = %v, want %v", offset, got, want)
			}
		}
	})
}

func TestIsValid_Limits(t *testing.T) {
	longest := MaxMinLength
	cases := []struct {
		name      string
		minLength int
		start     Timestamp
		end       Timestamp
		exp       bool
	}{
		{"longest_min_length_point", int(longest), 0, 0, false},
		{"longest_min_length_met", int(longest), 0, Timestamp(longest * MillisPerDay), true},
		{"start_near_max", 1, math.MaxInt64 - 10, math.MaxInt64, false},
		{"start_near_max_zero_min_length", 0, math.MaxInt64 - 10, math.MaxInt64, true},
		{"one_day_before_max", 1, math.MaxInt64 - Timestamp(MillisPerDay), math.MaxInt64, true},
		{"from_min", 1, math.MinInt64, math.MinInt64 + Timestamp(MillisPerDay), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ti := MustNew(tc.minLength, clock)
			ti.Start, ti.End = tc.start, tc.end
			if got := ti.IsValid(); got != tc.exp {
				t.Fatalf("%v with minimum length %d: IsValid() = %v, want %v", ti, tc.minLength, got, tc.exp)
			}
		})
	}
}

func TestIntersects(t *testing.T) {
	a := dayBefore(t)
	b := dayBefore(t)
	if !a.Intersects(b) || !b.Intersects(a) {
		t.Fatalf("%v and %v should intersect both ways", a, b)
	}

	short := MustNew(1, clock)
	if a.Intersects(short) || short.Intersects(a) {
		t.Fatalf("an interval below its minimum length should not intersect")
	}
}

func TestEncloses(t *testing.T) {
	greater := dayBefore(t)
	greater.End = greater.End.AddDays(1)
	smaller := MustNew(0, clock)

	if !greater.Encloses(smaller) {
		t.Fatalf("%v should enclose %v", greater, smaller)
	}
	if !greater.ContainsStart(smaller) || !greater.ContainsEnd(smaller) {
		t.Fatalf("%v should contain both endpoints of %v", greater, smaller)
	}
	if smaller.Encloses(dayBefore(t)) {
		t.Fatalf("%v should not enclose the day before", smaller)
	}
}

func TestContains(t *testing.T) {
	ti := dayBefore(t)
	cases := []struct {
		name           string
		point          Timestamp
		startInclusive bool
		endInclusive   bool
		exp            bool
	}{
		{"start_inclusive", ti.Start, true, true, true},
		{"start_exclusive", ti.Start, false, true, false},
		{"end_inclusive", ti.End, true, true, true},
		{"end_exclusive", ti.End, true, false, false},
		{"noon_before", now.Add(-MillisPerDay / 2), false, false, true},
		{"after_end", now.Add(1), true, true, false},
	}

	for _, tc := range cases {
		if got := ti.ContainsWith(tc.point, tc.startInclusive, tc.endInclusive); got != tc.exp {
			t.Fatalf("%s: ContainsWith(%v, %v, %v) = %v, want %v", tc.name, tc.point, tc.startInclusive, tc.endInclusive, got, tc.exp)
		}
	}
	if !ti.Contains(ti.End) || ti.ContainsInclusive(ti.End, false) {
		t.Fatalf("inclusive flag not honoured on %v", ti)
	}
}

func TestGenerateIntersecting_Week(t *testing.T) {
	week := dayBefore(t)
	week.End = week.End.AddDays(7)
	week.Start = week.Start.AddDays(-6)

	point := MustNew(0, clock)
	around := MustNew(0, clock)
	around.Start = around.Start.AddDays(-1)
	around.End = around.End.AddDays(1)

	got, err := week.GenerateIntersecting(MillisPerDay, point, around)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Timestamp{now.AddDays(-1), now, now.AddDays(1)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected points -want/+got\n%s", diff)
	}

	byStep, err := week.GenerateIntersectingStep(Timestamp(MillisPerDay), point, around)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(got, byStep); diff != "" {
		t.Errorf("step forms disagree -millis/+timestamp\n%s", diff)
	}

	parallel, err := week.GenerateIntersectingParallel(context.Background(), 2, MillisPerDay, point, around)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(got, parallel); diff != "" {
		t.Errorf("parallel result differs -sequential/+parallel\n%s", diff)
	}
}

func TestGenerateFrom(t *testing.T) {
	ti := dayBefore(t)
	ti.End = ti.End.AddDays(1)

	got, err := ti.GenerateFrom(MillisPerDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Timestamp{now.AddDays(-1), now, now.AddDays(1)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected points -want/+got\n%s", diff)
	}

	again, err := ti.GenerateFromStep(Timestamp(MillisPerDay))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(got, again); diff != "" {
		t.Errorf("GenerateFrom is not idempotent -first/+second\n%s", diff)
	}

	hourly, err := ti.GenerateFrom(Millis(1) / 24)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hourly) != 49 || !slices.IsSorted(hourly) {
		t.Fatalf("hourly points = %d (sorted %v), want 49 sorted", len(hourly), slices.IsSorted(hourly))
	}
}

func TestGenerate_Errors(t *testing.T) {
	valid := dayBefore(t)
	invalid := dayBefore(t)
	invalid.Start = now.AddDays(2)

	cases := []struct {
		name   string
		self   *TimeInterval
		step   int64
		others []interval.Interval[Timestamp]
		want   error
	}{
		{"zero_step", valid, 0, []interval.Interval[Timestamp]{invalid}, interval.ErrInvalidArgument},
		{"negative_step", valid, -MillisPerDay, nil, interval.ErrInvalidArgument},
		{"invalid_self", invalid, MillisPerDay, []interval.Interval[Timestamp]{valid}, interval.ErrPreconditionViolation},
		{"invalid_other", valid, MillisPerDay, []interval.Interval[Timestamp]{valid, invalid}, interval.ErrPreconditionViolation},
		{"min_length_self", MustNew(1, clock), MillisPerDay, nil, interval.ErrPreconditionViolation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.self.GenerateIntersecting(tc.step, tc.others...); !errors.Is(err, tc.want) {
				t.Fatalf("GenerateIntersecting() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestSpan(t *testing.T) {
	const far = Timestamp(10_000_000_000_000)
	cases := []struct {
		name   string
		start  Timestamp
		end    Timestamp
		millis int64
		span   time.Duration
	}{
		{"day", now.AddDays(-1), now, MillisPerDay, 24 * time.Hour},
		{"reversed", now, now.AddDays(-1), -MillisPerDay, -24 * time.Hour},
		{"beyond_duration", 0, far, int64(far), math.MaxInt64},
		{"beyond_duration_reversed", far, 0, -int64(far), -math.MaxInt64},
		{"whole_range", math.MinInt64, math.MaxInt64, math.MaxInt64, math.MaxInt64},
		{"whole_range_reversed", math.MaxInt64, math.MinInt64, math.MinInt64, -math.MaxInt64},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ti := MustNew(0, clock)
			ti.Start, ti.End = tc.start, tc.end
			if got := ti.SpanMillis(); got != tc.millis {
				t.Fatalf("SpanMillis() = %d, want %d", got, tc.millis)
			}
			if got := ti.Span(); got != tc.span {
				t.Fatalf("Span() = %v, want %v", got, tc.span)
			}
		})
	}
}

func TestSpanAndString(t *testing.T) {
	ti := dayBefore(t)
	if got := ti.Span(); got != 24*time.Hour {
		t.Fatalf("Span() = %v, want 24h", got)
	}
	if got, want := ti.String(), "[2024-03-09T12:00:00.000Z, 2024-03-10T12:00:00.000Z]"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
