package timeinterval

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/vipcxj/intervals/internal/interval"
)

// TimeInterval is a closed interval of timestamps with a minimum length in
// days. Start and End may be reassigned freely; the minimum length is fixed
// at construction.
type TimeInterval struct {
	Start Timestamp
	End   Timestamp

	minLength int
}

// MaxMinLength is the largest minimum length, in days, whose length in
// milliseconds fits in a Timestamp.
const MaxMinLength = math.MaxInt64 / MillisPerDay

// maxSpan is the longest span, in milliseconds, a time.Duration can hold.
const maxSpan = int64(math.MaxInt64 / time.Millisecond)

// New returns an interval whose bounds are both the current time. It fails
// with interval.ErrInvalidArgument when minLengthDays is negative or larger
// than MaxMinLength.
func New(minLengthDays int) (*TimeInterval, error) {
	return NewWithClock(minLengthDays, SystemClock{})
}

// NewWithClock is New with the current time read from clock.
func NewWithClock(minLengthDays int, clock Clock) (*TimeInterval, error) {
	if minLengthDays < 0 {
		return nil, errors.Wrapf(interval.ErrInvalidArgument, "minimum length must not be negative, got %d", minLengthDays)
	}
	if int64(minLengthDays) > MaxMinLength {
		return nil, errors.Wrapf(interval.ErrInvalidArgument, "minimum length must not exceed %d days, got %d", MaxMinLength, minLengthDays)
	}
	now := clock.Now()
	return &TimeInterval{Start: now, End: now, minLength: minLengthDays}, nil
}

// MustNew is like NewWithClock but panics on error.
func MustNew(minLengthDays int, clock Clock) *TimeInterval {
	ti, err := NewWithClock(minLengthDays, clock)
	if err != nil {
		panic(err)
	}
	return ti
}

// MinLength returns the minimum length in days.
func (ti *TimeInterval) MinLength() int {
	return ti.minLength
}

// Bounds returns Start and End.
func (ti *TimeInterval) Bounds() (Timestamp, Timestamp) {
	return ti.Start, ti.End
}

// IsValid reports whether End is at least MinLength days after Start.
func (ti *TimeInterval) IsValid() bool {
	ms := Millis(ti.minLength)
	// Start + ms would pass every Timestamp, End included
	if int64(ti.Start) > math.MaxInt64-ms {
		return false
	}
	return ti.Start.Add(ms) <= ti.End
}

// Contains reports whether point lies in ti, bounds included.
func (ti *TimeInterval) Contains(point Timestamp) bool {
	return interval.ContainsPoint[Timestamp](ti, point)
}

// ContainsInclusive is Contains with both bounds included or excluded.
func (ti *TimeInterval) ContainsInclusive(point Timestamp, inclusive bool) bool {
	return interval.ContainsInclusive[Timestamp](ti, point, inclusive)
}

// ContainsWith is Contains with separate inclusivity for each bound.
func (ti *TimeInterval) ContainsWith(point Timestamp, startInclusive, endInclusive bool) bool {
	return interval.Contains[Timestamp](ti, point, startInclusive, endInclusive)
}

// ContainsStart reports whether both intervals are valid and the start of
// other lies in ti.
func (ti *TimeInterval) ContainsStart(other interval.Interval[Timestamp]) bool {
	return interval.ContainsStart[Timestamp](ti, other, true)
}

// ContainsStartInclusive is ContainsStart with the inclusivity of ti's bounds given.
func (ti *TimeInterval) ContainsStartInclusive(other interval.Interval[Timestamp], inclusive bool) bool {
	return interval.ContainsStart[Timestamp](ti, other, inclusive)
}

// ContainsEnd reports whether both intervals are valid and the end of other
// lies in ti.
func (ti *TimeInterval) ContainsEnd(other interval.Interval[Timestamp]) bool {
	return interval.ContainsEnd[Timestamp](ti, other, true)
}

// ContainsEndInclusive is ContainsEnd with the inclusivity of ti's bounds given.
func (ti *TimeInterval) ContainsEndInclusive(other interval.Interval[Timestamp], inclusive bool) bool {
	return interval.ContainsEnd[Timestamp](ti, other, inclusive)
}

// Encloses reports whether both endpoints of other lie in ti.
func (ti *TimeInterval) Encloses(other interval.Interval[Timestamp]) bool {
	return interval.Encloses[Timestamp](ti, other)
}

// Intersects reports whether an endpoint of other lies in ti. See
// interval.Intersects for why this is not symmetric.
func (ti *TimeInterval) Intersects(other interval.Interval[Timestamp]) bool {
	return interval.Intersects[Timestamp](ti, other)
}

// GenerateIntersecting returns the timestamps, stepMillis apart, shared by ti
// and each of others. See interval.GenerateIntersecting.
func (ti *TimeInterval) GenerateIntersecting(stepMillis int64, others ...interval.Interval[Timestamp]) ([]Timestamp, error) {
	return interval.GenerateIntersecting[Timestamp, int64](ti, stepMillis, Timestamp.Add, others...)
}

// GenerateIntersectingStep is GenerateIntersecting with the step given as a
// timestamp, i.e. a length in milliseconds since the epoch.
func (ti *TimeInterval) GenerateIntersectingStep(step Timestamp, others ...interval.Interval[Timestamp]) ([]Timestamp, error) {
	return ti.GenerateIntersecting(int64(step), others...)
}

// GenerateIntersectingParallel is GenerateIntersecting walking up to limit
// of the others at once.
func (ti *TimeInterval) GenerateIntersectingParallel(ctx context.Context, limit int, stepMillis int64, others ...interval.Interval[Timestamp]) ([]Timestamp, error) {
	return interval.GenerateIntersectingParallel[Timestamp, int64](ctx, limit, ti, stepMillis, Timestamp.Add, others...)
}

// GenerateFrom returns the timestamps of ti, stepMillis apart, starting at
// Start.
func (ti *TimeInterval) GenerateFrom(stepMillis int64) ([]Timestamp, error) {
	return ti.GenerateIntersecting(stepMillis, ti)
}

// GenerateFromStep is GenerateFrom with the step given as a timestamp.
func (ti *TimeInterval) GenerateFromStep(step Timestamp) ([]Timestamp, error) {
	return ti.GenerateFrom(int64(step))
}

// SpanMillis is the distance from Start to End in milliseconds, negative for
// reversed bounds. It saturates at the int64 limits.
func (ti *TimeInterval) SpanMillis() int64 {
	d := int64(ti.End) - int64(ti.Start)
	if forward := ti.End >= ti.Start; forward != (d >= 0) {
		if forward {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return d
}

// Span is SpanMillis as a duration, clamped to about 292 years either way.
func (ti *TimeInterval) Span() time.Duration {
	ms := ti.SpanMillis()
	switch {
	case ms > maxSpan:
		return math.MaxInt64
	case ms < -maxSpan:
		return -math.MaxInt64
	}
	return time.Duration(ms) * time.Millisecond
}

func (ti *TimeInterval) String() string {
	return fmt.Sprintf("[%v, %v]", ti.Start, ti.End)
}
