package timeinterval

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/vipcxj/intervals/internal/interval"
)

// MillisPerDay is the length of a day in milliseconds.
const MillisPerDay int64 = 24 * 60 * 60 * 1000

// layout is RFC3339 with millisecond precision.
const layout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp is a point in time, as milliseconds since the Unix epoch.
type Timestamp int64

// Millis converts a number of days to milliseconds.
func Millis(days int) int64 {
	return int64(days) * MillisPerDay
}

// FromTime truncates t to milliseconds.
func FromTime(t time.Time) Timestamp {
	return Timestamp(t.UnixMilli())
}

// Time returns ts as a UTC time.
func (ts Timestamp) Time() time.Time {
	return time.UnixMilli(int64(ts)).UTC()
}

// Add returns ts moved by ms milliseconds.
func (ts Timestamp) Add(ms int64) Timestamp {
	return ts + Timestamp(ms)
}

// AddDays returns ts moved by a number of days.
func (ts Timestamp) AddDays(days int) Timestamp {
	return ts.Add(Millis(days))
}

// String formats ts as RFC3339 in UTC with millisecond precision.
func (ts Timestamp) String() string {
	return ts.Time().Format(layout)
}

// MarshalText encodes ts in the String form.
func (ts Timestamp) MarshalText() ([]byte, error) {
	return []byte(ts.String()), nil
}

// UnmarshalText accepts every form ParseTimestamp does, resolving "now" and
// relative offsets against the system clock.
func (ts *Timestamp) UnmarshalText(data []byte) error {
	v, err := ParseTimestamp(string(data), SystemClock{}.Now())
	if err != nil {
		return err
	}
	*ts = v
	return nil
}

// ParseTimestamp parses s as one of:
//   - "now"
//   - a signed integer number of milliseconds since the epoch: "0", "-1000"
//   - a relative offset from now, with an explicit sign and a unit: "-1d",
//     "+36h", "-500ms"
//   - an RFC3339 (or RFC3339Nano) date-time
//
// A relative offset needs its unit: "+500" is 500 milliseconds after the
// epoch, "+500ms" is 500 milliseconds from now.
func ParseTimestamp(s string, now Timestamp) (Timestamp, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return 0, errors.Wrap(interval.ErrInvalidArgument, "empty timestamp")
	case s == "now":
		return now, nil
	}

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Timestamp(ms), nil
	}

	if s[0] == '+' || s[0] == '-' {
		offset, err := parseDuration(s[1:])
		if err != nil {
			return 0, errors.Wrapf(err, "invalid relative timestamp %q", s)
		}
		if s[0] == '-' {
			offset = -offset
		}
		return now.Add(offset), nil
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return 0, errors.Wrapf(interval.ErrInvalidArgument, "invalid timestamp %q: %v", s, err)
	}
	return FromTime(t), nil
}

// ParseStep parses a positive step length and returns it in milliseconds.
// Accepted forms are an integer number of milliseconds ("500"), a number of
// days ("1d", "7d") and anything time.ParseDuration accepts ("36h", "90m").
func ParseStep(s string) (int64, error) {
	s = strings.TrimSpace(s)
	var ms int64
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		ms = n
	} else {
		ms, err = parseDuration(s)
		if err != nil {
			return 0, err
		}
	}
	if ms <= 0 {
		return 0, errors.Wrapf(interval.ErrInvalidArgument, "step must be positive, got %q", s)
	}
	return ms, nil
}

// parseDuration parses "<n>d" as n days and anything else with
// time.ParseDuration, returning milliseconds.
func parseDuration(s string) (int64, error) {
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, errors.Wrapf(interval.ErrInvalidArgument, "invalid day count %q", s)
		}
		return Millis(n), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, errors.Wrapf(interval.ErrInvalidArgument, "invalid duration %q: %v", s, err)
	}
	return d.Milliseconds(), nil
}
