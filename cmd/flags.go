package cmd

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/vipcxj/intervals/internal/interval"
	"github.com/vipcxj/intervals/internal/timeinterval"
)

// timestampValue is a pflag.Value parsing timestamps against a clock.
type timestampValue struct {
	ts    *timeinterval.Timestamp
	clock timeinterval.Clock
	raw   string
}

func newTimestampValue(ts *timeinterval.Timestamp, clock timeinterval.Clock) *timestampValue {
	*ts = clock.Now()
	return &timestampValue{ts: ts, clock: clock, raw: "now"}
}

func (v *timestampValue) Set(s string) error {
	ts, err := timeinterval.ParseTimestamp(s, v.clock.Now())
	if err != nil {
		return err
	}
	*v.ts = ts
	v.raw = s
	return nil
}

func (v *timestampValue) String() string { return v.raw }

func (v *timestampValue) Type() string { return "timestamp" }

// intervalFlags are the flags describing the interval a command works on.
type intervalFlags struct {
	start     timeinterval.Timestamp
	end       timeinterval.Timestamp
	minLength int
}

func (f *intervalFlags) register(flags *pflag.FlagSet, opts *options) {
	flags.VarP(newTimestampValue(&f.start, opts.clock), "start", "s", "Start of the interval (now, -1d, +500ms, epoch millis or RFC3339)")
	flags.VarP(newTimestampValue(&f.end, opts.clock), "end", "e", "End of the interval (now, -1d, +500ms, epoch millis or RFC3339)")
	flags.IntVarP(&f.minLength, "min-length", "m", opts.conf.MinLength, "Minimum length of the interval in days")
}

func (f *intervalFlags) build(opts *options) (*timeinterval.TimeInterval, error) {
	ti, err := timeinterval.NewWithClock(f.minLength, opts.clock)
	if err != nil {
		return nil, err
	}
	ti.Start = f.start
	ti.End = f.end
	return ti, nil
}

// parseInterval parses "START,END[,MIN_LENGTH_DAYS]". The bounds may be
// bracketed the way intervals are printed, as in "[START, END],MIN_LENGTH_DAYS".
func parseInterval(s string, clock timeinterval.Clock) (*timeinterval.TimeInterval, error) {
	body, rest := s, ""
	if i := strings.LastIndexByte(s, ']'); i >= 0 {
		body, rest = s[:i+1], s[i+1:]
	} else if i := strings.IndexByte(s, ','); i >= 0 {
		if j := strings.IndexByte(s[i+1:], ','); j >= 0 {
			body, rest = s[:i+1+j], s[i+1+j:]
		}
	}
	if strings.Count(body, ",") != 1 || (rest != "" && !strings.HasPrefix(rest, ",")) {
		return nil, errors.Wrapf(interval.ErrInvalidArgument, "interval %q is not START,END[,MIN_LENGTH]", s)
	}

	minLength := 0
	if rest != "" {
		n, err := strconv.Atoi(strings.TrimSpace(rest[1:]))
		if err != nil {
			return nil, errors.Wrapf(interval.ErrInvalidArgument, "invalid minimum length in %q", s)
		}
		minLength = n
	}

	now := clock.Now()
	bounds, err := interval.Parse(body, func(v string) (timeinterval.Timestamp, error) {
		return timeinterval.ParseTimestamp(v, now)
	})
	if err != nil {
		return nil, err
	}

	ti, err := timeinterval.NewWithClock(minLength, clock)
	if err != nil {
		return nil, err
	}
	ti.Start, ti.End = bounds.Bounds()
	return ti, nil
}

func parseIntervals(values []string, clock timeinterval.Clock) ([]*timeinterval.TimeInterval, error) {
	others := make([]*timeinterval.TimeInterval, 0, len(values))
	for _, v := range values {
		ti, err := parseInterval(v, clock)
		if err != nil {
			return nil, err
		}
		others = append(others, ti)
	}
	return others, nil
}

func asIntervals(tis []*timeinterval.TimeInterval) []interval.Interval[timeinterval.Timestamp] {
	out := make([]interval.Interval[timeinterval.Timestamp], len(tis))
	for i, ti := range tis {
		out[i] = ti
	}
	return out
}
