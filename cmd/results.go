package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/docker/go-units"
	"github.com/pkg/errors"

	"github.com/vipcxj/intervals/internal/timeinterval"
)

// verdict is the result of a predicate command.
type verdict struct {
	Interval string   `json:"interval" yaml:"interval"`
	Others   []string `json:"others,omitempty" yaml:"others,omitempty"`
	Point    string   `json:"point,omitempty" yaml:"point,omitempty"`
	Result   bool     `json:"result" yaml:"result"`
}

func (v verdict) WriteText(w io.Writer) error {
	_, err := fmt.Fprintln(w, v.Result)
	return errors.WithStack(err)
}

type points struct {
	Interval string                   `json:"interval" yaml:"interval"`
	Step     int64                    `json:"step" yaml:"step"`
	Points   []timeinterval.Timestamp `json:"points" yaml:"points"`
}

func (p points) WriteText(w io.Writer) error {
	for _, ts := range p.Points {
		if _, err := fmt.Fprintln(w, ts); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

type description struct {
	Interval   string                 `json:"interval" yaml:"interval"`
	Start      timeinterval.Timestamp `json:"start" yaml:"start"`
	End        timeinterval.Timestamp `json:"end" yaml:"end"`
	MinLength  int                    `json:"minLength" yaml:"minLength"`
	Valid      bool                   `json:"valid" yaml:"valid"`
	SpanMillis int64                  `json:"spanMillis" yaml:"spanMillis"`
	Span       string                 `json:"span" yaml:"span"`
}

func describe(ti *timeinterval.TimeInterval) description {
	span := ti.Span()
	return description{
		Interval:   ti.String(),
		Start:      ti.Start,
		End:        ti.End,
		MinLength:  ti.MinLength(),
		Valid:      ti.IsValid(),
		SpanMillis: ti.SpanMillis(),
		Span:       humanSpan(span),
	}
}

func (d description) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "interval:   %s\nvalid:      %t\nmin length: %d days\nspan:       %s\n",
		d.Interval, d.Valid, d.MinLength, d.Span)
	return errors.WithStack(err)
}

func humanSpan(d time.Duration) string {
	if d < 0 {
		return "-" + units.HumanDuration(-d)
	}
	return units.HumanDuration(d)
}
