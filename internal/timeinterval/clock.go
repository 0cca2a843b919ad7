package timeinterval

import "time"

// Clock abstracts the current time so intervals can be built
// deterministically in tests.
type Clock interface {
	Now() Timestamp
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() Timestamp { return FromTime(time.Now()) }

// FixedClock always returns the same instant.
type FixedClock Timestamp

func (c FixedClock) Now() Timestamp { return Timestamp(c) }
