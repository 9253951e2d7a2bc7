package calendar

import "time"

// Clock reports the current instant in UTC+7.
type Clock interface {
	Now() Instant
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() Instant { return FromTime(time.Now()) }

// FixedClock always reports the same instant. Useful in tests.
type FixedClock Instant

func (c FixedClock) Now() Instant { return Instant(c) }

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() Instant

func (f ClockFunc) Now() Instant { return f() }
