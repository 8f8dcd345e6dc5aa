package adapter

import "time"

// Clock defines an interface for time operations so timestamping and retry
// waits can be controlled in tests
//
//go:generate mockgen -source=clock.go -destination=../mocks/clock.go -package=mocks -mock_names=Clock=MockClock
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	Sleep(d time.Duration)
	After(d time.Duration) <-chan time.Time
}

type systemClock struct{}

// NewClock returns the time-package-backed implementation
func NewClock() Clock {
	return &systemClock{}
}

func (c *systemClock) Now() time.Time {
	return time.Now()
}

func (c *systemClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

func (c *systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

func (c *systemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
