package engine

import "time"

// Clock supplies the current time to time-dependent collaborators
type Clock interface {
	Now() time.Time
}

// TimeProvider reads the system clock, monotonic reading included
type TimeProvider struct{}

func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

func (p *TimeProvider) Now() time.Time {
	return time.Now()
}
