package report

import "time"

// Clock supplies "now" for the current-month decision. Injected so the
// caching policy can be exercised against fixed dates in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func SystemClock() Clock {
	return systemClock{}
}
