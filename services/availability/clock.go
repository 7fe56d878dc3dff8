package availability

import "time"

// Clock supplies wall-clock time to the engine. Injected so tests can
// pin "now" when exercising expiry and past-time rules.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the production clock.
func SystemClock() Clock { return systemClock{} }
