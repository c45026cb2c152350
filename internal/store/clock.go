package store

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// clock is the package-level time source used to stamp insertions.
// Tests freeze it via SetClock.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

func clockNow() time.Time {
	return clock.Now()
}
