package clock

import (
	"errors"
	"time"
)

// Clock provides wall-clock time. Implementations may correct for
// system clock drift (e.g. via NTP).
type Clock interface {
	Now() time.Time
}

// System returns a Clock backed by time.Now().
func System() Clock { return systemClock{} }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Monotonic provides reference readings for suggestions. Readings never go
// backwards and ignore wall-clock adjustments.
type Monotonic interface {
	Elapsed() time.Duration
}

var (
	processStart = time.Now()

	errBootClockUnsupported = errors.New("clock: boot clock not supported on this platform")
)

// Boot returns a Monotonic measuring time since boot, suspend included. All
// processes on the host share its epoch. Where no boot clock is available it
// falls back to Process.
func Boot() Monotonic { return bootClock{} }

type bootClock struct{}

func (bootClock) Elapsed() time.Duration {
	d, err := bootElapsed()
	if err != nil {
		return time.Since(processStart)
	}
	return d
}

// Process returns a Monotonic whose epoch is the start of this process.
func Process() Monotonic { return processClock{} }

type processClock struct{}

func (processClock) Elapsed() time.Duration { return time.Since(processStart) }
