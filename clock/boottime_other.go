//go:build !linux

package clock

import "time"

func bootElapsed() (time.Duration, error) {
	return 0, errBootClockUnsupported
}
