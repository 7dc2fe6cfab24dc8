//go:build linux

package clock

import (
	"time"

	"golang.org/x/sys/unix"
)

func bootElapsed() (time.Duration, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_BOOTTIME, &ts); err != nil {
		return 0, err
	}
	return time.Duration(ts.Nano()), nil
}
