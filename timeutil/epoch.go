package timeutil

import (
	"errors"
	"time"
)

// FormatUnixMillis renders Unix epoch milliseconds as RFC 3339 in UTC.
func FormatUnixMillis(millis int64) string {
	return time.UnixMilli(millis).UTC().Format(time.RFC3339Nano)
}

// ParseRFC3339 parses value as RFC 3339 with or without fractional seconds.
func ParseRFC3339(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty time")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// UnixMillisFromRFC3339 parses an RFC 3339 timestamp into Unix epoch
// milliseconds, truncating sub-millisecond precision.
func UnixMillisFromRFC3339(value string) (int64, error) {
	t, err := ParseRFC3339(value)
	if err != nil {
		return 0, err
	}
	return t.UnixMilli(), nil
}

// Age reports how long before now a reading was taken. Both readings must
// come from the same monotonic clock domain; a reading from the future
// yields zero.
func Age(reading, now time.Duration) time.Duration {
	if reading > now {
		return 0
	}
	return now - reading
}
