package suggestion

import (
	"fmt"
	"time"
)

// ReferenceTime is a monotonic clock reading expressed as the duration since
// the epoch of its clock domain. Readings are only comparable with other
// readings from the same domain; they carry no wall-clock meaning.
type ReferenceTime = time.Duration

// ReferenceClock supplies ReferenceTime readings.
type ReferenceClock interface {
	Elapsed() time.Duration
}

// TimestampedValue pairs a value with the reference time at which it was
// captured. The zero TimestampedValue is absent and is rejected wherever a
// value is required.
type TimestampedValue[T comparable] struct {
	referenceTime ReferenceTime
	value         T
	valid         bool
}

// NewTimestampedValue returns an immutable (referenceTime, value) pair. It
// fails with ErrInvalidArgument when value is a nil interface.
func NewTimestampedValue[T comparable](referenceTime ReferenceTime, value T) (TimestampedValue[T], error) {
	if any(value) == nil {
		return TimestampedValue[T]{}, fmt.Errorf("%w: timestamped value payload is absent", ErrInvalidArgument)
	}
	return TimestampedValue[T]{referenceTime: referenceTime, value: value, valid: true}, nil
}

// UnixEpochTime is shorthand for the int64 payload every suggestion carries.
func UnixEpochTime(referenceTime ReferenceTime, unixEpochMillis int64) TimestampedValue[int64] {
	return TimestampedValue[int64]{referenceTime: referenceTime, value: unixEpochMillis, valid: true}
}

func (v TimestampedValue[T]) ReferenceTime() ReferenceTime { return v.referenceTime }

func (v TimestampedValue[T]) Value() T { return v.value }

// IsValid reports whether v was built by a constructor rather than being the
// zero value.
func (v TimestampedValue[T]) IsValid() bool { return v.valid }

// Equal reports structural equality over both fields.
func (v TimestampedValue[T]) Equal(other TimestampedValue[T]) bool {
	return v == other
}

// ElapsedSince returns how long before now the value was captured. now must
// come from the same clock domain.
func (v TimestampedValue[T]) ElapsedSince(now ReferenceTime) time.Duration {
	return now - v.referenceTime
}

func (v TimestampedValue[T]) String() string {
	return fmt.Sprintf("TimestampedValue{referenceTime=%s, value=%v}", v.referenceTime, v.value)
}
