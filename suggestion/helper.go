package suggestion

import (
	"encoding/binary"
	"fmt"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Helper carries the state and behavior shared by every suggestion type: the
// Unix epoch time with its reference time, and an append-only debug trail.
// Only the time participates in equality and hashing.
type Helper[K Kind] struct {
	unixEpochTime TimestampedValue[int64]

	mu        sync.RWMutex
	debugInfo []string
}

// NewHelper returns a Helper with an empty debug trail. It fails with
// ErrInvalidArgument when unixEpochTime is absent.
func NewHelper[K Kind](unixEpochTime TimestampedValue[int64]) (*Helper[K], error) {
	if !unixEpochTime.IsValid() {
		return nil, fmt.Errorf("%w: %s requires a unix epoch time", ErrInvalidArgument, kindOf[K]().TypeName())
	}
	return &Helper[K]{unixEpochTime: unixEpochTime}, nil
}

func (h *Helper[K]) UnixEpochTime() TimestampedValue[int64] {
	return h.unixEpochTime
}

// AddDebugInfo appends each non-empty string to the debug trail in order.
func (h *Helper[K]) AddDebugInfo(infos ...string) {
	if len(infos) == 0 {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, info := range infos {
		if info != "" {
			h.debugInfo = append(h.debugInfo, info)
		}
	}
}

// DebugInfo returns a copy of the debug trail.
func (h *Helper[K]) DebugInfo() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]string, len(h.debugInfo))
	copy(out, h.debugInfo)
	return out
}

// Equal reports whether both helpers hold the same unix epoch time. Debug
// info is ignored.
func (h *Helper[K]) Equal(other *Helper[K]) bool {
	if h == other {
		return true
	}
	if h == nil || other == nil {
		return false
	}
	return h.unixEpochTime.Equal(other.unixEpochTime)
}

// Hash is derived from the unix epoch time alone and agrees with Equal.
func (h *Helper[K]) Hash() uint64 {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[0:8], uint64(h.unixEpochTime.ReferenceTime()))
	binary.BigEndian.PutUint64(buf[8:16], uint64(h.unixEpochTime.Value()))
	return xxhash.Sum64(buf[:])
}

func (h *Helper[K]) String() string {
	h.mu.RLock()
	trail := strings.Join(h.debugInfo, ", ")
	h.mu.RUnlock()

	return fmt.Sprintf("%s{value=%s, debugInfo=[%s]}", kindOf[K]().TypeName(), h.unixEpochTime, trail)
}
