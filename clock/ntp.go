package clock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/beevik/ntp"
	"github.com/tnicklin/timesuggest/suggestion"
)

// Logger is a minimal logging interface satisfied by logger.Logger.
type Logger interface {
	InfoW(msg string, keysAndValues ...any)
	WarnW(msg string, keysAndValues ...any)
}

// Sink receives each suggestion produced by a successful sync.
type Sink func(*suggestion.NetworkTimeSuggestion)

type queryFunc func(host string, opt ntp.QueryOptions) (*ntp.Response, error)

// NTPClock provides drift-corrected wall-clock time by periodically
// syncing with an NTP server. Every successful sync also yields a
// NetworkTimeSuggestion anchored to the reference clock.
type NTPClock struct {
	server    string
	interval  time.Duration
	timeout   time.Duration
	logger    Logger
	wall      Clock
	reference Monotonic
	sink      Sink
	query     queryFunc

	mu     sync.RWMutex
	offset time.Duration
	latest *suggestion.NetworkTimeSuggestion

	cancel context.CancelFunc
	done   chan struct{}
}

// Option configures an NTPClock.
type Option func(*NTPClock)

// WithServer sets the NTP server address.
func WithServer(server string) Option {
	return func(c *NTPClock) { c.server = server }
}

// WithInterval sets the re-sync interval.
func WithInterval(d time.Duration) Option {
	return func(c *NTPClock) { c.interval = d }
}

// WithTimeout sets the NTP query timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *NTPClock) { c.timeout = d }
}

// WithLogger sets the logger.
func WithLogger(l Logger) Option {
	return func(c *NTPClock) { c.logger = l }
}

// WithWallClock sets the local clock the NTP offset is applied to.
func WithWallClock(wall Clock) Option {
	return func(c *NTPClock) { c.wall = wall }
}

// WithReferenceClock sets the clock that stamps suggestions.
func WithReferenceClock(m Monotonic) Option {
	return func(c *NTPClock) { c.reference = m }
}

// WithSink registers a callback for every new suggestion.
func WithSink(s Sink) Option {
	return func(c *NTPClock) { c.sink = s }
}

const (
	defaultServer   = "pool.ntp.org"
	defaultInterval = 30 * time.Minute
	defaultTimeout  = 5 * time.Second
)

// NewNTP creates an NTPClock with the given options.
func NewNTP(opts ...Option) *NTPClock {
	c := &NTPClock{
		server:    defaultServer,
		interval:  defaultInterval,
		timeout:   defaultTimeout,
		wall:      System(),
		reference: Boot(),
		query:     ntp.QueryWithOptions,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Now returns the current time adjusted by the NTP offset.
func (c *NTPClock) Now() time.Time {
	c.mu.RLock()
	off := c.offset
	c.mu.RUnlock()
	return c.wall.Now().Add(off)
}

// Offset returns the current NTP offset.
func (c *NTPClock) Offset() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.offset
}

// Latest returns the suggestion from the most recent successful sync, or nil.
func (c *NTPClock) Latest() *suggestion.NetworkTimeSuggestion {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.latest
}

// Start performs an initial NTP sync and starts a background goroutine
// that re-syncs on the configured interval.
func (c *NTPClock) Start(ctx context.Context) error {
	c.sync()

	ctx, c.cancel = context.WithCancel(ctx)
	c.done = make(chan struct{})
	go c.run(ctx)
	return nil
}

// Stop shuts down the background sync goroutine.
func (c *NTPClock) Stop() {
	if c.cancel != nil {
		c.cancel()
		<-c.done
	}
}

// Suggest queries the server once and returns the resulting suggestion
// without touching the stored offset. A context deadline shortens the
// query timeout.
func (c *NTPClock) Suggest(ctx context.Context) (*suggestion.NetworkTimeSuggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}

	s, _, err := c.suggest(timeout)
	return s, err
}

func (c *NTPClock) run(ctx context.Context) {
	defer close(c.done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.sync()
		}
	}
}

func (c *NTPClock) sync() {
	s, offset, err := c.suggest(c.timeout)
	if err != nil {
		if c.logger != nil {
			c.logger.WarnW("ntp sync failed, keeping last offset", "server", c.server, "error", err)
		}
		return
	}

	c.mu.Lock()
	c.offset = offset
	c.latest = s
	c.mu.Unlock()

	if c.logger != nil {
		c.logger.InfoW("ntp sync", "offset", offset, "suggestion", s.String())
	}
	if c.sink != nil {
		c.sink(s)
	}
}

func (c *NTPClock) suggest(timeout time.Duration) (*suggestion.NetworkTimeSuggestion, time.Duration, error) {
	resp, err := c.query(c.server, ntp.QueryOptions{
		Timeout: timeout,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("ntp query %s: %w", c.server, err)
	}
	if err = resp.Validate(); err != nil {
		return nil, 0, fmt.Errorf("ntp response from %s: %w", c.server, err)
	}

	// Read both clocks together so the reference reading anchors the value.
	ref := c.reference.Elapsed()
	now := c.wall.Now().Add(resp.ClockOffset)

	s, err := suggestion.NewNetworkTimeSuggestion(suggestion.UnixEpochTime(ref, now.UnixMilli()))
	if err != nil {
		return nil, 0, err
	}
	s.AddDebugInfo(
		"ntp server="+c.server,
		fmt.Sprintf("stratum=%d", resp.Stratum),
		"rtt="+resp.RTT.String(),
		"offset="+resp.ClockOffset.String(),
	)
	return s, resp.ClockOffset, nil
}
