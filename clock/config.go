package clock

import "time"

// NTPConfig holds NTP source configuration.
type NTPConfig struct {
	Server   string        `yaml:"server"`
	Interval time.Duration `yaml:"interval"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Defaults applies default values to the config.
func (c *NTPConfig) Defaults() {
	if c.Server == "" {
		c.Server = defaultServer
	}
	if c.Interval <= 0 {
		c.Interval = defaultInterval
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Options converts the config into NTPClock options.
func (c NTPConfig) Options() []Option {
	c.Defaults()
	return []Option{
		WithServer(c.Server),
		WithInterval(c.Interval),
		WithTimeout(c.Timeout),
	}
}
