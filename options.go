package zerowidth

import "github.com/rs/zerolog"

// Option configures a Codec.
type Option func(*Codec) error

// WithPosition inserts hidden text after the given number of carrier runes.
// Out of range positions are clamped at encode time, not rejected.
func WithPosition(position int) Option {
	return func(c *Codec) error {
		c.position = position
		c.firstSpace = false
		return nil
	}
}

// WithFirstSpace inserts hidden text before the first space of the carrier,
// or after its first character if it has none. This is the default.
func WithFirstSpace() Option {
	return func(c *Codec) error {
		c.firstSpace = true
		return nil
	}
}

// WithLogger sets the logger receiving debug events. Logging is off by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Codec) error {
		c.logger = logger
		return nil
	}
}
