package search

import "errors"

// Config holds retrieval parameters.
type Config struct {
	// ContextTopK is how many ranked hits Context considers for packing.
	// Default: 3
	ContextTopK int

	// CharsPerToken converts a token budget into a character budget.
	// Default: 4
	CharsPerToken int

	// DefaultLimit is the result count suggested to callers that have no
	// opinion of their own, such as CLI flag defaults.
	// Default: 5
	DefaultLimit int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithContextTopK sets how many hits Context considers.
func WithContextTopK(k int) ConfigOption {
	return func(c *Config) {
		c.ContextTopK = k
	}
}

// WithCharsPerToken sets the token-to-character conversion factor.
func WithCharsPerToken(chars int) ConfigOption {
	return func(c *Config) {
		c.CharsPerToken = chars
	}
}

// WithDefaultLimit sets the suggested result count.
func WithDefaultLimit(limit int) ConfigOption {
	return func(c *Config) {
		c.DefaultLimit = limit
	}
}

// DefaultConfig returns a Config with the platform's standard values.
func DefaultConfig() *Config {
	return &Config{
		ContextTopK:   3,
		CharsPerToken: 4,
		DefaultLimit:  5,
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Validate checks that the configuration is valid and complete.
func (c *Config) Validate() error {
	if c.ContextTopK < 1 {
		return errors.New("search config: ContextTopK must be positive")
	}
	if c.CharsPerToken < 1 {
		return errors.New("search config: CharsPerToken must be positive")
	}
	if c.DefaultLimit < 1 {
		return errors.New("search config: DefaultLimit must be positive")
	}
	return nil
}
