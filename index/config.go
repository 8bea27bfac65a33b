package index

// Config holds the indexing parameters.
type Config struct {
	// MinTokenRunes is the minimum rune length a token needs to be indexed.
	// Shorter tokens are discarded. Values below 1 keep every token.
	// Default: 4
	MinTokenRunes int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithMinTokenRunes sets the minimum indexed token length.
func WithMinTokenRunes(minimum int) ConfigOption {
	return func(c *Config) {
		c.MinTokenRunes = minimum
	}
}

// DefaultConfig returns a Config with the platform's standard values.
func DefaultConfig() *Config {
	return &Config{
		MinTokenRunes: 4,
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
