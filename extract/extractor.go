package extract

import (
	"log/slog"
)

// Extractor recognizes equations, metrics, organisms and sections in raw
// masterlog text. It is stateless apart from its configuration and safe for
// concurrent use.
type Extractor struct {
	cfg    *Config
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// New creates an Extractor. A nil cfg selects DefaultConfig().
func New(cfg *Config, opts ...Option) (*Extractor, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Extractor{
		cfg:    cfg,
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}
