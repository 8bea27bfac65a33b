// Copyright 2025 ENKI-420
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package extract

import "errors"

// Config holds the extraction limits. All limits count runes, matching the
// platform's code-point slicing conventions.
type Config struct {
	// SectionContentLimit caps stored section content.
	// Default: 2000
	SectionContentLimit int

	// SectionMinContent is the minimum normalized content length a section
	// needs to be kept. Shorter sections are dropped.
	// Default: 50
	SectionMinContent int

	// OrganismExcerptLimit caps the raw body excerpt kept on an organism.
	// Default: 500
	OrganismExcerptLimit int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithSectionContentLimit sets the stored section content cap.
func WithSectionContentLimit(limit int) ConfigOption {
	return func(c *Config) {
		c.SectionContentLimit = limit
	}
}

// WithSectionMinContent sets the minimum kept section length.
func WithSectionMinContent(minimum int) ConfigOption {
	return func(c *Config) {
		c.SectionMinContent = minimum
	}
}

// WithOrganismExcerptLimit sets the organism body excerpt cap.
func WithOrganismExcerptLimit(limit int) ConfigOption {
	return func(c *Config) {
		c.OrganismExcerptLimit = limit
	}
}

// DefaultConfig returns a Config with the platform's standard limits.
func DefaultConfig() *Config {
	return &Config{
		SectionContentLimit:  2000,
		SectionMinContent:    50,
		OrganismExcerptLimit: 500,
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

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.SectionContentLimit < 1 {
		return errors.New("extract config: SectionContentLimit must be positive")
	}
	if c.SectionMinContent < 0 {
		return errors.New("extract config: SectionMinContent must not be negative")
	}
	if c.OrganismExcerptLimit < 1 {
		return errors.New("extract config: OrganismExcerptLimit must be positive")
	}
	return nil
}
