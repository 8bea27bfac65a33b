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


package synth

import (
	"errors"

	"github.com/ENKI-420/dnalang-training-data/core"
)

// Config holds configuration for record synthesis.
type Config struct {
	// SystemPrompt is attached to every synthesized record.
	// Default: core.DefaultSystemPrompt
	SystemPrompt string

	// SectionMinContent is the content length (in runes) a section must
	// exceed to produce a record. Sections at or under it are skipped.
	// Default: 100
	SectionMinContent int

	// SectionResponseLimit caps the section content carried into a record's
	// response, in runes.
	// Default: 1500
	SectionResponseLimit int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithSystemPrompt sets the system prompt attached to synthesized records.
func WithSystemPrompt(prompt string) ConfigOption {
	return func(c *Config) {
		c.SystemPrompt = prompt
	}
}

// WithSectionMinContent sets the section content length threshold.
func WithSectionMinContent(minimum int) ConfigOption {
	return func(c *Config) {
		c.SectionMinContent = minimum
	}
}

// WithSectionResponseLimit sets the section response cap.
func WithSectionResponseLimit(limit int) ConfigOption {
	return func(c *Config) {
		c.SectionResponseLimit = limit
	}
}

// DefaultConfig returns a Config with the platform's standard values.
func DefaultConfig() *Config {
	return &Config{
		SystemPrompt:         core.DefaultSystemPrompt,
		SectionMinContent:    100,
		SectionResponseLimit: 1500,
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
	if c.SystemPrompt == "" {
		return errors.New("synth config: SystemPrompt is required")
	}
	if c.SectionMinContent < 0 {
		return errors.New("synth config: SectionMinContent must not be negative")
	}
	if c.SectionResponseLimit < 1 {
		return errors.New("synth config: SectionResponseLimit must be positive")
	}
	return nil
}
