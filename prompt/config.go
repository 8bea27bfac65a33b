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


package prompt

import (
	"errors"

	"github.com/ENKI-420/dnalang-training-data/core"
)

// Config holds prompt assembly parameters.
type Config struct {
	// SystemPrompt opens every assembled prompt.
	// Default: core.DefaultSystemPrompt
	SystemPrompt string

	// HistoryWindow is how many trailing conversation turns are rendered.
	// Default: 4
	HistoryWindow int

	// ContextBudget is the token budget handed to the context source.
	// Default: 2000
	ContextBudget int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithSystemPrompt sets the system prompt.
func WithSystemPrompt(prompt string) ConfigOption {
	return func(c *Config) {
		c.SystemPrompt = prompt
	}
}

// WithHistoryWindow sets how many trailing turns are rendered.
func WithHistoryWindow(turns int) ConfigOption {
	return func(c *Config) {
		c.HistoryWindow = turns
	}
}

// WithContextBudget sets the retrieval token budget.
func WithContextBudget(budget int) ConfigOption {
	return func(c *Config) {
		c.ContextBudget = budget
	}
}

// DefaultConfig returns a Config with the platform's standard values.
func DefaultConfig() *Config {
	return &Config{
		SystemPrompt:  core.DefaultSystemPrompt,
		HistoryWindow: 4,
		ContextBudget: 2000,
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
		return errors.New("prompt config: SystemPrompt is required")
	}
	if c.HistoryWindow < 0 {
		return errors.New("prompt config: HistoryWindow must not be negative")
	}
	if c.ContextBudget < 1 {
		return errors.New("prompt config: ContextBudget must be positive")
	}
	return nil
}
