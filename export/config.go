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


package export

import "errors"

// Config holds the export limits and model parameters.
type Config struct {
	// MaxSamples caps how many records any export carries.
	// Default: 500
	MaxSamples int

	// Model is the Ollama base model named in the Modelfile FROM line.
	// Default: "phi3:mini"
	Model string

	// Temperature is the sampling temperature written to the Modelfile.
	// Default: 0.7
	Temperature float64

	// TopP is the nucleus sampling bound written to the Modelfile.
	// Default: 0.9
	TopP float64

	// NumCtx is the context window written to the Modelfile.
	// Default: 4096
	NumCtx int

	// KnowledgeEntries is how many Q/A pairs the Modelfile SYSTEM block
	// embeds.
	// Default: 20
	KnowledgeEntries int

	// QuestionLimit caps each embedded question, in runes.
	// Default: 200
	QuestionLimit int

	// AnswerLimit caps each embedded answer, in runes.
	// Default: 300
	AnswerLimit int

	// KnowledgeTextLimit caps the whole embedded knowledge text, in runes.
	// Default: 3000
	KnowledgeTextLimit int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithMaxSamples sets the export record cap.
func WithMaxSamples(maximum int) ConfigOption {
	return func(c *Config) {
		c.MaxSamples = maximum
	}
}

// WithModel sets the Ollama base model.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

// WithKnowledgeEntries sets how many Q/A pairs the Modelfile embeds.
func WithKnowledgeEntries(entries int) ConfigOption {
	return func(c *Config) {
		c.KnowledgeEntries = entries
	}
}

// WithKnowledgeTextLimit sets the embedded knowledge text cap.
func WithKnowledgeTextLimit(limit int) ConfigOption {
	return func(c *Config) {
		c.KnowledgeTextLimit = limit
	}
}

// DefaultConfig returns a Config with the platform's standard values.
func DefaultConfig() *Config {
	return &Config{
		MaxSamples:         500,
		Model:              "phi3:mini",
		Temperature:        0.7,
		TopP:               0.9,
		NumCtx:             4096,
		KnowledgeEntries:   20,
		QuestionLimit:      200,
		AnswerLimit:        300,
		KnowledgeTextLimit: 3000,
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
	if c.MaxSamples < 1 {
		return errors.New("export config: MaxSamples must be positive")
	}
	if c.Model == "" {
		return errors.New("export config: Model is required")
	}
	if c.Temperature <= 0 {
		return errors.New("export config: Temperature must be positive")
	}
	if c.TopP <= 0 || c.TopP > 1 {
		return errors.New("export config: TopP must be in (0, 1]")
	}
	if c.NumCtx < 1 {
		return errors.New("export config: NumCtx must be positive")
	}
	if c.KnowledgeEntries < 0 {
		return errors.New("export config: KnowledgeEntries must not be negative")
	}
	if c.QuestionLimit < 1 || c.AnswerLimit < 1 {
		return errors.New("export config: question and answer limits must be positive")
	}
	if c.KnowledgeTextLimit < 1 {
		return errors.New("export config: KnowledgeTextLimit must be positive")
	}
	return nil
}
