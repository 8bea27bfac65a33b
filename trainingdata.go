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


package trainingdata

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ENKI-420/dnalang-training-data/core"
	"github.com/ENKI-420/dnalang-training-data/corpus"
	"github.com/ENKI-420/dnalang-training-data/extract"
	"github.com/ENKI-420/dnalang-training-data/index"
	"github.com/ENKI-420/dnalang-training-data/search"
	"github.com/ENKI-420/dnalang-training-data/storage"
	"github.com/ENKI-420/dnalang-training-data/synth"
)

// Pipeline runs the full masterlog conversion: extraction, corpus assembly
// and training record synthesis.
type Pipeline struct {
	extractor   *extract.Extractor
	builder     *corpus.Builder
	synthesizer *synth.Synthesizer
	logger      *slog.Logger
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*pipelineOptions)

type pipelineOptions struct {
	extractConfig *extract.Config
	synthConfig   *synth.Config
}

// WithExtractConfig sets the extraction configuration.
func WithExtractConfig(cfg *extract.Config) PipelineOption {
	return func(o *pipelineOptions) {
		o.extractConfig = cfg
	}
}

// WithSynthConfig sets the synthesis configuration.
func WithSynthConfig(cfg *synth.Config) PipelineOption {
	return func(o *pipelineOptions) {
		o.synthConfig = cfg
	}
}

// NewPipeline creates a conversion pipeline.
func NewPipeline(opts ...PipelineOption) (*Pipeline, error) {
	// Apply options
	options := &pipelineOptions{
		extractConfig: extract.DefaultConfig(), // Default if not provided
		synthConfig:   synth.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	extractor, err := extract.New(options.extractConfig)
	if err != nil {
		return nil, err
	}

	builder, err := corpus.NewBuilder(extractor)
	if err != nil {
		return nil, err
	}

	synthesizer, err := synth.New(options.synthConfig)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		extractor:   extractor,
		builder:     builder,
		synthesizer: synthesizer,
		logger:      slog.Default(),
	}, nil
}

// Conversion is the result of converting one masterlog.
type Conversion struct {
	Corpus  *corpus.Corpus
	Records []core.KnowledgeRecord
}

// Convert extracts a corpus from content and synthesizes its training
// records. source names the origin in the corpus and record metadata.
func (p *Pipeline) Convert(source, content string) *Conversion {
	c := p.builder.Build(source, content)
	records := p.synthesizer.Records(c)

	p.logger.Info("masterlog converted",
		"source", source,
		"equations", c.Stats.EquationCount,
		"metrics", c.Stats.MetricCount,
		"organisms", c.Stats.OrganismCount,
		"sections", c.Stats.SectionCount,
		"records", len(records))

	return &Conversion{Corpus: c, Records: records}
}

// ConvertFile reads and converts the masterlog at path. Unlike knowledge
// base loading, a missing or unreadable masterlog is an error.
func (p *Pipeline) ConvertFile(path string) (*Conversion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return p.Convert(filepath.Base(path), extract.DecodePermissive(data)), nil
}

// Open loads the knowledge base at path and returns a searcher over it.
// Files ending in .snap are read as snapshots, everything else as JSONL.
// A missing JSONL file yields an empty searcher.
func Open(path string, opts ...search.ConfigOption) (*search.Searcher, error) {
	records, err := storage.ReadKnowledgeBase(path)
	if err != nil {
		return nil, err
	}

	return search.NewSearcher(records, index.Build(records, nil), search.NewConfig(opts...))
}
