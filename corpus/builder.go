package corpus

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/ENKI-420/dnalang-training-data/core"
	"github.com/ENKI-420/dnalang-training-data/extract"
)

// Stats records what extraction found in a single source, before any
// deduplication.
type Stats struct {
	// TotalLines is the number of newline characters in the raw input.
	TotalLines int `json:"total_lines"`

	// TotalChars is the rune count of the raw input.
	TotalChars int `json:"total_chars"`

	// EquationCount is the number of equations extracted.
	EquationCount int `json:"equations_extracted"`

	// MetricCount is the number of raw metric readings extracted, counted
	// before symbol deduplication.
	MetricCount int `json:"metrics_extracted"`

	// OrganismCount is the number of organism blocks extracted.
	OrganismCount int `json:"organisms_extracted"`

	// SectionCount is the number of sections kept.
	SectionCount int `json:"sections_extracted"`
}

// Corpus holds everything extracted from one masterlog source. Metrics are
// deduplicated by symbol: symbols keep their first-seen order and the last
// reading of a symbol wins, matching how the platform reports the final
// state of a session.
type Corpus struct {
	Source    string          `json:"source"`
	Equations []core.Equation `json:"equations"`
	Metrics   []core.Metric   `json:"metrics"`
	Organisms []core.Organism `json:"organisms"`
	Sections  []core.Section  `json:"sections"`
	Stats     Stats           `json:"statistics"`
}

// Builder runs extraction over raw masterlog text and assembles the results
// into a Corpus.
type Builder struct {
	extractor *extract.Extractor
	logger    *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// NewBuilder creates a new corpus builder.
func NewBuilder(extractor *extract.Extractor, opts ...Option) (*Builder, error) {
	if extractor == nil {
		return nil, ErrExtractorRequired
	}

	b := &Builder{
		extractor: extractor,
		logger:    slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Build runs the four extraction families over content in one synchronous
// pass. The families are independent: an organism defined inside a section
// body appears in both Organisms and that section's content.
func (b *Builder) Build(source, content string) *Corpus {
	equations := b.extractor.Equations(content)
	metrics := b.extractor.Metrics(content)
	organisms := b.extractor.Organisms(content)
	sections := b.extractor.Sections(content)

	c := &Corpus{
		Source:    source,
		Equations: equations,
		Metrics:   dedupeMetrics(metrics),
		Organisms: organisms,
		Sections:  sections,
		Stats: Stats{
			TotalLines:    strings.Count(content, "\n"),
			TotalChars:    utf8.RuneCountInString(content),
			EquationCount: len(equations),
			MetricCount:   len(metrics),
			OrganismCount: len(organisms),
			SectionCount:  len(sections),
		},
	}

	b.logger.Debug("corpus built",
		"source", source,
		"equations", c.Stats.EquationCount,
		"metrics", c.Stats.MetricCount,
		"organisms", c.Stats.OrganismCount,
		"sections", c.Stats.SectionCount)

	return c
}

// dedupeMetrics keeps one reading per symbol. Symbols stay in first-seen
// order and the last reading of a symbol overwrites earlier ones.
func dedupeMetrics(metrics []core.Metric) []core.Metric {
	deduped := make([]core.Metric, 0, len(metrics))
	position := make(map[string]int, len(metrics))

	for _, m := range metrics {
		if i, seen := position[m.Symbol]; seen {
			deduped[i] = m
			continue
		}
		position[m.Symbol] = len(deduped)
		deduped = append(deduped, m)
	}

	return deduped
}
