package synth

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ENKI-420/dnalang-training-data/core"
	"github.com/ENKI-420/dnalang-training-data/corpus"
	"github.com/ENKI-420/dnalang-training-data/extract"
)

// Synthesizer derives knowledge records from a corpus.
type Synthesizer struct {
	cfg    *Config
	logger *slog.Logger
}

// Option configures a Synthesizer.
type Option func(*Synthesizer) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Synthesizer) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// New creates a Synthesizer. A nil cfg selects DefaultConfig().
func New(cfg *Config, opts ...Option) (*Synthesizer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Synthesizer{
		cfg:    cfg,
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Records derives instruction/response records from the corpus, in corpus
// order: sections, then equations, then organisms, then the fixed CCCE
// fundamentals. A nil corpus yields nil.
func (s *Synthesizer) Records(c *corpus.Corpus) []core.KnowledgeRecord {
	if c == nil {
		return nil
	}

	records := make([]core.KnowledgeRecord, 0,
		len(c.Sections)+len(c.Equations)+len(c.Organisms)+len(fundamentals))

	for _, section := range c.Sections {
		if section.Title == "" || utf8.RuneCountInString(section.Content) <= s.cfg.SectionMinContent {
			continue
		}
		records = append(records, s.record(
			core.KindInstruction,
			fmt.Sprintf("Explain %s in the Ω-Recursive framework", section.Title),
			extract.TruncateRunes(section.Content, s.cfg.SectionResponseLimit),
			map[string]string{"source": "masterlog", "section": section.Title},
		))
	}

	for _, eq := range c.Equations {
		words := eq.Type.Words()
		records = append(records, s.record(
			core.KindEquation,
			fmt.Sprintf("What is the formula for %s?", words),
			fmt.Sprintf("The %s is defined as: %s", words, eq.Formula),
			map[string]string{"equation_id": eq.Id, "type": string(eq.Type)},
		))
	}

	for _, org := range c.Organisms {
		records = append(records, s.record(
			core.KindOrganism,
			fmt.Sprintf("Describe the %s organism", org.Name),
			fmt.Sprintf("ORGANISM %s is a DNA-Lang construct with genes: %s. %s",
				org.Name, strings.Join(org.GeneNames(), ", "), org.Raw),
			map[string]string{
				"organism":   org.Name,
				"gene_count": strconv.Itoa(len(org.Genes)),
			},
		))
	}

	for _, f := range fundamentals {
		records = append(records, s.record(
			core.KindKnowledge, f.question, f.answer,
			map[string]string{"category": "ccce_fundamentals"},
		))
	}

	s.logger.Debug("records synthesized", "source", c.Source, "count", len(records))

	return records
}

func (s *Synthesizer) record(kind, instruction, response string, metadata map[string]string) core.KnowledgeRecord {
	r := core.KnowledgeRecord{
		Kind:        kind,
		System:      s.cfg.SystemPrompt,
		Instruction: instruction,
		Response:    response,
		Metadata:    metadata,
	}
	r.Id = core.IDFromContent(r.Text())
	return r
}
