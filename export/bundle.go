package export

import (
	"bufio"
	"encoding/json"
	"os"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ENKI-420/dnalang-training-data/core"
	"github.com/ENKI-420/dnalang-training-data/corpus"
)

// BundleVersion is the bundle format version.
const BundleVersion = "1.0.0"

// BundleMetadata describes the conversion that produced a bundle.
type BundleMetadata struct {
	Source       string             `json:"source"`
	ConvertedAt  time.Time          `json:"converted_at"`
	ConversionId string             `json:"conversion_id"`
	Version      string             `json:"version"`
	Platform     string             `json:"platform"`
	Constants    map[string]float64 `json:"constants"`
}

// BundleStatistics extends the corpus statistics with the synthesized
// record count.
type BundleStatistics struct {
	corpus.Stats
	TrainingPairs int `json:"training_pairs"`
}

// SectionSummary is the bundle's view of a section: the full content stays
// out of the bundle, only the title and content length travel.
type SectionSummary struct {
	Title  string `json:"title"`
	Length int    `json:"length"`
}

// Bundle is the full conversion report.
type Bundle struct {
	Metadata   BundleMetadata         `json:"metadata"`
	Statistics BundleStatistics       `json:"statistics"`
	Equations  []core.Equation        `json:"equations"`
	Metrics    []core.Metric          `json:"metrics"`
	Organisms  []core.Organism        `json:"organisms"`
	Sections   []SectionSummary       `json:"sections"`
	Training   []core.KnowledgeRecord `json:"training_data"`
}

// NewBundle assembles a bundle from a corpus and the records synthesized
// from it. Each call mints a fresh conversion id.
func NewBundle(c *corpus.Corpus, records []core.KnowledgeRecord) (*Bundle, error) {
	if c == nil {
		return nil, ErrCorpusRequired
	}

	sections := make([]SectionSummary, len(c.Sections))
	for i, s := range c.Sections {
		sections[i] = SectionSummary{
			Title:  s.Title,
			Length: utf8.RuneCountInString(s.Content),
		}
	}

	return &Bundle{
		Metadata: BundleMetadata{
			Source:       c.Source,
			ConvertedAt:  time.Now().UTC(),
			ConversionId: uuid.NewString(),
			Version:      BundleVersion,
			Platform:     core.PlatformName,
			Constants:    core.Constants(),
		},
		Statistics: BundleStatistics{
			Stats:         c.Stats,
			TrainingPairs: len(records),
		},
		Equations: c.Equations,
		Metrics:   c.Metrics,
		Organisms: c.Organisms,
		Sections:  sections,
		Training:  records,
	}, nil
}

// WriteBundle writes the bundle to path as indented JSON. Non-ASCII text is
// written as-is so formulas and Greek symbols stay readable.
func WriteBundle(path string, b *Bundle) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(b); err != nil {
		f.Close()
		return err
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
