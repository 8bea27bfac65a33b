package search

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ENKI-420/dnalang-training-data/core"
	"github.com/ENKI-420/dnalang-training-data/index"
)

// Result is a single ranked hit.
type Result struct {
	// Record points into the searcher's record slice.
	Record *core.KnowledgeRecord

	// Index is the record's ordinal in the knowledge base.
	Index int

	// Score is the summed occurrence count of the query tokens in the record.
	Score int
}

// Searcher provides keyword retrieval over an indexed knowledge base.
type Searcher struct {
	records []core.KnowledgeRecord
	index   *index.Index
	cfg     *Config
	logger  *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher over records and the index built from
// them. The records slice may be empty; every query then returns no hits.
// A nil cfg selects DefaultConfig().
func NewSearcher(records []core.KnowledgeRecord, idx *index.Index, cfg *Config, opts ...Option) (*Searcher, error) {
	if idx == nil {
		return nil, ErrIndexRequired
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Searcher{
		records: records,
		index:   idx,
		cfg:     cfg,
		logger:  slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Len returns the number of records in the knowledge base.
func (s *Searcher) Len() int {
	return len(s.records)
}

// DefaultLimit returns the configured result count for callers that have no
// opinion of their own.
func (s *Searcher) DefaultLimit() int {
	return s.cfg.DefaultLimit
}

// Search returns up to limit records ranked by how often the query tokens
// occur in them. Ties rank by ascending record ordinal, so earlier records
// win. An empty or whitespace query returns no hits and no error.
func (s *Searcher) Search(query string, limit int) ([]Result, error) {
	return s.SearchWithMonitor(query, limit, nil)
}

// SearchWithMonitor searches with monitoring. The monitor receives callbacks
// at each stage of the retrieval process.
func (s *Searcher) SearchWithMonitor(query string, limit int, monitor RetrievalMonitor) ([]Result, error) {
	if err := core.ValidateResultLimit(limit); err != nil {
		return nil, err
	}

	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	// Query tokens are not length-filtered: short tokens simply have no
	// postings and score nothing.
	tokens := index.Tokenize(query)
	monitor.AfterTokenize(tokens)

	scores := make(map[int]int)
	for _, token := range tokens {
		postings := s.index.Postings(token)
		monitor.TokenMatched(token, len(postings))
		for _, ordinal := range postings {
			scores[ordinal]++
		}
	}

	if len(scores) == 0 {
		monitor.Finish(nil)
		return []Result{}, nil
	}

	results := make([]Result, 0, len(scores))
	for ordinal, score := range scores {
		results = append(results, Result{
			Record: &s.records[ordinal],
			Index:  ordinal,
			Score:  score,
		})
	}

	// Sort by score descending, ties by record order
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Index < results[j].Index
	})

	if len(results) > limit {
		results = results[:limit]
	}

	s.logger.Debug("search complete", "query", query, "hits", len(results))
	monitor.Finish(results)

	return results, nil
}

// Context assembles the top hits for query into a Q/A context string for
// prompt injection. Blocks are packed in rank order while they fit under
// tokenBudget * CharsPerToken characters; packing stops at the first block
// that would overflow, so a large early block can leave the budget
// under-filled even when a later hit would still fit.
func (s *Searcher) Context(query string, tokenBudget int) (string, error) {
	if err := core.ValidateTokenBudget(tokenBudget); err != nil {
		return "", err
	}

	results, err := s.Search(query, s.cfg.ContextTopK)
	if err != nil {
		return "", err
	}

	budget := tokenBudget * s.cfg.CharsPerToken

	var b strings.Builder
	total := 0
	for _, result := range results {
		block := fmt.Sprintf("Q: %s\nA: %s\n\n", result.Record.Instruction, result.Record.Response)
		size := utf8.RuneCountInString(block)
		if total+size >= budget {
			break
		}
		b.WriteString(block)
		total += size
	}

	return b.String(), nil
}
