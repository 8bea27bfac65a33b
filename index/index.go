package index

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ENKI-420/dnalang-training-data/core"
)

// Index maps tokens to the ordinals of the records containing them. A
// record ordinal appears once per occurrence of the token in that record.
type Index struct {
	postings map[string][]int
}

// Tokenize lowercases text and splits it on whitespace. It applies no
// length filtering; that belongs to Build, so queries and records share
// one tokenizer.
func Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// Build indexes records in order. The ordinal stored in a posting list is
// the record's position in the records slice. A nil cfg selects
// DefaultConfig().
func Build(records []core.KnowledgeRecord, cfg *Config) *Index {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	postings := make(map[string][]int)
	for i := range records {
		for _, token := range Tokenize(records[i].Text()) {
			if utf8.RuneCountInString(token) < cfg.MinTokenRunes {
				continue
			}
			postings[token] = append(postings[token], i)
		}
	}

	return &Index{postings: postings}
}

// Postings returns the posting list for token, or nil when the token is not
// indexed. The returned slice is shared with the index; callers must not
// modify it.
func (idx *Index) Postings(token string) []int {
	return idx.postings[token]
}

// Tokens returns every indexed token in lexical order.
func (idx *Index) Tokens() []string {
	tokens := make([]string, 0, len(idx.postings))
	for token := range idx.postings {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}
