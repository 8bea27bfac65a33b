package extract

import (
	"regexp"
	"strings"

	"github.com/ENKI-420/dnalang-training-data/core"
)

var (
	// organismOpenPattern locates an organism header up to and including its
	// opening brace; the body is then bounded with BalancedSpan.
	organismOpenPattern = regexp.MustCompile(`ORGANISM\s+(\w+)\s*\{`)

	metaPattern = regexp.MustCompile(`META\s*\{([^}]+)\}`)
	genePattern = regexp.MustCompile(`GENE\s+(\w+)\s*\{([^}]+)\}`)
)

// Organisms extracts DNA-Lang ORGANISM blocks from raw text. Bodies are
// bounded by brace balancing, so an extra {} pair nested inside a gene
// definition cannot truncate the outer block. Blocks whose braces never
// balance are skipped.
func (e *Extractor) Organisms(content string) []core.Organism {
	headers := organismOpenPattern.FindAllStringSubmatchIndex(content, -1)
	organisms := make([]core.Organism, 0, len(headers))

	for _, loc := range headers {
		name := content[loc[2]:loc[3]]

		open := loc[1] - 1 // the matched opening brace
		end, ok := BalancedSpan(content, open)
		if !ok {
			e.logger.Debug("skipping unterminated organism block", "organism", name)
			continue
		}
		body := content[open+1 : end]

		organisms = append(organisms, core.Organism{
			Name:  name,
			Meta:  parseMeta(body),
			Genes: parseGenes(body),
			Raw:   TruncateRunes(body, e.cfg.OrganismExcerptLimit),
		})
	}

	return organisms
}

// parseMeta reads the organism's META block into a key/value map. Values
// lose their surrounding quotes. A missing META block yields an empty map.
func parseMeta(body string) map[string]string {
	meta := map[string]string{}

	m := metaPattern.FindStringSubmatch(body)
	if m == nil {
		return meta
	}

	for _, line := range strings.Split(m[1], "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		meta[Normalize(key)] = Normalize(value)
	}

	return meta
}

// parseGenes reads the organism's GENE sub-blocks. A gene definition ends at
// the first closing brace; only the outer organism block is brace-balanced.
func parseGenes(body string) []core.Gene {
	matches := genePattern.FindAllStringSubmatch(body, -1)
	genes := make([]core.Gene, 0, len(matches))

	for _, m := range matches {
		genes = append(genes, core.Gene{
			Name:       m[1],
			Definition: Normalize(m[2]),
		})
	}

	return genes
}
