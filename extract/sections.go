package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ENKI-420/dnalang-training-data/core"
)

// sectionPattern matches a bordered title: three or more ═ or ─ glyphs, an
// ALL-CAPS title line, and another border.
var sectionPattern = regexp.MustCompile(`[═─]{3,}\s*\n?\s*([A-Z][A-Z\s\-&:]+[A-Z])\s*\n?\s*[═─]{3,}`)

// Sections extracts bordered sections from raw text. A section's content is
// the raw text between the end of its title block and the start of the next
// (or end of input), trimmed and capped at the configured limit. Sections
// whose normalized content is shorter than the minimum are dropped; their
// position ordinals are not reassigned, so kept sections can carry gaps.
func (e *Extractor) Sections(content string) []core.Section {
	locs := sectionPattern.FindAllStringSubmatchIndex(content, -1)
	sections := make([]core.Section, 0, len(locs))

	for i, loc := range locs {
		start := loc[1]
		end := len(content)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}

		body := strings.TrimSpace(content[start:end])
		if utf8.RuneCountInString(Normalize(body)) < e.cfg.SectionMinContent {
			continue
		}

		sections = append(sections, core.Section{
			Title:    Normalize(content[loc[2]:loc[3]]),
			Content:  TruncateRunes(body, e.cfg.SectionContentLimit),
			Position: i,
		})
	}

	return sections
}
