package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ENKI-420/dnalang-training-data/core"
)

// metricPattern matches a CCCE symbol (Greek letter or spelled name, any
// case) followed by = or : and a decimal. The greedy numeric capture takes
// the whole digit/dot run, so a value is never cut off mid-number.
var metricPattern = regexp.MustCompile(`(?i)(Φ|Λ|Γ|Ξ|phi|lambda|gamma|xi)[_\s]*[=:]\s*([0-9.]+)`)

// Metrics extracts CCCE metric readings from raw text. Values that do not
// parse as a float (for example "0.7.3") are dropped and extraction
// continues. Duplicate symbols are kept here; deduplication belongs to the
// corpus builder.
func (e *Extractor) Metrics(content string) []core.Metric {
	matches := metricPattern.FindAllStringSubmatch(content, -1)
	metrics := make([]core.Metric, 0, len(matches))

	for _, m := range matches {
		symbol := strings.ToUpper(m[1])

		value, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			e.logger.Debug("dropping malformed metric value", "symbol", symbol, "raw", m[2])
			continue
		}

		metrics = append(metrics, core.Metric{
			Symbol: symbol,
			Name:   core.MetricName(symbol),
			Value:  value,
			Domain: core.MetricDomainCCCE,
		})
	}

	return metrics
}
