package extract

import (
	"fmt"
	"regexp"

	"github.com/ENKI-420/dnalang-training-data/core"
)

// numberedPattern matches printed equation numbers: "(12) E=mc^2".
var numberedPattern = regexp.MustCompile(`\((\d+)\)\s+([^\n]+)`)

// symbolicPatterns are tried in this fixed order. Each captures the
// right-hand side of a known formalism assignment.
var symbolicPatterns = []struct {
	re  *regexp.Regexp
	typ core.EquationType
}{
	{regexp.MustCompile(`Ω\[S\]\s*=\s*([^\n]+)`), core.EquationSessionFunctional},
	{regexp.MustCompile(`Ξ_S\s*=\s*([^\n]+)`), core.EquationCCCEMetric},
	{regexp.MustCompile(`T_μν\s*=\s*([^\n]+)`), core.EquationTensorDefinition},
	{regexp.MustCompile(`R_αβ\s*=\s*([^\n]+)`), core.EquationResourceMatrix},
	{regexp.MustCompile(`L\(s\)\s*=\s*([^\n]+)`), core.EquationEffortFunctional},
	{regexp.MustCompile(`C_μ\s*=\s*([^\n]+)`), core.EquationCapabilityTensor},
	{regexp.MustCompile(`Ω_R\s*=\s*([^\n]+)`), core.EquationReadinessScore},
}

// Equations extracts numbered and symbolic equations from raw text.
//
// Numbered equations keep their printed number: "(12) E=mc^2" becomes EQ_12.
// Symbolic equations are numbered per type by a counter starting at zero, so
// an id like session_functional_1 is stable no matter which other pattern
// types matched earlier in the text.
func (e *Extractor) Equations(content string) []core.Equation {
	numbered := numberedPattern.FindAllStringSubmatch(content, -1)
	equations := make([]core.Equation, 0, len(numbered))

	for _, m := range numbered {
		equations = append(equations, core.Equation{
			Id:      "EQ_" + m[1],
			Formula: Normalize(m[2]),
			Type:    core.EquationNumbered,
		})
	}

	for _, sp := range symbolicPatterns {
		for k, m := range sp.re.FindAllStringSubmatch(content, -1) {
			equations = append(equations, core.Equation{
				Id:      fmt.Sprintf("%s_%d", sp.typ, k),
				Formula: Normalize(m[1]),
				Type:    sp.typ,
			})
		}
	}

	return equations
}
