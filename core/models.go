package core

import (
	"encoding/binary"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for knowledge records.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// EquationType classifies an extracted equation.
type EquationType string

const (
	// EquationNumbered is a numbered governing equation such as "(12) E=mc^2".
	EquationNumbered EquationType = "numbered"
	// EquationSessionFunctional is the Ω[S] session functional.
	EquationSessionFunctional EquationType = "session_functional"
	// EquationCCCEMetric is the Ξ_S composite CCCE metric.
	EquationCCCEMetric EquationType = "ccce_metric"
	// EquationTensorDefinition is the T_μν tensor definition.
	EquationTensorDefinition EquationType = "tensor_definition"
	// EquationResourceMatrix is the R_αβ resource matrix.
	EquationResourceMatrix EquationType = "resource_matrix"
	// EquationEffortFunctional is the L(s) level-of-effort functional.
	EquationEffortFunctional EquationType = "effort_functional"
	// EquationCapabilityTensor is the C_μ capability tensor.
	EquationCapabilityTensor EquationType = "capability_tensor"
	// EquationReadinessScore is the Ω_R readiness score.
	EquationReadinessScore EquationType = "readiness_score"
)

// Words returns the type with underscores replaced by spaces, for use in prose.
func (t EquationType) Words() string {
	return strings.ReplaceAll(string(t), "_", " ")
}

// Equation is a mathematical formula extracted from a masterlog.
type Equation struct {
	Id      string       `json:"id"`
	Formula string       `json:"formula"`
	Type    EquationType `json:"type"`
}

// MetricDomainCCCE is the domain tag applied to all extracted CCCE metrics.
const MetricDomainCCCE = "ccce"

// Canonical metric names produced by MetricName.
const (
	MetricConsciousness = "consciousness"
	MetricCoherence     = "coherence"
	MetricDecoherence   = "decoherence"
	MetricEfficiency    = "efficiency"
	MetricUnknown       = "unknown"
)

// MetricName maps an uppercased metric symbol to its canonical name.
// Symbols outside the fixed table are tagged MetricUnknown rather than
// passed through.
func MetricName(symbol string) string {
	switch symbol {
	case "Φ", "PHI":
		return MetricConsciousness
	case "Λ", "LAMBDA":
		return MetricCoherence
	case "Γ", "GAMMA":
		return MetricDecoherence
	case "Ξ", "XI":
		return MetricEfficiency
	default:
		return MetricUnknown
	}
}

// Metric is a single CCCE measurement read out of a masterlog.
type Metric struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Domain string  `json:"domain"`
}

// Gene is a named sub-block inside an organism definition.
type Gene struct {
	Name       string `json:"name"`
	Definition string `json:"definition"`
}

// Organism is a DNA-Lang organism definition.
// Raw is an excerpt of the brace-balanced body, capped at 500 characters.
type Organism struct {
	Name  string            `json:"name"`
	Meta  map[string]string `json:"meta"`
	Genes []Gene            `json:"genes"`
	Raw   string            `json:"raw"`
}

// GeneNames returns the organism's gene names in definition order.
func (o *Organism) GeneNames() []string {
	names := make([]string, len(o.Genes))
	for i, g := range o.Genes {
		names[i] = g.Name
	}
	return names
}

// Section is a bordered masterlog section.
// Position is the ordinal of the title match in the source text; sections
// dropped for being too short leave gaps in the sequence.
type Section struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Position int    `json:"position"`
}

// Knowledge record kinds produced by the synthesizer.
const (
	KindInstruction = "instruction"
	KindEquation    = "equation"
	KindOrganism    = "organism"
	KindKnowledge   = "knowledge"
)

// KnowledgeRecord is a single instruction/response training pair.
// Records loaded from externally produced files may carry only the
// instruction, response and metadata fields.
type KnowledgeRecord struct {
	Id          ID                `json:"id,omitempty"`
	Kind        string            `json:"type,omitempty"`
	System      string            `json:"system,omitempty"`
	Instruction string            `json:"instruction"`
	Response    string            `json:"response"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Text returns the searchable text of the record.
func (r *KnowledgeRecord) Text() string {
	return r.Instruction + " " + r.Response
}
