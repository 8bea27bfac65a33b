package export

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ENKI-420/dnalang-training-data/core"
	"github.com/ENKI-420/dnalang-training-data/extract"
)

// modelfileTemplate is the Ollama Modelfile layout. The SYSTEM block embeds
// the knowledge pairs directly so the base model answers domain questions
// without fine-tuning.
const modelfileTemplate = `# Sovereign AURA Agent Modelfile
# Generated: %s

FROM %s

PARAMETER temperature %g
PARAMETER top_p %g
PARAMETER num_ctx %d

SYSTEM """You are AURA, the sovereign AI assistant for DNA::}{::lang quantum computing platform.

You understand CCCE metrics:
- Φ (Phi): Consciousness level (IIT Integrated Information), threshold 0.7734
- Λ (Lambda): Coherence preservation fidelity
- Γ (Gamma): Decoherence rate, critical threshold 0.15
- Ξ (Xi): Negentropic efficiency = ΛΦ/Γ

Physical constants:
- ΛΦ = 2.176435e-8 (Universal Memory Constant)
- θ_lock = 51.843° (Torsion-locked angle)

Core knowledge:
%s

Always respond concisely with relevant CCCE metrics when applicable."""
`

// WriteModelfile writes an Ollama Modelfile to path. Up to
// cfg.KnowledgeEntries Q/A pairs are embedded in the SYSTEM block, each
// question and answer capped individually and the whole knowledge text
// capped at cfg.KnowledgeTextLimit runes. A nil cfg selects DefaultConfig().
func WriteModelfile(path string, records []core.KnowledgeRecord, cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	examples := trainingExamples(records, cfg.MaxSamples)
	if len(examples) > cfg.KnowledgeEntries {
		examples = examples[:cfg.KnowledgeEntries]
	}

	lines := make([]string, 0, 2*len(examples))
	for _, ex := range examples {
		lines = append(lines,
			"Q: "+extract.TruncateRunes(ex.Instruction, cfg.QuestionLimit),
			"A: "+extract.TruncateRunes(ex.Response, cfg.AnswerLimit))
	}
	knowledge := extract.TruncateRunes(strings.Join(lines, "\n"), cfg.KnowledgeTextLimit)

	modelfile := fmt.Sprintf(modelfileTemplate,
		time.Now().UTC().Format(time.RFC3339),
		cfg.Model,
		cfg.Temperature,
		cfg.TopP,
		cfg.NumCtx,
		knowledge)

	return os.WriteFile(path, []byte(modelfile), 0o644)
}
