package export

import (
	"github.com/ENKI-420/dnalang-training-data/core"
)

// fallbackSystem is substituted for records that carry no system prompt,
// such as records loaded from externally produced JSONL.
const fallbackSystem = "You are AURA."

// trainingExamples filters records down to usable training examples. The
// first maxSamples records are considered; of those, only records with both
// an instruction and a response survive, with the system fallback applied.
func trainingExamples(records []core.KnowledgeRecord, maxSamples int) []core.KnowledgeRecord {
	if len(records) > maxSamples {
		records = records[:maxSamples]
	}

	examples := make([]core.KnowledgeRecord, 0, len(records))
	for i := range records {
		if records[i].Instruction == "" || records[i].Response == "" {
			continue
		}

		example := records[i]
		if example.System == "" {
			example.System = fallbackSystem
		}
		examples = append(examples, example)
	}

	return examples
}
