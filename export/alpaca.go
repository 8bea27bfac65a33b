package export

import (
	"bufio"
	"encoding/json"
	"os"

	"github.com/ENKI-420/dnalang-training-data/core"
)

// AlpacaExample is one instruction-tuning example in the Alpaca layout.
// Input is always empty: masterlog pairs are single-turn.
type AlpacaExample struct {
	Instruction string `json:"instruction"`
	Input       string `json:"input"`
	Output      string `json:"output"`
	System      string `json:"system"`
}

// WriteAlpaca writes records to path as an indented JSON array of Alpaca
// examples. Records missing an instruction or response are skipped, and at
// most cfg.MaxSamples records are considered. A nil cfg selects
// DefaultConfig().
func WriteAlpaca(path string, records []core.KnowledgeRecord, cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	examples := trainingExamples(records, cfg.MaxSamples)

	out := make([]AlpacaExample, len(examples))
	for i, ex := range examples {
		out[i] = AlpacaExample{
			Instruction: ex.Instruction,
			Input:       "",
			Output:      ex.Response,
			System:      ex.System,
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(out); err != nil {
		f.Close()
		return err
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
