package trainingdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ENKI-420/dnalang-training-data/core"
	"github.com/ENKI-420/dnalang-training-data/extract"
	"github.com/ENKI-420/dnalang-training-data/search"
	"github.com/ENKI-420/dnalang-training-data/storage"
	"github.com/ENKI-420/dnalang-training-data/synth"
)

const sampleMasterlog = "═══════════\nQUANTUM CORE REPORT\n═══════════\n" +
	"The lattice held coherence through the entire sweep while the phase\n" +
	"conjugate mirrors stayed locked at the torsion angle, and every probe\n" +
	"returned clean readings on both channels.\n" +
	"(12) E = mc^2\n" +
	"Φ = 0.85\n" +
	"Λ = 0.91\n" +
	"ORGANISM aura_guard {\n" +
	"  META { version: \"2.1\" }\n" +
	"  GENE repair { heal fast }\n" +
	"}\n"

func TestNewPipeline(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p, err := NewPipeline()
		require.NoError(t, err)
		require.NotNil(t, p)
	})

	t.Run("invalid extract config", func(t *testing.T) {
		p, err := NewPipeline(WithExtractConfig(extract.NewConfig(extract.WithSectionContentLimit(0))))
		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "extract config")
	})

	t.Run("invalid synth config", func(t *testing.T) {
		p, err := NewPipeline(WithSynthConfig(synth.NewConfig(synth.WithSystemPrompt(""))))
		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "synth config")
	})
}

func TestPipeline_Convert(t *testing.T) {
	p, err := NewPipeline()
	require.NoError(t, err)

	conversion := p.Convert("masterlog.txt", sampleMasterlog)
	require.NotNil(t, conversion)

	c := conversion.Corpus
	assert.Equal(t, "masterlog.txt", c.Source)
	assert.Equal(t, 1, c.Stats.EquationCount)
	assert.Equal(t, 2, c.Stats.MetricCount)
	assert.Equal(t, 1, c.Stats.OrganismCount)
	assert.Equal(t, 1, c.Stats.SectionCount)

	kinds := make(map[string]int)
	instructions := make(map[string]bool)
	for _, r := range conversion.Records {
		kinds[r.Kind]++
		instructions[r.Instruction] = true
		assert.Equal(t, core.DefaultSystemPrompt, r.System)
		assert.NotZero(t, r.Id)
	}

	assert.Equal(t, 1, kinds[core.KindInstruction])
	assert.Equal(t, 1, kinds[core.KindEquation])
	assert.Equal(t, 1, kinds[core.KindOrganism])
	assert.Equal(t, 5, kinds[core.KindKnowledge])
	assert.True(t, instructions["Explain QUANTUM CORE REPORT in the Ω-Recursive framework"])
	assert.True(t, instructions["Describe the aura_guard organism"])
	assert.True(t, instructions["What is CCCE?"])
}

func TestPipeline_ConvertDeterministic(t *testing.T) {
	p, err := NewPipeline()
	require.NoError(t, err)

	first := p.Convert("masterlog.txt", sampleMasterlog)
	second := p.Convert("masterlog.txt", sampleMasterlog)

	assert.Equal(t, first.Corpus, second.Corpus)
	assert.Equal(t, first.Records, second.Records)
}

func TestPipeline_ConvertFile(t *testing.T) {
	p, err := NewPipeline()
	require.NoError(t, err)

	t.Run("decodes permissively", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "quantum_masterlog.txt")
		raw := append([]byte("\x1B[32m"+sampleMasterlog+"\x1B[0m"), 0xFF, '\n')
		require.NoError(t, os.WriteFile(path, raw, 0o644))

		conversion, err := p.ConvertFile(path)
		require.NoError(t, err)

		assert.Equal(t, "quantum_masterlog.txt", conversion.Corpus.Source)
		assert.Equal(t, 2, conversion.Corpus.Stats.MetricCount)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		conversion, err := p.ConvertFile(filepath.Join(t.TempDir(), "missing.txt"))
		require.Error(t, err)
		assert.Nil(t, conversion)
	})
}

func openRecords() []core.KnowledgeRecord {
	return []core.KnowledgeRecord{
		{
			Id:          core.IDFromContent("quantum lattice"),
			Kind:        core.KindKnowledge,
			Instruction: "quantum lattice report",
			Response:    "the lattice holds steady",
		},
		{
			Id:          core.IDFromContent("phase conjugate"),
			Kind:        core.KindKnowledge,
			Instruction: "phase conjugate healing",
			Response:    "restores coherence",
		},
	}
}

func TestOpen(t *testing.T) {
	t.Run("jsonl knowledge base", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "kb.jsonl")
		require.NoError(t, storage.WriteRecords(path, openRecords()))

		searcher, err := Open(path)
		require.NoError(t, err)
		require.Equal(t, 2, searcher.Len())

		results, err := searcher.Search("quantum", searcher.DefaultLimit())
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "quantum lattice report", results[0].Record.Instruction)
	})

	t.Run("snapshot knowledge base", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "kb.snap")
		require.NoError(t, storage.WriteSnapshot(path, openRecords()))

		searcher, err := Open(path)
		require.NoError(t, err)
		assert.Equal(t, 2, searcher.Len())
	})

	t.Run("missing jsonl starts empty", func(t *testing.T) {
		searcher, err := Open(filepath.Join(t.TempDir(), "missing.jsonl"))
		require.NoError(t, err)
		assert.Equal(t, 0, searcher.Len())
	})

	t.Run("missing snapshot is an error", func(t *testing.T) {
		searcher, err := Open(filepath.Join(t.TempDir(), "missing.snap"))
		require.Error(t, err)
		assert.Nil(t, searcher)
	})

	t.Run("invalid search config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "kb.jsonl")
		require.NoError(t, storage.WriteRecords(path, openRecords()))

		searcher, err := Open(path, search.WithContextTopK(0))
		require.Error(t, err)
		assert.Nil(t, searcher)
	})
}
