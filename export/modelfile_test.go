package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ENKI-420/dnalang-training-data/core"
)

func writeModelfile(t *testing.T, records []core.KnowledgeRecord, cfg *Config) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "Modelfile")
	require.NoError(t, WriteModelfile(path, records, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func TestWriteModelfile_Layout(t *testing.T) {
	records := []core.KnowledgeRecord{
		{Instruction: "What is CCCE?", Response: "Tracked metrics."},
		{Instruction: "What is Ξ?", Response: "Negentropic efficiency."},
	}

	content := writeModelfile(t, records, nil)

	assert.Contains(t, content, "FROM phi3:mini\n")
	assert.Contains(t, content, "PARAMETER temperature 0.7\n")
	assert.Contains(t, content, "PARAMETER top_p 0.9\n")
	assert.Contains(t, content, "PARAMETER num_ctx 4096\n")
	assert.Contains(t, content, `SYSTEM """You are AURA`)
	assert.Contains(t, content, "Q: What is CCCE?\nA: Tracked metrics.\nQ: What is Ξ?\nA: Negentropic efficiency.")
	assert.Contains(t, content, "- ΛΦ = 2.176435e-8 (Universal Memory Constant)")
	assert.True(t, strings.HasSuffix(content, "Always respond concisely with relevant CCCE metrics when applicable.\"\"\"\n"))
}

func TestWriteModelfile_CustomModel(t *testing.T) {
	content := writeModelfile(t, nil, NewConfig(WithModel("llama3:8b")))

	assert.Contains(t, content, "FROM llama3:8b\n")
}

func TestWriteModelfile_TruncatesQuestionsAndAnswers(t *testing.T) {
	records := []core.KnowledgeRecord{
		{Instruction: strings.Repeat("q", 250), Response: strings.Repeat("a", 350)},
	}

	content := writeModelfile(t, records, nil)

	assert.Contains(t, content, "Q: "+strings.Repeat("q", 200)+"\nA: ")
	assert.NotContains(t, content, strings.Repeat("q", 201))
	assert.NotContains(t, content, strings.Repeat("a", 301))
}

func TestWriteModelfile_KnowledgeEntryCap(t *testing.T) {
	records := []core.KnowledgeRecord{
		{Instruction: "first question", Response: "first answer"},
		{Instruction: "second question", Response: "second answer"},
	}

	content := writeModelfile(t, records, NewConfig(WithKnowledgeEntries(1)))

	assert.Contains(t, content, "Q: first question")
	assert.NotContains(t, content, "second question")
}

func TestWriteModelfile_KnowledgeTextCap(t *testing.T) {
	records := []core.KnowledgeRecord{
		{Instruction: "hello", Response: "world"},
	}

	content := writeModelfile(t, records, NewConfig(WithKnowledgeTextLimit(10)))

	// "Q: hello\nA: world" truncates to ten runes.
	assert.Contains(t, content, "Core knowledge:\nQ: hello\nA\n\nAlways respond")
}

func TestWriteModelfile_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Modelfile")

	err := WriteModelfile(path, nil, NewConfig(WithModel("")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export config")
}
