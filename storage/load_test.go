package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadKnowledgeBase_DispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()
	records := sampleRecords()

	jsonlPath := filepath.Join(dir, "kb.jsonl")
	require.NoError(t, WriteRecords(jsonlPath, records))

	snapPath := filepath.Join(dir, "kb.snap")
	require.NoError(t, WriteSnapshot(snapPath, records))

	fromJSONL, err := ReadKnowledgeBase(jsonlPath)
	require.NoError(t, err)
	assert.Equal(t, records, fromJSONL)

	fromSnapshot, err := ReadKnowledgeBase(snapPath)
	require.NoError(t, err)
	assert.Equal(t, records, fromSnapshot)
}

func TestReadKnowledgeBase_MissingSnapshotFails(t *testing.T) {
	records, err := ReadKnowledgeBase(filepath.Join(t.TempDir(), "missing.snap"))
	require.Error(t, err)
	assert.Nil(t, records)
}
