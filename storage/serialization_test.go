package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ENKI-420/dnalang-training-data/core"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("test content")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Marshal
			data := MarshalID(tt.id)
			require.NotNil(t, data)
			require.NotEmpty(t, data)

			// Unmarshal
			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty data", []byte{}},
		{"unterminated varint", []byte{0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalID(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestMarshalUnmarshalKnowledgeRecord(t *testing.T) {
	tests := []struct {
		name   string
		record *core.KnowledgeRecord
	}{
		{
			name: "full record",
			record: &core.KnowledgeRecord{
				Id:          core.IDFromContent("what is ccce"),
				Kind:        core.KindKnowledge,
				System:      "You are AURA.",
				Instruction: "What is CCCE?",
				Response:    "CCCE tracks four key metrics.",
				Metadata:    map[string]string{"category": "ccce_fundamentals"},
			},
		},
		{
			name: "unicode content",
			record: &core.KnowledgeRecord{
				Id:          core.ID(7),
				Kind:        core.KindEquation,
				System:      "You are AURA.",
				Instruction: "What is the formula for session functional?",
				Response:    "Ω[S] = ∫(L·U·η)dτ / ∫‖R‖dτ",
				Metadata:    map[string]string{"equation_id": "session_functional_0"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalKnowledgeRecord(tt.record)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalKnowledgeRecord(data)
			require.NoError(t, err)
			assert.Equal(t, tt.record, decoded)
		})
	}
}

func TestMarshalUnmarshalKnowledgeRecord_NoMetadata(t *testing.T) {
	record := &core.KnowledgeRecord{
		Id:          core.ID(1),
		Kind:        core.KindInstruction,
		Instruction: "Explain the report",
		Response:    "The report covers lattice state.",
	}

	decoded, err := UnmarshalKnowledgeRecord(MarshalKnowledgeRecord(record))
	require.NoError(t, err)

	assert.Equal(t, record.Id, decoded.Id)
	assert.Equal(t, record.Kind, decoded.Kind)
	assert.Equal(t, record.Instruction, decoded.Instruction)
	assert.Equal(t, record.Response, decoded.Response)
	assert.Empty(t, decoded.Metadata)
}

func TestUnmarshalKnowledgeRecord_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty data", []byte{}},
		{"truncated record", MarshalKnowledgeRecord(&core.KnowledgeRecord{
			Instruction: "long enough instruction to truncate",
			Response:    "response",
		})[:4]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := UnmarshalKnowledgeRecord(tt.data)
			assert.Error(t, err)
			assert.Nil(t, record)
		})
	}
}
