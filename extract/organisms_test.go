package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const organismSample = `ORGANISM QuantumHealer {
  META {
    version: "2.1"
    author: 'aria'
    purpose: phase conjugate repair
  }
  GENE repair {
    trigger: on_decoherence
  }
  GENE observe {
    watch { scope: all }
  }
}`

func TestOrganisms_FullBlock(t *testing.T) {
	e, err := New(nil)
	require.NoError(t, err)

	organisms := e.Organisms(organismSample)
	require.Len(t, organisms, 1)

	org := organisms[0]
	assert.Equal(t, "QuantumHealer", org.Name)

	assert.Equal(t, "2.1", org.Meta["version"])
	assert.Equal(t, "aria", org.Meta["author"])
	assert.Equal(t, "phase conjugate repair", org.Meta["purpose"])

	require.Len(t, org.Genes, 2)
	assert.Equal(t, "repair", org.Genes[0].Name)
	assert.Equal(t, "trigger: on_decoherence", org.Genes[0].Definition)
	assert.Equal(t, "observe", org.Genes[1].Name)
}

func TestOrganisms_NestedBracesBoundCorrectly(t *testing.T) {
	e, err := New(nil)
	require.NoError(t, err)

	organisms := e.Organisms(organismSample)
	require.Len(t, organisms, 1)

	// The {} pair inside GENE observe must not end the outer block early:
	// the raw body still contains text past the nested closing brace.
	assert.Contains(t, organisms[0].Raw, "GENE observe")
	assert.Contains(t, organisms[0].Raw, "scope: all")
}

func TestOrganisms_MissingMetaAndGenes(t *testing.T) {
	e, err := New(nil)
	require.NoError(t, err)

	organisms := e.Organisms("ORGANISM Bare { comment only }")
	require.Len(t, organisms, 1)

	assert.Equal(t, "Bare", organisms[0].Name)
	assert.Empty(t, organisms[0].Meta)
	assert.Empty(t, organisms[0].Genes)
	assert.NotNil(t, organisms[0].Meta)
	assert.NotNil(t, organisms[0].Genes)
}

func TestOrganisms_UnterminatedSkipped(t *testing.T) {
	e, err := New(nil)
	require.NoError(t, err)

	organisms := e.Organisms("ORGANISM Broken { GENE x { y }")
	assert.Empty(t, organisms)
}

func TestOrganisms_ExcerptCapped(t *testing.T) {
	cfg := NewConfig(WithOrganismExcerptLimit(16))
	e, err := New(cfg)
	require.NoError(t, err)

	body := strings.Repeat("pulse ", 20)
	organisms := e.Organisms("ORGANISM Long {" + body + "}")
	require.Len(t, organisms, 1)

	assert.Equal(t, body[:16], organisms[0].Raw)
}

func TestOrganisms_Multiple(t *testing.T) {
	e, err := New(nil)
	require.NoError(t, err)

	content := "ORGANISM Alpha { GENE a { x } }\nnoise\nORGANISM Beta { GENE b { y } }"
	organisms := e.Organisms(content)
	require.Len(t, organisms, 2)
	assert.Equal(t, "Alpha", organisms[0].Name)
	assert.Equal(t, "Beta", organisms[1].Name)
}
