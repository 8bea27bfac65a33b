package extract

import (
	"testing"

	"github.com/ENKI-420/dnalang-training-data/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_GreekSymbol(t *testing.T) {
	e, err := New(nil)
	require.NoError(t, err)

	metrics := e.Metrics("steady state reached with Φ=0.85 at lock")
	require.Len(t, metrics, 1)

	assert.Equal(t, "Φ", metrics[0].Symbol)
	assert.Equal(t, core.MetricConsciousness, metrics[0].Name)
	assert.Equal(t, 0.85, metrics[0].Value)
	assert.Equal(t, core.MetricDomainCCCE, metrics[0].Domain)
}

func TestMetrics_SpelledNamesAndSeparators(t *testing.T) {
	e, err := New(nil)
	require.NoError(t, err)

	content := "phi: 0.9\nLAMBDA=0.95\nGamma_= 0.12\nxi = 8.1\n"
	metrics := e.Metrics(content)
	require.Len(t, metrics, 4)

	assert.Equal(t, "PHI", metrics[0].Symbol)
	assert.Equal(t, core.MetricConsciousness, metrics[0].Name)
	assert.Equal(t, 0.9, metrics[0].Value)

	assert.Equal(t, "LAMBDA", metrics[1].Symbol)
	assert.Equal(t, core.MetricCoherence, metrics[1].Name)

	assert.Equal(t, "GAMMA", metrics[2].Symbol)
	assert.Equal(t, core.MetricDecoherence, metrics[2].Name)
	assert.Equal(t, 0.12, metrics[2].Value)

	assert.Equal(t, "XI", metrics[3].Symbol)
	assert.Equal(t, core.MetricEfficiency, metrics[3].Name)
	assert.Equal(t, 8.1, metrics[3].Value)
}

func TestMetrics_LowercaseGreekFoldsUp(t *testing.T) {
	e, err := New(nil)
	require.NoError(t, err)

	metrics := e.Metrics("φ = 0.5")
	require.Len(t, metrics, 1)
	assert.Equal(t, "Φ", metrics[0].Symbol)
	assert.Equal(t, core.MetricConsciousness, metrics[0].Name)
}

func TestMetrics_MalformedValueDropped(t *testing.T) {
	e, err := New(nil)
	require.NoError(t, err)

	t.Run("double dot", func(t *testing.T) {
		metrics := e.Metrics("Φ = 0.7.3 and then Λ=0.9")
		require.Len(t, metrics, 1)
		assert.Equal(t, "Λ", metrics[0].Symbol)
	})

	t.Run("trailing period swallows the value", func(t *testing.T) {
		metrics := e.Metrics("the run ended at Φ=0.85.")
		assert.Empty(t, metrics)
	})

	t.Run("bare dots", func(t *testing.T) {
		metrics := e.Metrics("Ξ = ...")
		assert.Empty(t, metrics)
	})
}

func TestMetrics_DuplicatesKeptRaw(t *testing.T) {
	e, err := New(nil)
	require.NoError(t, err)

	metrics := e.Metrics("Φ=0.70 then later Φ=0.80")
	require.Len(t, metrics, 2)
	assert.Equal(t, 0.70, metrics[0].Value)
	assert.Equal(t, 0.80, metrics[1].Value)
}

func TestMetrics_NoSeparatorNoMatch(t *testing.T) {
	e, err := New(nil)
	require.NoError(t, err)

	assert.Empty(t, e.Metrics("Φ 0.85 without a separator"))
}
