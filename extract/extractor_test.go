package extract

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mixedSample = "═══════════\nQUANTUM CORE REPORT\n═══════════\n" +
	"Session opened with Φ = 0.85 and Λ: 0.91 holding steady across the sweep.\n" +
	"(12) E = mc^2\n" +
	"Ω[S] = ∫ dΦ/dt\n" +
	"ORGANISM aura_guard {\n" +
	"  META { version: \"2.1\" }\n" +
	"  GENE repair { heal fast }\n" +
	"}\n"

func TestNew_Defaults(t *testing.T) {
	e, err := New(nil)
	require.NoError(t, err)
	require.NotNil(t, e)

	assert.Equal(t, 2000, e.cfg.SectionContentLimit)
	assert.Equal(t, 50, e.cfg.SectionMinContent)
	assert.Equal(t, 500, e.cfg.OrganismExcerptLimit)
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{
			name: "zero section content limit",
			cfg:  NewConfig(WithSectionContentLimit(0)),
		},
		{
			name: "negative section minimum",
			cfg:  NewConfig(WithSectionMinContent(-1)),
		},
		{
			name: "zero organism excerpt limit",
			cfg:  NewConfig(WithOrganismExcerptLimit(0)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.cfg)
			require.Error(t, err)
			assert.Nil(t, e)
			assert.Contains(t, err.Error(), "extract config")
		})
	}
}

func TestWithLogger(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(io.Discard, nil))

	e, err := New(nil, WithLogger(custom))
	require.NoError(t, err)
	assert.Equal(t, custom, e.logger)

	// nil falls back to the default logger
	e, err = New(nil, WithLogger(nil))
	require.NoError(t, err)
	assert.NotNil(t, e.logger)
}

func TestExtractor_Deterministic(t *testing.T) {
	e, err := New(nil)
	require.NoError(t, err)

	equations := e.Equations(mixedSample)
	metrics := e.Metrics(mixedSample)
	organisms := e.Organisms(mixedSample)
	sections := e.Sections(mixedSample)

	require.Len(t, equations, 2)
	require.Len(t, metrics, 2)
	require.Len(t, organisms, 1)
	require.Len(t, sections, 1)

	assert.Equal(t, equations, e.Equations(mixedSample))
	assert.Equal(t, metrics, e.Metrics(mixedSample))
	assert.Equal(t, organisms, e.Organisms(mixedSample))
	assert.Equal(t, sections, e.Sections(mixedSample))
}
