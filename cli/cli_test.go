package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]string{"-o", "out", "-e", "cpp,.hpp", "work/src", "main.cpp"})
	require.NoError(t, err)

	assert.Equal(t, []string{"work/src", "main.cpp"}, cfg.Inputs)
	assert.Equal(t, "out", cfg.Output)
	assert.Equal(t, []string{".cpp", ".hpp"}, cfg.Extensions)
	assert.Equal(t, "CGRA_", cfg.Prefix)
	assert.False(t, cfg.Interactive)
	assert.False(t, cfg.Filter)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]string{"src"})
	require.NoError(t, err)
	assert.Empty(t, cfg.Output)
	assert.Empty(t, cfg.Extensions)
}

func TestParseFilterNeedsNoInputs(t *testing.T) {
	cfg, err := Parse([]string{"--filter", "--prefix", "LAB_"})
	require.NoError(t, err)
	assert.True(t, cfg.Filter)
	assert.Equal(t, "LAB_", cfg.Prefix)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no inputs", []string{"-o", "out"}, "at least one input"},
		{"empty prefix", []string{"--prefix", "", "src"}, "--prefix"},
		{"ambiguous prefix", []string{"--prefix", "_", "src"}, "invalid tag prefix"},
		{"prefix ending in tag tail", []string{"-p", "N_", "src"}, "N_REMOVE"},
		{"filter and interactive", []string{"-f", "-i"}, "mutually exclusive"},
		{"unknown flag", []string{"--bogus", "src"}, "bogus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
