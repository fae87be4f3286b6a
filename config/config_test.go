package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, GetDefaultConfig(), cfg)
	assert.Equal(t, 5, cfg.Iterations)
	assert.Equal(t, 0.01, cfg.Epsilon)
	assert.Equal(t, "corpus.sv", cfg.Corpus.Source)
}

func TestLoadFileEnvAndOverrides(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "ibm1.yaml")
	require.NoError(t, os.WriteFile(fn, []byte(`
iterations: 20
top_k: 3
convergence:
  kind: likelihood
  threshold: 0.5
corpus:
  source: europarl.sv
  encoding: iso-8859-1
`), 0o644))
	t.Setenv("IBM1_CORPUS_TARGET", "europarl.en")

	cfg, err := Load(fn, map[string]any{"iterations": 7})
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Iterations)
	assert.Equal(t, 3, cfg.TopK)
	assert.Equal(t, "likelihood", cfg.Convergence.Kind)
	assert.Equal(t, 0.5, cfg.Convergence.Threshold)
	assert.Equal(t, "europarl.sv", cfg.Corpus.Source)
	assert.Equal(t, "europarl.en", cfg.Corpus.Target)
	assert.Equal(t, "iso-8859-1", cfg.Corpus.Encoding)
	assert.Equal(t, 0.01, cfg.Epsilon)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	_, err := Load("", map[string]any{"iterations": 0, "epsilon": -1.0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "iterations must be positive")
	assert.Contains(t, err.Error(), "epsilon must not be negative")

	cfg := GetDefaultConfig()
	cfg.TopK = 0
	assert.Error(t, cfg.Validate())
}
