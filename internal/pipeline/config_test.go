package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	assert.InDelta(t, 0.90, cfg.AutoApplyThreshold, 1e-9)
	assert.Equal(t, 2, cfg.MaxEditDistance)
	assert.Equal(t, 10, cfg.MinVocabFrequency)
	assert.Equal(t, 50000, cfg.MaxVocabSize)
	assert.True(t, cfg.UseNgramContext)
	assert.Contains(t, cfg.DomainTerms, "PARLIAMENT")
	assert.Contains(t, cfg.PreservedSpellings, "shew")
	assert.Greater(t, cfg.workers(), 0, "zero workers resolves to NumCPU")
}

func TestLoadConfigOverlay(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"auto_apply_threshold: 0.8\nworkers: 4\ndomain_terms: [SENATE]\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, cfg.AutoApplyThreshold, 1e-9)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, []string{"SENATE"}, cfg.DomainTerms)
	// untouched fields keep their defaults
	assert.Equal(t, 2, cfg.MaxEditDistance)
	assert.Equal(t, 10, cfg.MinVocabFrequency)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigBadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
