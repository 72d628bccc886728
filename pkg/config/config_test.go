package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Validation.ManifestDir)
	assert.False(t, cfg.Validation.StrictEmbeddings)
	assert.Equal(t, ".wav", cfg.Validation.AudioExtension)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".zrc2020.yaml"), []byte(`
validation:
  manifest_dir: /opt/manifests
  strict_embeddings: true
`), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/opt/manifests", cfg.Validation.ManifestDir)
	assert.True(t, cfg.Validation.StrictEmbeddings)
	assert.Equal(t, ".wav", cfg.Validation.AudioExtension, "unset keys keep defaults")
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ZRC2020_VALIDATION_MANIFEST_DIR", "/data/filelists")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/data/filelists", cfg.Validation.ManifestDir)
}
