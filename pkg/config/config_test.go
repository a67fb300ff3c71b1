package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	require.NoError(t, Load(t.TempDir()))
	cfg := GetConfig()

	assert.Equal(t, "tei", cfg.Embedding.Provider)
	assert.Equal(t, "sentence-transformers/all-MiniLM-L6-v2", cfg.Embedding.Model)
	assert.Equal(t, 30*time.Second, cfg.Embedding.Timeout)
	assert.Equal(t, 0.4, cfg.Similarity.ChoiceThreshold)
	assert.Equal(t, "./model", cfg.Model.Dir)
	assert.Contains(t, cfg.Model.Files, "tokenizer.json")
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
embedding:
  provider: openai
  model: text-embedding-3-small
  options:
    dimensions: 256
storage:
  bucket: from-file
similarity:
  choice_threshold: 0.5
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0600))

	t.Setenv("EMBEDDING_MODEL", "text-embedding-3-large")
	t.Setenv("DestinationBucket", "grader-destination")

	require.NoError(t, Load(dir))
	cfg := GetConfig()

	assert.Equal(t, "openai", cfg.Embedding.Provider)
	assert.Equal(t, "text-embedding-3-large", cfg.Embedding.Model)
	assert.Equal(t, "grader-destination", cfg.Storage.Bucket)
	assert.Equal(t, 0.5, cfg.Similarity.ChoiceThreshold)
	assert.EqualValues(t, 256, cfg.Embedding.Options["dimensions"])
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("embedding: ["), 0600))

	err := Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml")
}

func TestLoad_ChoiceThreshold(t *testing.T) {
	t.Setenv("SIMILARITY_CHOICE_THRESHOLD", "0")
	require.NoError(t, Load(t.TempDir()))
	assert.Equal(t, 0.0, GetConfig().Similarity.ChoiceThreshold)

	t.Setenv("SIMILARITY_CHOICE_THRESHOLD", "-0.1")
	err := Load(t.TempDir())
	assert.ErrorContains(t, err, "similarity.choice_threshold")
}
