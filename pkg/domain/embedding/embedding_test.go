package embedding

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	v := []float64{3, 4}
	Normalize(v)
	assert.InDelta(t, 0.6, v[0], 1e-9)
	assert.InDelta(t, 0.8, v[1], 1e-9)
}

func TestNormalize_ZeroVector(t *testing.T) {
	v := []float64{0, 0, 0}
	Normalize(v)
	assert.Equal(t, []float64{0, 0, 0}, v)
}

func TestFromFloat32(t *testing.T) {
	emb := FromFloat32("hello", []float32{1, 1, 1, 1})

	assert.Equal(t, "hello", emb.Text)
	assert.Len(t, emb.Value, 4)
	var sumSquares float64
	for _, val := range emb.Value {
		sumSquares += val * val
	}
	assert.InDelta(t, 1.0, math.Sqrt(sumSquares), 1e-6)
	assert.False(t, emb.CreatedAt.IsZero())
}

func TestValues(t *testing.T) {
	embs := []*Embedding{
		FromFloat64("a", []float64{1, 0}),
		FromFloat64("b", []float64{0, 2}),
	}
	assert.Equal(t, [][]float64{{1, 0}, {0, 1}}, Values(embs))
}

func TestConfig_DecodeOptions(t *testing.T) {
	type teiOptions struct {
		Normalize bool `mapstructure:"normalize"`
		BatchSize int  `mapstructure:"batch_size"`
	}
	cfg := &Config{Provider: "tei", Options: map[string]interface{}{"normalize": "true", "batch_size": 16}}

	var opts teiOptions
	assert.NoError(t, cfg.DecodeOptions(&opts))
	assert.True(t, opts.Normalize)
	assert.Equal(t, 16, opts.BatchSize)
}

func TestConfig_DecodeOptions_Invalid(t *testing.T) {
	cfg := &Config{Provider: "tei", Options: map[string]interface{}{"batch_size": "many"}}

	var opts struct {
		BatchSize int `mapstructure:"batch_size"`
	}
	err := cfg.DecodeOptions(&opts)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid tei options")
}

func TestProviderError(t *testing.T) {
	cause := errors.New("rate limited")
	err := NewProviderError("openai", 429, cause)

	assert.ErrorIs(t, err, ErrProviderNonOKResponse)
	assert.ErrorIs(t, err, cause)
	assert.True(t, err.Retryable())
	assert.False(t, NewProviderError("openai", 401, cause).Retryable())
}

func TestCheckCount(t *testing.T) {
	assert.NoError(t, CheckCount("tei", 2, 2))
	assert.ErrorIs(t, CheckCount("tei", 2, 0), ErrEmptyEmbeddings)
	assert.ErrorIs(t, CheckCount("tei", 2, 3), ErrEmbeddingCountMismatch)
}
