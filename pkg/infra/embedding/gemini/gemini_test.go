package gemini

import (
	"context"
	"io"
	"testing"

	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/domain/embedding"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeModels struct {
	gotModel    string
	gotContents []*genai.Content
	gotConfig   *genai.EmbedContentConfig
	resp        *genai.EmbedContentResponse
	err         error
}

func (f *fakeModels) EmbedContent(
	_ context.Context,
	model string,
	contents []*genai.Content,
	config *genai.EmbedContentConfig,
) (*genai.EmbedContentResponse, error) {
	f.gotModel = model
	f.gotContents = contents
	f.gotConfig = config
	return f.resp, f.err
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestEncoder_Encode(t *testing.T) {
	models := &fakeModels{resp: &genai.EmbedContentResponse{
		Embeddings: []*genai.ContentEmbedding{
			{Values: []float32{0, 4}},
			{Values: []float32{3, 0}},
		},
	}}

	enc, err := NewEncoderWithModels(models, &embedding.Config{
		Provider: ProviderName,
		Options:  map[string]interface{}{"dimensions": 256},
	}, newTestLogger())
	require.NoError(t, err)

	out, err := enc.Encode(context.Background(), []string{"osmosis", "diffusion"})
	require.NoError(t, err)

	assert.Equal(t, defaultModel, models.gotModel)
	require.Len(t, models.gotContents, 2)
	assert.Equal(t, "diffusion", models.gotContents[1].Parts[0].Text)
	assert.Equal(t, defaultTaskType, models.gotConfig.TaskType)
	require.NotNil(t, models.gotConfig.OutputDimensionality)
	assert.Equal(t, int32(256), *models.gotConfig.OutputDimensionality)

	assert.Equal(t, []float64{0, 1}, out[0].Value)
	assert.Equal(t, []float64{1, 0}, out[1].Value)
}

func TestEncoder_Encode_APIError(t *testing.T) {
	models := &fakeModels{err: genai.APIError{Code: 503, Message: "overloaded"}}

	enc, err := NewEncoderWithModels(models, &embedding.Config{Provider: ProviderName}, newTestLogger())
	require.NoError(t, err)

	_, err = enc.Encode(context.Background(), []string{"a"})
	var providerErr *embedding.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.True(t, providerErr.Retryable())
}

func TestEncoder_Encode_MissingValues(t *testing.T) {
	models := &fakeModels{resp: &genai.EmbedContentResponse{
		Embeddings: []*genai.ContentEmbedding{{}},
	}}

	enc, err := NewEncoderWithModels(models, &embedding.Config{Provider: ProviderName}, newTestLogger())
	require.NoError(t, err)

	_, err = enc.Encode(context.Background(), []string{"a"})
	assert.ErrorIs(t, err, embedding.ErrEmptyEmbeddings)
}

func TestNewEncoder_RequiresAPIKey(t *testing.T) {
	_, err := NewEncoder(context.Background(), &embedding.Config{Provider: ProviderName}, newTestLogger())
	assert.Error(t, err)
}
