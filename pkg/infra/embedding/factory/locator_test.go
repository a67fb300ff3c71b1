package factory

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/domain/embedding"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func newLocator(awsConfig AWSConfigFunc) *EncoderLocator {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewEncoderLocator(logger, &fasthttp.Client{}, awsConfig)
}

func TestEncoderLocator_GetEncoder(t *testing.T) {
	staticAWS := func(context.Context) (aws.Config, error) {
		return aws.Config{Region: "us-east-1"}, nil
	}

	tests := []struct {
		name string
		cfg  *embedding.Config
		want string
	}{
		{"default is tei", &embedding.Config{}, TEIProvider},
		{"tei", &embedding.Config{Provider: "TEI"}, TEIProvider},
		{"ollama", &embedding.Config{Provider: OllamaProvider}, OllamaProvider},
		{"openai", &embedding.Config{Provider: OpenAIProvider, Credentials: embedding.Credentials{ApiKey: "sk"}}, OpenAIProvider},
		{"azure", &embedding.Config{
			Provider:    AzureProvider,
			Model:       "minilm",
			BaseURL:     "https://x.openai.azure.com",
			Credentials: embedding.Credentials{ApiKey: "k"},
		}, AzureProvider},
		{"bedrock", &embedding.Config{Provider: BedrockProvider}, BedrockProvider},
	}

	locator := newLocator(staticAWS)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := locator.GetEncoder(context.Background(), tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, enc.Name())
		})
	}
}

func TestEncoderLocator_Unsupported(t *testing.T) {
	_, err := newLocator(nil).GetEncoder(context.Background(), &embedding.Config{Provider: "word2vec"})
	assert.ErrorIs(t, err, embedding.ErrUnsupportedProvider)
	assert.ErrorContains(t, err, "word2vec")
}

func TestEncoderLocator_BedrockAWSFailure(t *testing.T) {
	locator := newLocator(func(context.Context) (aws.Config, error) {
		return aws.Config{}, errors.New("no credentials")
	})
	_, err := locator.GetEncoder(context.Background(), &embedding.Config{Provider: BedrockProvider})
	assert.ErrorContains(t, err, "no credentials")

	_, err = newLocator(nil).GetEncoder(context.Background(), &embedding.Config{Provider: BedrockProvider})
	assert.Error(t, err)
}
