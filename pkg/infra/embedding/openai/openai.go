package openai

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/domain/embedding"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/sirupsen/logrus"
)

const (
	ProviderName = "openai"

	defaultModel = "text-embedding-3-small"
)

type options struct {
	Dimensions   int64  `mapstructure:"dimensions"`
	Organization string `mapstructure:"organization"`
}

type encoder struct {
	client openai.Client
	name   string
	model  string
	opts   options
	logger *logrus.Logger
}

// NewEncoder builds an encoder against the OpenAI API, or any server speaking
// its embeddings protocol when BaseURL is set.
func NewEncoder(cfg *embedding.Config, logger *logrus.Logger, extra ...option.RequestOption) (embedding.Encoder, error) {
	if cfg.Credentials.ApiKey == "" {
		return nil, fmt.Errorf("%s: API key is required", ProviderName)
	}
	var opts options
	if err := cfg.DecodeOptions(&opts); err != nil {
		return nil, err
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(cfg.Credentials.ApiKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		reqOpts = append(reqOpts, option.WithRequestTimeout(cfg.Timeout))
	}
	if opts.Organization != "" {
		reqOpts = append(reqOpts, option.WithOrganization(opts.Organization))
	}
	reqOpts = append(reqOpts, extra...)

	return NewEncoderWithClient(ProviderName, openai.NewClient(reqOpts...), cfg, logger)
}

// NewEncoderWithClient wraps an already configured SDK client. The azure
// provider uses it with its own endpoint and credential options.
func NewEncoderWithClient(
	name string,
	client openai.Client,
	cfg *embedding.Config,
	logger *logrus.Logger,
) (embedding.Encoder, error) {
	var opts options
	if err := cfg.DecodeOptions(&opts); err != nil {
		return nil, err
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &encoder{
		client: client,
		name:   name,
		model:  model,
		opts:   opts,
		logger: logger,
	}, nil
}

func (e *encoder) Name() string {
	return e.name
}

func (e *encoder) Encode(ctx context.Context, sentences []string) ([]*embedding.Embedding, error) {
	params := openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(e.model),
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: sentences,
		},
	}
	if e.opts.Dimensions > 0 {
		params.Dimensions = openai.Int(e.opts.Dimensions)
	}

	resp, err := e.client.Embeddings.New(ctx, params)
	if err != nil {
		e.logger.WithError(err).WithField("model", e.model).Errorf("%s embeddings request failed", e.name)
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return nil, embedding.NewProviderError(e.name, apiErr.StatusCode, err)
		}
		return nil, fmt.Errorf("%s: %w", e.name, err)
	}

	if err := embedding.CheckCount(e.name, len(sentences), len(resp.Data)); err != nil {
		return nil, err
	}

	data := resp.Data
	sort.SliceStable(data, func(i, j int) bool {
		return data[i].Index < data[j].Index
	})

	out := make([]*embedding.Embedding, len(data))
	for i, d := range data {
		if int(d.Index) != i {
			return nil, fmt.Errorf("%s: %w: missing index %d", e.name, embedding.ErrEmbeddingCountMismatch, i)
		}
		out[i] = embedding.FromFloat64(sentences[i], d.Embedding)
	}
	return out, nil
}
