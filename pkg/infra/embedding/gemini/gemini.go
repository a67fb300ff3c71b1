package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/domain/embedding"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

const (
	ProviderName = "gemini"

	defaultModel    = "text-embedding-004"
	defaultTaskType = "SEMANTIC_SIMILARITY"
)

// ModelsAPI is the part of genai.Models the encoder calls.
type ModelsAPI interface {
	EmbedContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.EmbedContentConfig,
	) (*genai.EmbedContentResponse, error)
}

type options struct {
	TaskType   string `mapstructure:"task_type"`
	Dimensions int32  `mapstructure:"dimensions"`
}

type encoder struct {
	models ModelsAPI
	model  string
	opts   options
	logger *logrus.Logger
}

func NewEncoder(ctx context.Context, cfg *embedding.Config, logger *logrus.Logger) (embedding.Encoder, error) {
	if cfg.Credentials.ApiKey == "" {
		return nil, fmt.Errorf("%s: API key is required", ProviderName)
	}
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.Credentials.ApiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}
	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create client: %w", ProviderName, err)
	}
	return NewEncoderWithModels(client.Models, cfg, logger)
}

func NewEncoderWithModels(models ModelsAPI, cfg *embedding.Config, logger *logrus.Logger) (embedding.Encoder, error) {
	opts := options{TaskType: defaultTaskType}
	if err := cfg.DecodeOptions(&opts); err != nil {
		return nil, err
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &encoder{
		models: models,
		model:  model,
		opts:   opts,
		logger: logger,
	}, nil
}

func (e *encoder) Name() string {
	return ProviderName
}

func (e *encoder) Encode(ctx context.Context, sentences []string) ([]*embedding.Embedding, error) {
	contents := make([]*genai.Content, len(sentences))
	for i, s := range sentences {
		contents[i] = &genai.Content{Parts: []*genai.Part{{Text: s}}}
	}

	embedCfg := &genai.EmbedContentConfig{TaskType: e.opts.TaskType}
	if e.opts.Dimensions > 0 {
		dims := e.opts.Dimensions
		embedCfg.OutputDimensionality = &dims
	}

	resp, err := e.models.EmbedContent(ctx, e.model, contents, embedCfg)
	if err != nil {
		e.logger.WithError(err).WithField("model", e.model).Error("gemini embed content failed")
		if code, ok := apiErrorCode(err); ok {
			return nil, embedding.NewProviderError(ProviderName, code, err)
		}
		return nil, fmt.Errorf("%s: %w", ProviderName, err)
	}
	if resp == nil {
		return nil, fmt.Errorf("%s: %w", ProviderName, embedding.ErrEmptyEmbeddings)
	}
	if err := embedding.CheckCount(ProviderName, len(sentences), len(resp.Embeddings)); err != nil {
		return nil, err
	}

	out := make([]*embedding.Embedding, len(sentences))
	for i, emb := range resp.Embeddings {
		if emb == nil || len(emb.Values) == 0 {
			return nil, fmt.Errorf("%s: %w: index %d", ProviderName, embedding.ErrEmptyEmbeddings, i)
		}
		out[i] = embedding.FromFloat32(sentences[i], emb.Values)
	}
	return out, nil
}

func apiErrorCode(err error) (int, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code, true
	}
	return 0, false
}
