package ollama

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/domain/embedding"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/infra/httpx"
	"github.com/sirupsen/logrus"
)

const (
	ProviderName = "ollama"

	defaultBaseURL = "http://127.0.0.1:11434"
	defaultModel   = "all-minilm"
)

type options struct {
	KeepAlive string `mapstructure:"keep_alive"`
	Truncate  *bool  `mapstructure:"truncate"`
}

type embedRequest struct {
	Model     string   `json:"model"`
	Input     []string `json:"input"`
	KeepAlive string   `json:"keep_alive,omitempty"`
	Truncate  *bool    `json:"truncate,omitempty"`
}

type embedResponse struct {
	Model      string      `json:"model"`
	Embeddings [][]float32 `json:"embeddings"`
}

type encoder struct {
	client *httpx.Client
	model  string
	url    string
	opts   options
	logger *logrus.Logger
}

func NewEncoder(client *httpx.Client, cfg *embedding.Config, logger *logrus.Logger) (embedding.Encoder, error) {
	var opts options
	if err := cfg.DecodeOptions(&opts); err != nil {
		return nil, err
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &encoder{
		client: client,
		model:  model,
		url:    strings.TrimRight(baseURL, "/") + "/api/embed",
		opts:   opts,
		logger: logger,
	}, nil
}

func (e *encoder) Name() string {
	return ProviderName
}

func (e *encoder) Encode(ctx context.Context, sentences []string) ([]*embedding.Embedding, error) {
	var resp embedResponse
	err := e.client.PostJSON(ctx, e.url, nil, embedRequest{
		Model:     e.model,
		Input:     sentences,
		KeepAlive: e.opts.KeepAlive,
		Truncate:  e.opts.Truncate,
	}, &resp)
	if err != nil {
		e.logger.WithError(err).WithField("model", e.model).Error("ollama embed request failed")
		var statusErr *httpx.StatusError
		if errors.As(err, &statusErr) {
			return nil, embedding.NewProviderError(ProviderName, statusErr.Code, err)
		}
		return nil, fmt.Errorf("%s: %w", ProviderName, err)
	}

	if err := embedding.CheckCount(ProviderName, len(sentences), len(resp.Embeddings)); err != nil {
		return nil, err
	}

	out := make([]*embedding.Embedding, len(sentences))
	for i, v := range resp.Embeddings {
		out[i] = embedding.FromFloat32(sentences[i], v)
	}
	return out, nil
}
