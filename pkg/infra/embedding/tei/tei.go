// Package tei talks to a Hugging Face text-embeddings-inference server. It is
// the default runtime for all-MiniLM-L6-v2.
package tei

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
	ProviderName = "tei"

	defaultBaseURL   = "http://127.0.0.1:8081"
	defaultBatchSize = 32
)

type options struct {
	BatchSize int  `mapstructure:"batch_size"`
	Truncate  bool `mapstructure:"truncate"`
}

type embedRequest struct {
	Inputs    []string `json:"inputs"`
	Normalize bool     `json:"normalize"`
	Truncate  bool     `json:"truncate,omitempty"`
}

type encoder struct {
	client  *httpx.Client
	cfg     *embedding.Config
	opts    options
	url     string
	headers map[string]string
	logger  *logrus.Logger
}

func NewEncoder(client *httpx.Client, cfg *embedding.Config, logger *logrus.Logger) (embedding.Encoder, error) {
	opts := options{BatchSize: defaultBatchSize}
	if err := cfg.DecodeOptions(&opts); err != nil {
		return nil, err
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	headers := map[string]string{}
	if cfg.Credentials.ApiKey != "" {
		headers["Authorization"] = "Bearer " + cfg.Credentials.ApiKey
	}
	if cfg.Credentials.HeaderName != "" {
		headers[cfg.Credentials.HeaderName] = cfg.Credentials.HeaderValue
	}

	return &encoder{
		client:  client,
		cfg:     cfg,
		opts:    opts,
		url:     strings.TrimRight(baseURL, "/") + "/embed",
		headers: headers,
		logger:  logger,
	}, nil
}

func (e *encoder) Name() string {
	return ProviderName
}

// Encode sends the sentences in batches no larger than the server's client
// batch limit and stitches the results back in input order.
func (e *encoder) Encode(ctx context.Context, sentences []string) ([]*embedding.Embedding, error) {
	out := make([]*embedding.Embedding, 0, len(sentences))
	for start := 0; start < len(sentences); start += e.opts.BatchSize {
		end := start + e.opts.BatchSize
		if end > len(sentences) {
			end = len(sentences)
		}
		batch := sentences[start:end]

		var vectors [][]float32
		err := e.client.PostJSON(ctx, e.url, e.headers, embedRequest{
			Inputs:    batch,
			Normalize: true,
			Truncate:  e.opts.Truncate,
		}, &vectors)
		if err != nil {
			e.logger.WithError(err).WithField("batch_start", start).Error("tei embed request failed")
			return nil, wrapError(err)
		}
		if err := embedding.CheckCount(ProviderName, len(batch), len(vectors)); err != nil {
			return nil, err
		}

		for i, v := range vectors {
			out = append(out, embedding.FromFloat32(batch[i], v))
		}
	}
	return out, nil
}

func wrapError(err error) error {
	var statusErr *httpx.StatusError
	if errors.As(err, &statusErr) {
		return embedding.NewProviderError(ProviderName, statusErr.Code, err)
	}
	return fmt.Errorf("%s: %w", ProviderName, err)
}
