package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/domain/embedding"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	ProviderName = "bedrock"

	defaultModel       = "amazon.titan-embed-text-v2:0"
	defaultMaxParallel = 4
	contentType        = "application/json"
)

//go:generate mockery --name=RuntimeClient --dir=. --output=./mocks --filename=runtime_client_mock.go --case=underscore --with-expecter
type RuntimeClient interface {
	InvokeModel(
		ctx context.Context,
		params *bedrockruntime.InvokeModelInput,
		optFns ...func(*bedrockruntime.Options),
	) (*bedrockruntime.InvokeModelOutput, error)
}

type options struct {
	Dimensions int    `mapstructure:"dimensions"`
	InputType  string `mapstructure:"input_type"`
	Truncate   string `mapstructure:"truncate"`
}

type titanRequest struct {
	InputText  string `json:"inputText"`
	Dimensions int    `json:"dimensions,omitempty"`
	Normalize  bool   `json:"normalize"`
}

type titanResponse struct {
	Embedding           []float64 `json:"embedding"`
	InputTextTokenCount int       `json:"inputTextTokenCount"`
}

type cohereRequest struct {
	Texts     []string `json:"texts"`
	InputType string   `json:"input_type"`
	Truncate  string   `json:"truncate,omitempty"`
}

type cohereResponse struct {
	ID         string      `json:"id"`
	Embeddings [][]float64 `json:"embeddings"`
}

type encoder struct {
	client      RuntimeClient
	model       string
	maxParallel int
	opts        options
	logger      *logrus.Logger
}

func NewEncoder(client RuntimeClient, cfg *embedding.Config, logger *logrus.Logger) (embedding.Encoder, error) {
	opts := options{InputType: "search_document", Truncate: "END"}
	if err := cfg.DecodeOptions(&opts); err != nil {
		return nil, err
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	maxParallel := cfg.MaxParallel
	if maxParallel <= 0 {
		maxParallel = defaultMaxParallel
	}
	return &encoder{
		client:      client,
		model:       model,
		maxParallel: maxParallel,
		opts:        opts,
		logger:      logger,
	}, nil
}

// NewEncoderFromConfig builds the runtime client from a resolved AWS config.
func NewEncoderFromConfig(awsCfg aws.Config, cfg *embedding.Config, logger *logrus.Logger) (embedding.Encoder, error) {
	return NewEncoder(bedrockruntime.NewFromConfig(awsCfg), cfg, logger)
}

func (e *encoder) Name() string {
	return ProviderName
}

func (e *encoder) Encode(ctx context.Context, sentences []string) ([]*embedding.Embedding, error) {
	if strings.HasPrefix(e.model, "cohere.") {
		return e.encodeCohere(ctx, sentences)
	}
	return e.encodeTitan(ctx, sentences)
}

// Titan embeds a single text per invocation, so the batch is fanned out.
func (e *encoder) encodeTitan(ctx context.Context, sentences []string) ([]*embedding.Embedding, error) {
	out := make([]*embedding.Embedding, len(sentences))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.maxParallel)
	for i, sentence := range sentences {
		i, sentence := i, sentence
		g.Go(func() error {
			var resp titanResponse
			if err := e.invoke(gctx, titanRequest{
				InputText:  sentence,
				Dimensions: e.opts.Dimensions,
				Normalize:  true,
			}, &resp); err != nil {
				return err
			}
			if len(resp.Embedding) == 0 {
				return fmt.Errorf("%s: %w", ProviderName, embedding.ErrEmptyEmbeddings)
			}
			out[i] = embedding.FromFloat64(sentence, resp.Embedding)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *encoder) encodeCohere(ctx context.Context, sentences []string) ([]*embedding.Embedding, error) {
	var resp cohereResponse
	if err := e.invoke(ctx, cohereRequest{
		Texts:     sentences,
		InputType: e.opts.InputType,
		Truncate:  e.opts.Truncate,
	}, &resp); err != nil {
		return nil, err
	}
	if err := embedding.CheckCount(ProviderName, len(sentences), len(resp.Embeddings)); err != nil {
		return nil, err
	}

	out := make([]*embedding.Embedding, len(sentences))
	for i, v := range resp.Embeddings {
		out[i] = embedding.FromFloat64(sentences[i], v)
	}
	return out, nil
}

func (e *encoder) invoke(ctx context.Context, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: marshal request: %w", ProviderName, err)
	}

	resp, err := e.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(e.model),
		Body:        body,
		ContentType: aws.String(contentType),
		Accept:      aws.String(contentType),
	})
	if err != nil {
		e.logger.WithError(err).WithField("model", e.model).Error("bedrock invoke model failed")
		var respErr interface{ HTTPStatusCode() int }
		if errors.As(err, &respErr) {
			return embedding.NewProviderError(ProviderName, respErr.HTTPStatusCode(), err)
		}
		return fmt.Errorf("%s: %w", ProviderName, err)
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", ProviderName, err)
	}
	return nil
}
