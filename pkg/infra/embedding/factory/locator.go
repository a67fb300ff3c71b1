package factory

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/domain/embedding"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/infra/embedding/azure"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/infra/embedding/bedrock"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/infra/embedding/gemini"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/infra/embedding/ollama"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/infra/embedding/openai"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/infra/embedding/tei"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/infra/httpx"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

const (
	TEIProvider     = tei.ProviderName
	OllamaProvider  = ollama.ProviderName
	OpenAIProvider  = openai.ProviderName
	AzureProvider   = azure.ProviderName
	BedrockProvider = bedrock.ProviderName
	GeminiProvider  = gemini.ProviderName
)

// AWSConfigFunc resolves the AWS configuration on first use, so deployments
// that never select bedrock never touch the credential chain.
type AWSConfigFunc func(ctx context.Context) (aws.Config, error)

type EncoderLocator struct {
	logger     *logrus.Logger
	httpClient *fasthttp.Client
	awsConfig  AWSConfigFunc
}

func NewEncoderLocator(logger *logrus.Logger, httpClient *fasthttp.Client, awsConfig AWSConfigFunc) *EncoderLocator {
	return &EncoderLocator{
		logger:     logger,
		httpClient: httpClient,
		awsConfig:  awsConfig,
	}
}

func (l *EncoderLocator) GetEncoder(ctx context.Context, cfg *embedding.Config) (embedding.Encoder, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", TEIProvider:
		return tei.NewEncoder(httpx.NewClient(l.httpClient, cfg.Timeout), cfg, l.logger)
	case OllamaProvider:
		return ollama.NewEncoder(httpx.NewClient(l.httpClient, cfg.Timeout), cfg, l.logger)
	case OpenAIProvider:
		return openai.NewEncoder(cfg, l.logger)
	case AzureProvider:
		return azure.NewEncoder(cfg, azure.DefaultCredential, l.logger)
	case BedrockProvider:
		if l.awsConfig == nil {
			return nil, fmt.Errorf("%s: AWS configuration is not available", BedrockProvider)
		}
		awsCfg, err := l.awsConfig(ctx)
		if err != nil {
			return nil, err
		}
		return bedrock.NewEncoderFromConfig(awsCfg, cfg, l.logger)
	case GeminiProvider:
		return gemini.NewEncoder(ctx, cfg, l.logger)
	default:
		return nil, fmt.Errorf("%w: %s", embedding.ErrUnsupportedProvider, cfg.Provider)
	}
}
