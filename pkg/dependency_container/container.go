package dependency_container

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	appsimilarity "github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/app/similarity"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/config"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/domain/answerset"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/domain/embedding"
	handlers "github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/handlers/http"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/handlers/lambda"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/infra/awsx"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/infra/embedding/factory"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/infra/embedding/resilient"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/infra/httpx"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/infra/modelhub"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/infra/repository"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/server"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/server/middleware"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/version"
	"github.com/sirupsen/logrus"
)

type Container struct {
	AWSConfig           aws.Config
	S3Client            *s3.Client
	Encoder             embedding.Encoder
	AnswerRepository    answerset.Repository
	Scorer              appsimilarity.Scorer
	ModelDownloader     *modelhub.Downloader
	LambdaHandler       *lambda.Handler
	HandlerTransport    handlers.HandlerTransport
	AccessLogMiddleware middleware.Middleware
}

type ContainerDI struct {
	Cfg    *config.Config
	Logger *logrus.Logger
}

func NewContainer(ctx context.Context, di ContainerDI) (*Container, error) {
	cfg := di.Cfg

	httpClient := httpx.NewFastHTTPClient(
		httpx.WithTimeout(cfg.Embedding.Timeout),
		httpx.WithUserAgent(version.UserAgent()),
	)

	var (
		awsOnce sync.Once
		awsCfg  aws.Config
		awsErr  error
	)
	loadAWS := func(ctx context.Context) (aws.Config, error) {
		awsOnce.Do(func() {
			awsCfg, awsErr = awsx.LoadConfig(ctx, cfg.AWS)
		})
		return awsCfg, awsErr
	}

	locator := factory.NewEncoderLocator(di.Logger, httpClient, loadAWS)
	baseEncoder, err := locator.GetEncoder(ctx, &embedding.Config{
		Provider: cfg.Embedding.Provider,
		Model:    cfg.Embedding.Model,
		BaseURL:  cfg.Embedding.BaseURL,
		Credentials: embedding.Credentials{
			ApiKey: cfg.Embedding.APIKey,
		},
		Timeout:     cfg.Embedding.Timeout,
		MaxParallel: cfg.Embedding.MaxParallel,
		Options:     cfg.Embedding.Options,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize encoder: %w", err)
	}

	policy := resilient.DefaultPolicy()
	policy.MaxRetries = cfg.Resilience.MaxRetries
	if cfg.Resilience.InitialInterval > 0 {
		policy.InitialInterval = cfg.Resilience.InitialInterval
	}
	if cfg.Resilience.MaxElapsedTime > 0 {
		policy.MaxElapsedTime = cfg.Resilience.MaxElapsedTime
	}
	breaker := httpx.NewCircuitBreaker(
		baseEncoder.Name(),
		cfg.Resilience.BreakerTimeout,
		cfg.Resilience.BreakerFailures,
		httpx.WithSuccessClassifier(func(err error) bool {
			return err == nil || !resilient.IsRetryable(err)
		}),
		httpx.WithStateChangeHook(func(name, from, to string) {
			di.Logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from,
				"to":      to,
			}).Warn("encoder circuit breaker changed state")
		}),
	)
	encoder := resilient.NewEncoder(baseEncoder, breaker, policy, di.Logger)

	resolvedAWS, err := loadAWS(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	s3Client := awsx.NewS3Client(resolvedAWS, cfg.AWS, cfg.Storage)
	answerRepository := repository.NewS3AnswerRepository(s3Client, cfg.Storage.Bucket, di.Logger)

	scorer := appsimilarity.NewScorer(di.Logger, encoder, answerRepository, cfg.Similarity.ChoiceThreshold)

	downloader := modelhub.NewDownloader(modelhub.NewHubClient(), cfg.Model, di.Logger)

	handlerTransport := handlers.HandlerTransport{
		RankSimilarityHandler: handlers.NewRankSimilarityHandler(di.Logger, scorer),
		ScoreObjectHandler:    handlers.NewScoreObjectHandler(di.Logger, scorer),
		GetVersionHandler:     handlers.NewGetVersionHandler(di.Logger),
	}

	return &Container{
		AWSConfig:           resolvedAWS,
		S3Client:            s3Client,
		Encoder:             encoder,
		AnswerRepository:    answerRepository,
		Scorer:              scorer,
		ModelDownloader:     downloader,
		LambdaHandler:       lambda.NewHandler(di.Logger, scorer),
		HandlerTransport:    handlerTransport,
		AccessLogMiddleware: middleware.NewAccessLogMiddleware(di.Logger, server.HealthPath, server.AdminHealthPath),
	}, nil
}
