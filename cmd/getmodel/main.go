// Command getmodel fetches the sentence model snapshot from the hub and,
// when a bucket is given, publishes it to S3 for the runtime image build.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/config"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/infra/awsx"
	infraLogger "github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/infra/logger"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/infra/modelhub"
	"github.com/joho/godotenv"
)

func main() {
	var (
		configPath = flag.String("config", "./config", "directory holding config.yaml")
		repository = flag.String("repository", "", "hub repository, overrides model.repository")
		revision   = flag.String("revision", "", "hub revision, overrides model.revision")
		dir        = flag.String("dir", "", "target directory, overrides model.dir")
		bucket     = flag.String("bucket", "", "publish the snapshot to this bucket")
		prefix     = flag.String("prefix", "model", "key prefix used with -bucket")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger(infraLogger.ModeLambda)

	if err := config.Load(*configPath); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	modelCfg := cfg.Model
	if *repository != "" {
		modelCfg.Repository = *repository
	}
	if *revision != "" {
		modelCfg.Revision = *revision
	}
	if *dir != "" {
		modelCfg.Dir = *dir
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	downloader := modelhub.NewDownloader(modelhub.NewHubClient(), modelCfg, logger)
	manifest, err := downloader.Ensure(ctx)
	if err != nil {
		logger.Fatalf("Failed to download model: %v", err)
	}
	logger.WithFields(map[string]interface{}{
		"repository": manifest.Repository,
		"revision":   manifest.Revision,
		"files":      len(manifest.Files),
		"dir":        downloader.Dir(),
	}).Info("model snapshot ready")

	if *bucket == "" {
		return
	}

	awsCfg, err := awsx.LoadConfig(ctx, cfg.AWS)
	if err != nil {
		logger.Fatalf("Failed to load aws config: %v", err)
	}
	s3Client := awsx.NewS3Client(awsCfg, cfg.AWS, cfg.Storage)
	if err := downloader.Publish(ctx, s3Client, *bucket, *prefix); err != nil {
		logger.Fatalf("Failed to publish model: %v", err)
	}
	logger.WithField("bucket", *bucket).Info("model snapshot published")
}
