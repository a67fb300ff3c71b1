package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/config"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/dependency_container"
	infraLogger "github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/infra/logger"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/server"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/server/middleware"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/server/router"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()
	mode := getRunMode()

	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger(mode)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config"
	}
	if err := config.Load(configPath); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	container, err := dependency_container.NewContainer(ctx, dependency_container.ContainerDI{
		Cfg:    cfg,
		Logger: logger,
	})
	if err != nil {
		logger.Fatalf("Failed to initialize dependencies: %v", err)
	}

	if cfg.Model.DownloadOnStart {
		manifest, err := container.ModelDownloader.Ensure(ctx)
		if err != nil {
			logger.Fatalf("Failed to download model: %v", err)
		}
		logger.WithField("files", len(manifest.Files)).Info("model snapshot ready")
	}

	if mode == infraLogger.ModeLambda {
		lambda.StartWithOptions(container.LambdaHandler.Handle, lambda.WithContext(ctx))
		return
	}

	srv := server.NewSimilarityServer(server.SimilarityServerDI{
		Config:              cfg,
		Logger:              logger,
		MiddlewareTransport: middleware.NewTransport(container.AccessLogMiddleware),
		Routers: []router.ServerRouter{
			router.NewSimilarityRouter(container.HandlerTransport),
		},
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	fmt.Println("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		fmt.Println("error shutting down server:", err)
		os.Exit(1)
	}
	fmt.Println("server gracefully stopped")
}

// getRunMode picks the Lambda runtime when the process was started by it,
// otherwise the first argument decides.
func getRunMode() string {
	if os.Getenv("AWS_LAMBDA_RUNTIME_API") != "" {
		return infraLogger.ModeLambda
	}
	if len(os.Args) > 1 && os.Args[1] == infraLogger.ModeLambda {
		return infraLogger.ModeLambda
	}
	return infraLogger.ModeServer
}
