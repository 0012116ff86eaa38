package main

import (
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"site_functions/internal/app"
	"site_functions/internal/config"
	"site_functions/internal/handler"
	"site_functions/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)

	h := handler.NewEngagement(config.Load, app.EngagementOpener(log), log)
	lambda.Start(h.Handle)
}
