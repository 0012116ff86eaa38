package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"site_functions/internal/app"
	"site_functions/internal/config"
	"site_functions/internal/gateway"
	"site_functions/internal/handler"
	"site_functions/internal/logger"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	log := logger.New("info")

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log = logger.New(cfg.LogLevel)

	router := gateway.NewRouter(log,
		gateway.Route{Path: "/analytics", Handler: handler.NewAnalytics(config.Load, app.AnalyticsOpener(log), log).Handle},
		gateway.Route{Path: "/engagement", Handler: handler.NewEngagement(config.Load, app.EngagementOpener(log), log).Handle},
		gateway.Route{Path: "/upload", Handler: handler.NewUpload(config.Load, app.UploadOpener(log), log).Handle},
	)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Info("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown failed", "error", err)
		}
	}()

	log.Info("starting dev server", "addr", *addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
