// Package app builds the services behind each handler for a single invocation.
package app

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"site_functions/internal/config"
	"site_functions/internal/handler"
	"site_functions/internal/publisher"
	"site_functions/internal/service"
	"site_functions/internal/storage/postgres"
	"site_functions/internal/storage/s3"
)

type closers []io.Closer

// Close releases resources in reverse order of acquisition.
func (c closers) Close() error {
	var errs []error
	for i := len(c) - 1; i >= 0; i-- {
		if err := c[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func AnalyticsOpener(logger *slog.Logger) handler.AnalyticsOpener {
	return func(ctx context.Context, cfg *config.Config) (handler.AnalyticsService, io.Closer, error) {
		db, err := postgres.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return nil, nil, err
		}

		svc := service.NewAnalyticsService(
			postgres.NewVisitStore(db),
			postgres.NewTransactionManager(db),
			logger,
		)
		return svc, db, nil
	}
}

func EngagementOpener(logger *slog.Logger) handler.EngagementOpener {
	return func(ctx context.Context, cfg *config.Config) (handler.EngagementService, io.Closer, error) {
		db, err := postgres.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return nil, nil, err
		}
		resources := closers{db}

		var pub service.Publisher
		if cfg.RabbitMQ.Enabled() {
			rabbitMQ, err := publisher.NewRabbitMQ(ctx, publisher.Config{
				URL:         cfg.RabbitMQ.URL,
				Exchange:    cfg.RabbitMQ.Exchange,
				RoutingKey:  cfg.RabbitMQ.RoutingKey,
				QueueName:   cfg.RabbitMQ.QueueName,
				DialTimeout: cfg.RabbitMQ.DialTimeout,
			}, logger)
			if err != nil {
				// events are best effort; the request still goes through
				logger.Warn("engagement events disabled", "error", err)
			} else {
				pub = rabbitMQ
				resources = append(resources, rabbitMQ)
			}
		}

		svc := service.NewEngagementService(
			postgres.NewLikeStore(db),
			postgres.NewCommentStore(db),
			postgres.NewTransactionManager(db),
			pub,
			logger,
		)
		return svc, resources, nil
	}
}

func UploadOpener(logger *slog.Logger) handler.UploadOpener {
	return func(ctx context.Context, cfg *config.Config) (handler.UploadService, error) {
		objects, err := s3.New(ctx, cfg.Storage)
		if err != nil {
			return nil, err
		}
		return service.NewUploadService(objects, cfg.Storage.PublicURL, logger), nil
	}
}
