package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"site_functions/internal/domain"
)

type VisitStore interface {
	Upsert(ctx context.Context, visit *domain.PageVisit) error
	CountUniqueVisitors(ctx context.Context, pagePath, excludeFingerprint string) (int64, error)
	Stats(ctx context.Context, excludeFingerprint string) ([]domain.PageStats, error)
}

type LikeStore interface {
	Add(ctx context.Context, articleID int64, visitorFingerprint string) (bool, error)
	Remove(ctx context.Context, articleID int64, visitorFingerprint string) error
	Count(ctx context.Context, articleID int64) (int64, error)
	Exists(ctx context.Context, articleID int64, visitorFingerprint string) (bool, error)
}

type CommentStore interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error)
	Delete(ctx context.Context, id int64) error
}

type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, event *domain.EngagementEvent) error
	Close() error
}
