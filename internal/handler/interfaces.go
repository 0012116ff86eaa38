package handler

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"site_functions/internal/domain"
)

type AnalyticsService interface {
	RecordVisit(ctx context.Context, visit *domain.PageVisit, adminFingerprint string) (bool, error)
	PageUniqueVisitors(ctx context.Context, pagePath, adminFingerprint string) (int64, error)
	SiteStats(ctx context.Context, adminFingerprint string) ([]domain.PageStats, error)
}

type EngagementService interface {
	Like(ctx context.Context, articleID int64, visitorFingerprint string) (bool, error)
	Unlike(ctx context.Context, articleID int64, visitorFingerprint string) error
	Likes(ctx context.Context, articleID int64, visitorFingerprint string) (*domain.LikeSummary, error)
	Comments(ctx context.Context, articleID int64) ([]domain.Comment, error)
	AddComment(ctx context.Context, comment *domain.Comment) error
	DeleteComment(ctx context.Context, id int64) error
}

type UploadService interface {
	Upload(ctx context.Context, payload, filename string) (*domain.UploadedImage, error)
}
