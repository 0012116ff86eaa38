package service

import (
	"context"
	"fmt"
	"log/slog"

	"site_functions/internal/domain"
)

type AnalyticsService struct {
	visits    VisitStore
	txManager TransactionManager
	logger    *slog.Logger
}

func NewAnalyticsService(visits VisitStore, txManager TransactionManager, logger *slog.Logger) *AnalyticsService {
	return &AnalyticsService{
		visits:    visits,
		txManager: txManager,
		logger:    logger.With("service", "analytics"),
	}
}

// RecordVisit stores the visit unless the fingerprint is empty or belongs to
// the admin. It reports whether a row was written.
func (s *AnalyticsService) RecordVisit(ctx context.Context, visit *domain.PageVisit, adminFingerprint string) (bool, error) {
	if visit.VisitorFingerprint == "" || visit.VisitorFingerprint == adminFingerprint {
		s.logger.Debug("visit skipped", "page_path", visit.PagePath)
		return false, nil
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.visits.Upsert(txCtx, visit)
	})
	if err != nil {
		return false, fmt.Errorf("upsert visit: %w", err)
	}

	s.logger.Debug("visit recorded", "page_path", visit.PagePath)
	return true, nil
}

func (s *AnalyticsService) PageUniqueVisitors(ctx context.Context, pagePath, adminFingerprint string) (int64, error) {
	count, err := s.visits.CountUniqueVisitors(ctx, pagePath, adminFingerprint)
	if err != nil {
		return 0, fmt.Errorf("count visitors: %w", err)
	}
	return count, nil
}

// SiteStats returns per-page visitor counts, most visited first.
func (s *AnalyticsService) SiteStats(ctx context.Context, adminFingerprint string) ([]domain.PageStats, error) {
	stats, err := s.visits.Stats(ctx, adminFingerprint)
	if err != nil {
		return nil, fmt.Errorf("page stats: %w", err)
	}
	return stats, nil
}
