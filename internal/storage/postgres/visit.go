package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"site_functions/internal/domain"
)

type VisitStore struct {
	db *sqlx.DB
}

func NewVisitStore(db *sqlx.DB) *VisitStore {
	return &VisitStore{db: db}
}

// Upsert inserts the visit or, when the (page_path, visitor_fingerprint) pair
// already exists, only refreshes visited_at.
func (s *VisitStore) Upsert(ctx context.Context, visit *domain.PageVisit) error {
	query := `
		INSERT INTO page_visits (page_path, visitor_fingerprint, visitor_ip, user_agent)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (page_path, visitor_fingerprint)
		DO UPDATE SET visited_at = CURRENT_TIMESTAMP`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		visit.PagePath,
		visit.VisitorFingerprint,
		visit.VisitorIP,
		visit.UserAgent,
	)
	return err
}

func (s *VisitStore) CountUniqueVisitors(ctx context.Context, pagePath, excludeFingerprint string) (int64, error) {
	query := `
		SELECT COUNT(DISTINCT visitor_fingerprint)
		FROM page_visits
		WHERE page_path = $1 AND visitor_fingerprint != $2`

	var count int64
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count, query, pagePath, excludeFingerprint)
	return count, err
}

func (s *VisitStore) Stats(ctx context.Context, excludeFingerprint string) ([]domain.PageStats, error) {
	query := `
		SELECT
			page_path,
			COUNT(DISTINCT visitor_fingerprint) AS unique_visitors,
			MAX(visited_at) AS last_visit
		FROM page_visits
		WHERE visitor_fingerprint != $1
		GROUP BY page_path
		ORDER BY unique_visitors DESC`

	stats := []domain.PageStats{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &stats, query, excludeFingerprint)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
