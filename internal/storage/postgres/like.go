package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type LikeStore struct {
	db *sqlx.DB
}

func NewLikeStore(db *sqlx.DB) *LikeStore {
	return &LikeStore{db: db}
}

// Add reports whether a new row was inserted. A duplicate like is a no-op.
func (s *LikeStore) Add(ctx context.Context, articleID int64, visitorFingerprint string) (bool, error) {
	query := `
		INSERT INTO article_likes (article_id, visitor_fingerprint)
		VALUES ($1, $2)
		ON CONFLICT (article_id, visitor_fingerprint) DO NOTHING
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, articleID, visitorFingerprint).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *LikeStore) Remove(ctx context.Context, articleID int64, visitorFingerprint string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM article_likes WHERE article_id = $1 AND visitor_fingerprint = $2",
		articleID, visitorFingerprint,
	)
	return err
}

func (s *LikeStore) Count(ctx context.Context, articleID int64) (int64, error) {
	var count int64
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count,
		"SELECT COUNT(*) FROM article_likes WHERE article_id = $1",
		articleID,
	)
	return count, err
}

func (s *LikeStore) Exists(ctx context.Context, articleID int64, visitorFingerprint string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM article_likes
			WHERE article_id = $1 AND visitor_fingerprint = $2
		)`

	var exists bool
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &exists, query, articleID, visitorFingerprint)
	return exists, err
}
