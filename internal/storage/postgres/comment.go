package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"site_functions/internal/domain"
)

type CommentStore struct {
	db *sqlx.DB
}

func NewCommentStore(db *sqlx.DB) *CommentStore {
	return &CommentStore{db: db}
}

// Create inserts the comment and fills in its generated ID and CreatedAt.
func (s *CommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO article_comments
			(article_id, author_name, author_email, content, visitor_fingerprint)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	return GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		comment.ArticleID,
		comment.AuthorName,
		comment.AuthorEmail,
		comment.Content,
		comment.VisitorFingerprint,
	).Scan(&comment.ID, &comment.CreatedAt)
}

// ListByArticle returns the article's comments, newest first.
func (s *CommentStore) ListByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	query := `
		SELECT id, article_id, author_name, content, created_at
		FROM article_comments
		WHERE article_id = $1
		ORDER BY created_at DESC, id DESC`

	comments := []domain.Comment{}
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &comments, query, articleID); err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentStore) Delete(ctx context.Context, id int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, "DELETE FROM article_comments WHERE id = $1", id)
	return err
}
