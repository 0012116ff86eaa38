package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"site_functions/internal/domain"
)

type EngagementService struct {
	likes     LikeStore
	comments  CommentStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
}

// NewEngagementService builds the service. publisher may be nil.
func NewEngagementService(
	likes LikeStore,
	comments CommentStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *EngagementService {
	return &EngagementService{
		likes:     likes,
		comments:  comments,
		txManager: txManager,
		publisher: publisher,
		logger:    logger.With("service", "engagement"),
	}
}

// Like reports true only when a new like row was inserted.
func (s *EngagementService) Like(ctx context.Context, articleID int64, visitorFingerprint string) (bool, error) {
	var created bool
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.likes.Add(txCtx, articleID, visitorFingerprint)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("add like: %w", err)
	}

	if created {
		s.publish(ctx, &domain.EngagementEvent{
			Type:               domain.EventLikeCreated,
			ArticleID:          articleID,
			VisitorFingerprint: visitorFingerprint,
		})
	}

	return created, nil
}

func (s *EngagementService) Unlike(ctx context.Context, articleID int64, visitorFingerprint string) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.likes.Remove(txCtx, articleID, visitorFingerprint)
	})
	if err != nil {
		return fmt.Errorf("remove like: %w", err)
	}

	s.publish(ctx, &domain.EngagementEvent{
		Type:               domain.EventLikeRemoved,
		ArticleID:          articleID,
		VisitorFingerprint: visitorFingerprint,
	})
	return nil
}

// Likes counts the article's likes. UserLiked is only checked for a non-empty fingerprint.
func (s *EngagementService) Likes(ctx context.Context, articleID int64, visitorFingerprint string) (*domain.LikeSummary, error) {
	summary := &domain.LikeSummary{}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		total, err := s.likes.Count(txCtx, articleID)
		if err != nil {
			return fmt.Errorf("count likes: %w", err)
		}
		summary.TotalLikes = total

		if visitorFingerprint == "" {
			return nil
		}

		liked, err := s.likes.Exists(txCtx, articleID, visitorFingerprint)
		if err != nil {
			return fmt.Errorf("check like: %w", err)
		}
		summary.UserLiked = liked
		return nil
	})
	if err != nil {
		return nil, err
	}

	return summary, nil
}

func (s *EngagementService) Comments(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	comments, err := s.comments.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// AddComment stores the comment and sets its ID and CreatedAt.
func (s *EngagementService) AddComment(ctx context.Context, comment *domain.Comment) error {
	if comment.AuthorName == "" {
		comment.AuthorName = domain.AnonymousAuthor
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.comments.Create(txCtx, comment)
	})
	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}

	s.logger.Debug("comment created", "article_id", comment.ArticleID, "comment_id", comment.ID)

	s.publish(ctx, &domain.EngagementEvent{
		Type:               domain.EventCommentCreated,
		ArticleID:          comment.ArticleID,
		CommentID:          comment.ID,
		VisitorFingerprint: comment.VisitorFingerprint,
	})
	return nil
}

// DeleteComment removes the comment by id. There is no ownership check.
func (s *EngagementService) DeleteComment(ctx context.Context, id int64) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.comments.Delete(txCtx, id)
	})
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	s.publish(ctx, &domain.EngagementEvent{Type: domain.EventCommentDeleted, CommentID: id})
	return nil
}

func (s *EngagementService) publish(ctx context.Context, event *domain.EngagementEvent) {
	if s.publisher == nil {
		return
	}

	event.Timestamp = time.Now().UTC()
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("publish engagement event failed", "type", event.Type, "error", err)
	}
}
