package domain

import "time"

// AnonymousAuthor is stored when a comment is posted without a name.
const AnonymousAuthor = "Аноним"

type ArticleLike struct {
	ID                 int64  `db:"id"`
	ArticleID          int64  `db:"article_id"`
	VisitorFingerprint string `db:"visitor_fingerprint"`
}

type LikeSummary struct {
	TotalLikes int64 `json:"total_likes"`
	UserLiked  bool  `json:"user_liked"`
}

type Comment struct {
	ID                 int64     `db:"id" json:"id"`
	ArticleID          int64     `db:"article_id" json:"-"`
	AuthorName         string    `db:"author_name" json:"author_name"`
	AuthorEmail        *string   `db:"author_email" json:"-"`
	Content            string    `db:"content" json:"content"`
	VisitorFingerprint string    `db:"visitor_fingerprint" json:"-"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

type EventType string

const (
	EventLikeCreated    EventType = "like.created"
	EventLikeRemoved    EventType = "like.removed"
	EventCommentCreated EventType = "comment.created"
	EventCommentDeleted EventType = "comment.deleted"
)

// EngagementEvent is published after a successful like or comment write.
type EngagementEvent struct {
	Type               EventType `json:"type"`
	ArticleID          int64     `json:"article_id,omitempty"`
	CommentID          int64     `json:"comment_id,omitempty"`
	VisitorFingerprint string    `json:"visitor_fingerprint,omitempty"`
	Timestamp          time.Time `json:"timestamp"`
}
