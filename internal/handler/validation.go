package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

type visitRequest struct {
	PagePath           *string `json:"page_path"`
	VisitorFingerprint string  `json:"visitor_fingerprint"`
	AdminFingerprint   string  `json:"admin_fingerprint"`
}

type likeRequest struct {
	ArticleID          int64  `json:"article_id" validate:"required"`
	VisitorFingerprint string `json:"visitor_fingerprint" validate:"required"`
}

type commentRequest struct {
	ArticleID          int64   `json:"article_id" validate:"required"`
	AuthorName         *string `json:"author_name"`
	AuthorEmail        *string `json:"author_email"`
	Content            string  `json:"content" validate:"notblank"`
	VisitorFingerprint string  `json:"visitor_fingerprint"`
}

type deleteCommentRequest struct {
	CommentID int64 `json:"comment_id" validate:"required"`
}

type uploadRequest struct {
	Image    string  `json:"image" validate:"required"`
	Filename *string `json:"filename"`
}
