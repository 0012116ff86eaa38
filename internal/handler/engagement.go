package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"site_functions/internal/domain"
)

const defaultAction = "comments"

const (
	msgLikeFieldsRequired    = "article_id and visitor_fingerprint required"
	msgArticleIDRequired     = "article_id required"
	msgCommentFieldsRequired = "article_id and content required"
	msgCommentIDRequired     = "comment_id required"
)

type routeKey struct {
	action string
	method string
}

type engagementRoute func(ctx context.Context, svc EngagementService, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse

type Engagement struct {
	base
	loadConfig ConfigLoader
	open       EngagementOpener
	routes     map[routeKey]engagementRoute
}

func NewEngagement(loadConfig ConfigLoader, open EngagementOpener, logger *slog.Logger) *Engagement {
	h := &Engagement{
		base:       base{logger: logger.With("handler", "engagement")},
		loadConfig: loadConfig,
		open:       open,
	}
	h.routes = map[routeKey]engagementRoute{
		{"like", http.MethodPost}:      h.like,
		{"unlike", http.MethodDelete}:  h.unlike,
		{"likes", http.MethodGet}:      h.likes,
		{"comments", http.MethodGet}:   h.comments,
		{"comment", http.MethodPost}:   h.addComment,
		{"comment", http.MethodDelete}: h.deleteComment,
	}
	return h
}

// Handle dispatches on the "action" query parameter and the HTTP method.
func (h *Engagement) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	method := methodOf(req, http.MethodGet)
	if method == http.MethodOptions {
		return preflight("GET, POST, DELETE, OPTIONS", "Content-Type, X-Visitor-Fingerprint"), nil
	}

	cfg, err := h.loadConfig()
	if err != nil {
		return h.fail(err, "load config"), nil
	}
	if cfg.Database.URL == "" {
		return errorResponse(http.StatusInternalServerError, msgNoDatabase), nil
	}

	action := query(req, "action")
	if action == "" {
		action = defaultAction
	}

	route, ok := h.routes[routeKey{action: action, method: method}]
	if !ok {
		return errorResponse(http.StatusMethodNotAllowed, msgMethodNotAllowed), nil
	}

	svc, closer, err := h.open(ctx, cfg)
	if err != nil {
		return h.fail(err, "open engagement"), nil
	}
	defer h.release(closer)

	return route(ctx, svc, req), nil
}

func (h *Engagement) like(ctx context.Context, svc EngagementService, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	var body likeRequest
	if err := decodeBody(req, &body); err != nil {
		return errorResponse(http.StatusBadRequest, msgInvalidBody)
	}
	if err := validate.Struct(body); err != nil {
		return errorResponse(http.StatusBadRequest, msgLikeFieldsRequired)
	}

	liked, err := svc.Like(ctx, body.ArticleID, body.VisitorFingerprint)
	if err != nil {
		return h.fail(err, "like", "article_id", body.ArticleID)
	}

	return jsonResponse(http.StatusOK, H{"success": true, "liked": liked})
}

func (h *Engagement) unlike(ctx context.Context, svc EngagementService, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	var body likeRequest
	if err := decodeBody(req, &body); err != nil {
		return errorResponse(http.StatusBadRequest, msgInvalidBody)
	}
	if err := validate.Struct(body); err != nil {
		return errorResponse(http.StatusBadRequest, msgLikeFieldsRequired)
	}

	if err := svc.Unlike(ctx, body.ArticleID, body.VisitorFingerprint); err != nil {
		return h.fail(err, "unlike", "article_id", body.ArticleID)
	}

	return jsonResponse(http.StatusOK, H{"success": true})
}

func (h *Engagement) likes(ctx context.Context, svc EngagementService, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	articleID, ok := articleIDParam(req)
	if !ok {
		return errorResponse(http.StatusBadRequest, msgArticleIDRequired)
	}

	summary, err := svc.Likes(ctx, articleID, query(req, "visitor_fingerprint"))
	if err != nil {
		return h.fail(err, "likes", "article_id", articleID)
	}

	return jsonResponse(http.StatusOK, summary)
}

func (h *Engagement) comments(ctx context.Context, svc EngagementService, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	articleID, ok := articleIDParam(req)
	if !ok {
		return errorResponse(http.StatusBadRequest, msgArticleIDRequired)
	}

	comments, err := svc.Comments(ctx, articleID)
	if err != nil {
		return h.fail(err, "comments", "article_id", articleID)
	}
	if comments == nil {
		comments = []domain.Comment{}
	}

	return jsonResponse(http.StatusOK, H{"comments": comments})
}

func (h *Engagement) addComment(ctx context.Context, svc EngagementService, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	var body commentRequest
	if err := decodeBody(req, &body); err != nil {
		return errorResponse(http.StatusBadRequest, msgInvalidBody)
	}
	if err := validate.Struct(body); err != nil {
		return errorResponse(http.StatusBadRequest, msgCommentFieldsRequired)
	}

	comment := &domain.Comment{
		ArticleID:          body.ArticleID,
		AuthorName:         domain.AnonymousAuthor,
		AuthorEmail:        body.AuthorEmail,
		Content:            body.Content,
		VisitorFingerprint: body.VisitorFingerprint,
	}
	if body.AuthorName != nil && strings.TrimSpace(*body.AuthorName) != "" {
		comment.AuthorName = *body.AuthorName
	}

	if err := svc.AddComment(ctx, comment); err != nil {
		return h.fail(err, "add comment", "article_id", body.ArticleID)
	}

	return jsonResponse(http.StatusOK, H{
		"success":    true,
		"comment_id": comment.ID,
		"created_at": comment.CreatedAt,
	})
}

func (h *Engagement) deleteComment(ctx context.Context, svc EngagementService, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	var body deleteCommentRequest
	if err := decodeBody(req, &body); err != nil {
		return errorResponse(http.StatusBadRequest, msgInvalidBody)
	}
	if err := validate.Struct(body); err != nil {
		return errorResponse(http.StatusBadRequest, msgCommentIDRequired)
	}

	if err := svc.DeleteComment(ctx, body.CommentID); err != nil {
		return h.fail(err, "delete comment", "comment_id", body.CommentID)
	}

	return jsonResponse(http.StatusOK, H{"success": true})
}

func articleIDParam(req events.APIGatewayProxyRequest) (int64, bool) {
	id, err := strconv.ParseInt(query(req, "article_id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
