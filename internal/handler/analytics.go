package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"site_functions/internal/domain"
)

const defaultPagePath = "/"

type Analytics struct {
	base
	loadConfig ConfigLoader
	open       AnalyticsOpener
}

func NewAnalytics(loadConfig ConfigLoader, open AnalyticsOpener, logger *slog.Logger) *Analytics {
	return &Analytics{
		base:       base{logger: logger.With("handler", "analytics")},
		loadConfig: loadConfig,
		open:       open,
	}
}

// Handle records page visits (POST) and reports visitor counts (GET).
func (h *Analytics) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	method := methodOf(req, http.MethodGet)
	if method == http.MethodOptions {
		return preflight("GET, POST, OPTIONS", "Content-Type, X-User-Id, X-Visitor-Fingerprint"), nil
	}

	cfg, err := h.loadConfig()
	if err != nil {
		return h.fail(err, "load config"), nil
	}
	if cfg.Database.URL == "" {
		return errorResponse(http.StatusInternalServerError, msgNoDatabase), nil
	}

	if method != http.MethodGet && method != http.MethodPost {
		return errorResponse(http.StatusMethodNotAllowed, msgMethodNotAllowed), nil
	}

	svc, closer, err := h.open(ctx, cfg)
	if err != nil {
		return h.fail(err, "open analytics"), nil
	}
	defer h.release(closer)

	if method == http.MethodPost {
		return h.recordVisit(ctx, svc, req), nil
	}
	return h.stats(ctx, svc, req), nil
}

func (h *Analytics) recordVisit(ctx context.Context, svc AnalyticsService, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	var body visitRequest
	if err := decodeBody(req, &body); err != nil {
		return errorResponse(http.StatusBadRequest, msgInvalidBody)
	}

	visit := &domain.PageVisit{
		PagePath:           defaultPagePath,
		VisitorFingerprint: body.VisitorFingerprint,
		VisitorIP:          req.RequestContext.Identity.SourceIP,
		UserAgent:          header(req, "User-Agent"),
	}
	if body.PagePath != nil {
		visit.PagePath = *body.PagePath
	}

	if _, err := svc.RecordVisit(ctx, visit, body.AdminFingerprint); err != nil {
		return h.fail(err, "record visit", "page_path", visit.PagePath)
	}

	return jsonResponse(http.StatusOK, H{"success": true})
}

func (h *Analytics) stats(ctx context.Context, svc AnalyticsService, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	pagePath := query(req, "page_path")
	adminFingerprint := query(req, "admin_fingerprint")

	if pagePath != "" {
		count, err := svc.PageUniqueVisitors(ctx, pagePath, adminFingerprint)
		if err != nil {
			return h.fail(err, "page visitors", "page_path", pagePath)
		}
		return jsonResponse(http.StatusOK, H{
			"page_path":       pagePath,
			"unique_visitors": count,
		})
	}

	stats, err := svc.SiteStats(ctx, adminFingerprint)
	if err != nil {
		return h.fail(err, "site stats")
	}
	if stats == nil {
		stats = []domain.PageStats{}
	}

	return jsonResponse(http.StatusOK, H{"stats": stats})
}
