package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"site_functions/internal/service"
)

const msgNoImage = "No image provided"

type Upload struct {
	base
	loadConfig ConfigLoader
	open       UploadOpener
}

func NewUpload(loadConfig ConfigLoader, open UploadOpener, logger *slog.Logger) *Upload {
	return &Upload{
		base:       base{logger: logger.With("handler", "upload")},
		loadConfig: loadConfig,
		open:       open,
	}
}

// Handle stores a base64 image and returns its CDN URL. Every failure after
// input validation is reported as a 500 carrying the error text.
func (h *Upload) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	method := methodOf(req, http.MethodPost)
	if method == http.MethodOptions {
		return preflight("POST, OPTIONS", "Content-Type, X-User-Id, X-Auth-Token"), nil
	}
	if method != http.MethodPost {
		return errorResponse(http.StatusMethodNotAllowed, msgMethodNotAllowed), nil
	}

	if strings.TrimSpace(req.Body) == "" {
		return errorResponse(http.StatusBadRequest, msgNoImage), nil
	}

	var body uploadRequest
	if err := decodeBody(req, &body); err != nil {
		return errorResponse(http.StatusBadRequest, msgInvalidBody), nil
	}
	if err := validate.Struct(body); err != nil {
		return errorResponse(http.StatusBadRequest, msgNoImage), nil
	}

	filename := service.DefaultFilename
	if body.Filename != nil {
		filename = *body.Filename
	}

	cfg, err := h.loadConfig()
	if err != nil {
		return h.fail(err, "load config"), nil
	}

	svc, err := h.open(ctx, cfg)
	if err != nil {
		return h.fail(err, "open storage"), nil
	}

	image, err := svc.Upload(ctx, body.Image, filename)
	if err != nil {
		return h.fail(err, "upload image", "filename", filename), nil
	}

	return jsonResponse(http.StatusOK, H{
		"url":      image.URL,
		"filename": image.Key,
	}), nil
}
