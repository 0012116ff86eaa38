// Package handler turns API Gateway proxy events into calls on the analytics,
// engagement and upload services and renders their JSON envelopes.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"site_functions/internal/config"
)

// H is a shorthand for JSON response bodies.
type H map[string]any

type ConfigLoader func() (*config.Config, error)

type AnalyticsOpener func(ctx context.Context, cfg *config.Config) (AnalyticsService, io.Closer, error)

type EngagementOpener func(ctx context.Context, cfg *config.Config) (EngagementService, io.Closer, error)

type UploadOpener func(ctx context.Context, cfg *config.Config) (UploadService, error)

const (
	msgMethodNotAllowed = "Method not allowed"
	msgInvalidBody      = "invalid JSON body"
	msgNoDatabase       = "DATABASE_URL not configured"
)

type base struct {
	logger *slog.Logger
}

func (b base) fail(err error, msg string, attrs ...any) events.APIGatewayProxyResponse {
	b.logger.Error(msg, append(attrs, "error", err)...)
	return errorResponse(http.StatusInternalServerError, err.Error())
}

func (b base) release(c io.Closer) {
	if err := c.Close(); err != nil {
		b.logger.Warn("close resources", "error", err)
	}
}

func preflight(methods, headers string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Access-Control-Allow-Origin":  "*",
			"Access-Control-Allow-Methods": methods,
			"Access-Control-Allow-Headers": headers,
			"Access-Control-Max-Age":       "86400",
		},
		Body:            "",
		IsBase64Encoded: false,
	}
}

func jsonResponse(status int, body any) events.APIGatewayProxyResponse {
	data, err := json.Marshal(body)
	if err != nil {
		status = http.StatusInternalServerError
		data, _ = json.Marshal(H{"error": err.Error()})
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body:            string(data),
		IsBase64Encoded: false,
	}
}

func errorResponse(status int, msg string) events.APIGatewayProxyResponse {
	return jsonResponse(status, H{"error": msg})
}

func methodOf(req events.APIGatewayProxyRequest, fallback string) string {
	if req.HTTPMethod == "" {
		return fallback
	}
	return strings.ToUpper(req.HTTPMethod)
}

func rawBody(req events.APIGatewayProxyRequest) (string, error) {
	if !req.IsBase64Encoded {
		return req.Body, nil
	}
	data, err := base64.StdEncoding.DecodeString(req.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decodeBody unmarshals the request body into v. An empty body leaves v untouched.
func decodeBody(req events.APIGatewayProxyRequest, v any) error {
	body, err := rawBody(req)
	if err != nil {
		return err
	}
	if strings.TrimSpace(body) == "" {
		return nil
	}
	return json.Unmarshal([]byte(body), v)
}

func header(req events.APIGatewayProxyRequest, name string) string {
	for k, v := range req.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

func query(req events.APIGatewayProxyRequest, name string) string {
	return req.QueryStringParameters[name]
}
