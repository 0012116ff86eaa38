package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"site_functions/internal/config"
)

type closerSpy struct {
	closed int
}

func (c *closerSpy) Close() error {
	c.closed++
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func staticConfig(dsn string) ConfigLoader {
	return func() (*config.Config, error) {
		return &config.Config{
			Database: config.DatabaseConfig{URL: dsn},
			Storage: config.StorageConfig{
				AccessKeyID:     "key-id",
				SecretAccessKey: "secret",
				CDNBaseURL:      "https://cdn.example.com/projects",
			},
		}, nil
	}
}

func decode(t *testing.T, resp events.APIGatewayProxyResponse) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	return body
}

func assertCORS(t *testing.T, resp events.APIGatewayProxyResponse) {
	t.Helper()
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
	assert.False(t, resp.IsBase64Encoded)
}

func TestPreflight_AllHandlers(t *testing.T) {
	ctx := context.Background()
	req := events.APIGatewayProxyRequest{HTTPMethod: "OPTIONS"}

	noOpenAnalytics := func(context.Context, *config.Config) (AnalyticsService, io.Closer, error) {
		t.Fatal("preflight must not open resources")
		return nil, nil, nil
	}
	noOpenEngagement := func(context.Context, *config.Config) (EngagementService, io.Closer, error) {
		t.Fatal("preflight must not open resources")
		return nil, nil, nil
	}
	noOpenUpload := func(context.Context, *config.Config) (UploadService, error) {
		t.Fatal("preflight must not open resources")
		return nil, nil
	}

	cases := []struct {
		name    string
		handle  func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)
		methods string
	}{
		{"analytics", NewAnalytics(staticConfig(""), noOpenAnalytics, testLogger()).Handle, "GET, POST, OPTIONS"},
		{"engagement", NewEngagement(staticConfig(""), noOpenEngagement, testLogger()).Handle, "GET, POST, DELETE, OPTIONS"},
		{"upload", NewUpload(staticConfig(""), noOpenUpload, testLogger()).Handle, "POST, OPTIONS"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := tc.handle(ctx, req)
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
			assert.Empty(t, resp.Body)
			assertCORS(t, resp)
			assert.Equal(t, tc.methods, resp.Headers["Access-Control-Allow-Methods"])
			assert.Equal(t, "86400", resp.Headers["Access-Control-Max-Age"])
			assert.NotEmpty(t, resp.Headers["Access-Control-Allow-Headers"])
		})
	}
}

func TestDecodeBody(t *testing.T) {
	var body likeRequest

	require.NoError(t, decodeBody(events.APIGatewayProxyRequest{}, &body))
	assert.Zero(t, body.ArticleID)

	req := events.APIGatewayProxyRequest{
		Body:            "eyJhcnRpY2xlX2lkIjozfQ==",
		IsBase64Encoded: true,
	}
	require.NoError(t, decodeBody(req, &body))
	assert.Equal(t, int64(3), body.ArticleID)

	assert.Error(t, decodeBody(events.APIGatewayProxyRequest{Body: "{"}, &body))
}

func TestHeader_CaseInsensitive(t *testing.T) {
	req := events.APIGatewayProxyRequest{Headers: map[string]string{"user-agent": "curl/8.0"}}
	assert.Equal(t, "curl/8.0", header(req, "User-Agent"))
	assert.Empty(t, header(req, "X-Missing"))
}

func TestValidation_NotBlank(t *testing.T) {
	assert.NotPanics(t, func() { newValidator() })
	assert.Error(t, validate.Struct(commentRequest{ArticleID: 1}))
	assert.Error(t, validate.Struct(commentRequest{ArticleID: 1, Content: "   \n"}))
	assert.Error(t, validate.Struct(commentRequest{Content: "hi"}))
	assert.NoError(t, validate.Struct(commentRequest{ArticleID: 1, Content: "hi"}))
}
