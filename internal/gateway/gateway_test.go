package gateway

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestToProxyRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/engagement?action=like&article_id=7&article_id=8", strings.NewReader(`{"a":1}`))
	r.Header.Set("User-Agent", "curl/8.0")
	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")

	req, err := ToProxyRequest(r)
	require.NoError(t, err)

	assert.Equal(t, "POST", req.HTTPMethod)
	assert.Equal(t, "/engagement", req.Path)
	assert.Equal(t, "like", req.QueryStringParameters["action"])
	assert.Equal(t, "7", req.QueryStringParameters["article_id"])
	assert.Equal(t, "curl/8.0", req.Headers["user-agent"])
	assert.Equal(t, `{"a":1}`, req.Body)
	assert.Equal(t, "203.0.113.9", req.RequestContext.Identity.SourceIP)
}

func TestToProxyRequest_RemoteAddr(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/analytics", nil)
	r.RemoteAddr = "192.0.2.1:51000"

	req, err := ToProxyRequest(r)
	require.NoError(t, err)
	assert.Equal(t, "192.0.2.1", req.RequestContext.Identity.SourceIP)
	assert.Empty(t, req.Body)
}

func TestRouter_ServesHandler(t *testing.T) {
	var got events.APIGatewayProxyRequest
	h := func(_ context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		got = req
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusCreated,
			Headers:    map[string]string{"Content-Type": "application/json", "Access-Control-Allow-Origin": "*"},
			Body:       `{"success":true}`,
		}, nil
	}

	router := NewRouter(testLogger(), Route{Path: "/analytics", Handler: h})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/analytics?page_path=/", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	assert.Equal(t, "/", got.QueryStringParameters["page_path"])
}

func TestRouter_UnknownPath(t *testing.T) {
	router := NewRouter(testLogger())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdapt_HandlerError(t *testing.T) {
	h := func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return events.APIGatewayProxyResponse{}, errors.New("boom")
	}

	rec := httptest.NewRecorder()
	Adapt(h, testLogger()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWriteProxyResponse_Base64(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteProxyResponse(rec, events.APIGatewayProxyResponse{
		StatusCode:      http.StatusOK,
		Body:            "aGVsbG8=",
		IsBase64Encoded: true,
	})
	assert.Equal(t, "hello", rec.Body.String())
}
