package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"brocki-scanner-go/internal/fetcher"
	"brocki-scanner-go/internal/model"
	"brocki-scanner-go/internal/service"
)

func newTestRouter(maxBody int64) http.Handler {
	logger := zap.NewNop()
	analyze := NewAnalyzeHandler(service.NewAnalyzeService(fetcher.NewStubRecognizer(), logger), logger)
	search := NewSearchHandler(service.NewSearchService(fetcher.NewStubListingSources(), logger), logger)
	return NewRouter(analyze, search, RouterOptions{MaxBodyBytes: maxBody, Logger: logger})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeMap(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &m), rr.Body.String())
	return m
}

func TestHealth(t *testing.T) {
	h := newTestRouter(1 << 20)

	for _, path := range []string{"/", "/health"} {
		rr := do(t, h, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "OK", decodeMap(t, rr)["status"])
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	}

	rr := do(t, h, http.MethodGet, "/health", `{"ignored":true}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", decodeMap(t, rr)["status"])
}

func TestAnalyzeInvalidJSON(t *testing.T) {
	h := newTestRouter(1 << 20)

	for _, body := range []string{`{`, `{"image":}`, `not json`, `{"a":1}}`, `'single'`} {
		rr := do(t, h, http.MethodPost, "/analyze", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
		assert.Equal(t, "Invalid JSON", decodeMap(t, rr)["error"], body)
	}
}

func TestAnalyzeValidJSON(t *testing.T) {
	h := newTestRouter(1 << 20)

	bodies := []string{
		`{"image":"data:image/png;base64,iVBORw0KGgo=","query":""}`,
		`{"query":"lamp"}`,
		`{"image":42}`,
		`{}`,
		``,
		`[1,2,3]`,
		`null`,
	}
	for _, body := range bodies {
		rr := do(t, h, http.MethodPost, "/analyze", body)
		require.Equal(t, http.StatusOK, rr.Code, body)

		resp := decodeMap(t, rr)
		assert.Equal(t, true, resp["success"])
		data, ok := resp["data"].(map[string]interface{})
		require.True(t, ok, body)
		assert.Equal(t, 0.87, data["confidence"])
	}
}

func TestAnalyzeDetected(t *testing.T) {
	h := newTestRouter(1 << 20)

	testCases := []struct {
		body     string
		detected string
		manual   bool
	}{
		{`{"image":"iVBORw0KGgo="}`, fetcher.StubDetected, false},
		{`{"image":"iVBORw0KGgo=","query":""}`, fetcher.StubDetected, false},
		{`{"query":7}`, fetcher.StubDetected, false},
		{`{"query":"lamp"}`, "lamp", true},
		{`{"image":"iVBORw0KGgo=","query":"Vintage chair"}`, "Vintage chair", true},
	}

	for _, tc := range testCases {
		rr := do(t, h, http.MethodPost, "/analyze", tc.body)
		require.Equal(t, http.StatusOK, rr.Code, tc.body)

		data, ok := decodeMap(t, rr)["data"].(map[string]interface{})
		require.True(t, ok, tc.body)
		assert.Equal(t, tc.detected, data["detected"], tc.body)
		assert.Equal(t, tc.detected, data["search_query"], tc.body)
		if tc.manual {
			assert.Equal(t, true, data["manual"], tc.body)
		} else {
			assert.NotContains(t, data, "manual", tc.body)
		}
	}
}

type brokenRecognizer struct{}

func (brokenRecognizer) Recognize(ctx context.Context, req model.AnalyzeRequest) (*model.Detection, error) {
	return nil, errors.New("model loading")
}

func TestAnalyzeServerError(t *testing.T) {
	logger := zap.NewNop()
	analyze := NewAnalyzeHandler(service.NewAnalyzeService(brokenRecognizer{}, logger), logger)
	search := NewSearchHandler(service.NewSearchService(fetcher.NewStubListingSources(), logger), logger)
	h := NewRouter(analyze, search, RouterOptions{MaxBodyBytes: 1 << 20, Logger: logger})

	rr := do(t, h, http.MethodPost, "/analyze", `{"image":"iVBORw0KGgo="}`)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	msg, ok := decodeMap(t, rr)["error"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(msg, "Server error: "), msg)
	assert.Contains(t, msg, "model loading")

	// 手动query不经过识别器
	rr = do(t, h, http.MethodPost, "/analyze", `{"query":"lamp"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestSearchEchoesQuery(t *testing.T) {
	h := newTestRouter(1 << 20)

	testCases := []struct {
		path string
		body string
		want string
	}{
		{"/search", `{"query":"shoes"}`, "shoes"},
		{"/search", `{}`, "none"},
		{"/search", `{"query":7}`, "none"},
		{"/api/search", `{"query":"shoes"}`, "shoes"},
		{"/api/search", ``, "none"},
		{"/api/search", `{"query":""}`, "none"},
		{"/search", `{"query":"a<b and c>d"}`, "a<b and c>d"},
		{"/api/search", `{"query":"a<b and c>d"}`, "a<b and c>d"},
		{"/search", `{"query":"  shoes  "}`, "  shoes  "},
		{"/api/search", `{"query":"  shoes  "}`, "  shoes  "},
		{"/api/search", `{"query":"<vintage> chair"}`, "<vintage> chair"},
		{"/search", `{"query":"Nike   Air"}`, "Nike   Air"},
	}

	for _, tc := range testCases {
		rr := do(t, h, http.MethodPost, tc.path, tc.body)
		require.Equal(t, http.StatusOK, rr.Code, tc.body)
		assert.Equal(t, tc.want, decodeMap(t, rr)["query"], "%s %s", tc.path, tc.body)
	}
}

func TestSearchShape(t *testing.T) {
	h := newTestRouter(1 << 20)

	rr := do(t, h, http.MethodPost, "/search", `{"query":"shoes"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeMap(t, rr)
	listings, ok := resp["listings"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, listings, "ricardo")
	assert.Contains(t, listings, "tutti")
	assert.Contains(t, listings, "ebay")

	stats, ok := resp["stats"].(map[string]interface{})
	require.True(t, ok)
	overall, ok := stats["overall"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(5), overall["count"])

	rr = do(t, h, http.MethodPost, "/api/search", `{"query":"shoes"}`)
	resp = decodeMap(t, rr)
	assert.Equal(t, true, resp["success"])
	assert.NotEmpty(t, resp["message"])
}

func TestSearchInvalidJSON(t *testing.T) {
	h := newTestRouter(1 << 20)

	for _, path := range []string{"/search", "/api/search"} {
		rr := do(t, h, http.MethodPost, path, `{"query":`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid JSON", decodeMap(t, rr)["error"])
	}
}

func TestOptionsAnyPath(t *testing.T) {
	h := newTestRouter(1 << 20)

	for _, path := range []string{"/", "/analyze", "/api/search", "/does/not/exist"} {
		rr := do(t, h, http.MethodOptions, path, "")
		assert.Equal(t, http.StatusOK, rr.Code, path)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"), path)
		assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), "POST")
		assert.Equal(t, "OK", rr.Body.String())
	}
}

func TestCORSOnEveryResponse(t *testing.T) {
	h := newTestRouter(1 << 20)

	rr := do(t, h, http.MethodPost, "/analyze", `{`)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))

	rr = do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestIdempotent(t *testing.T) {
	h := newTestRouter(1 << 20)

	requests := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/health", ""},
		{http.MethodPost, "/analyze", `{"image":"abc"}`},
		{http.MethodPost, "/search", `{"query":"shoes"}`},
		{http.MethodPost, "/api/search", `{"query":"shoes"}`},
	}

	for _, r := range requests {
		first := do(t, h, r.method, r.path, r.body)
		second := do(t, h, r.method, r.path, r.body)
		assert.Equal(t, first.Code, second.Code, r.path)
		assert.Equal(t, first.Body.String(), second.Body.String(), r.path)
	}
}

func TestUnknownRoute(t *testing.T) {
	h := newTestRouter(1 << 20)

	rr := do(t, h, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, h, http.MethodGet, "/analyze", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestBodyTooLarge(t *testing.T) {
	h := newTestRouter(32)

	body := `{"image":"` + strings.Repeat("A", 64) + `"}`
	rr := do(t, h, http.MethodPost, "/analyze", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Equal(t, "Request body too large", decodeMap(t, rr)["error"])

	rr = do(t, h, http.MethodPost, "/analyze", `{"query":"ok"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRequestID(t *testing.T) {
	h := newTestRouter(1 << 20)

	rr := do(t, h, http.MethodGet, "/health", "")
	assert.NotEmpty(t, rr.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, "abc-123", rr.Header().Get(RequestIDHeader))
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestRouter(1 << 20)

	do(t, h, http.MethodGet, "/health", "")
	rr := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "brocki_http_requests_total")
}
