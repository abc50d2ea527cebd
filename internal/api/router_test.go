package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ManuGH/lookupbot/internal/health"
)

func newTestRouter(hits *int) http.Handler {
	return NewRouter(Deps{
		WebhookToken: "123:abc",
		Webhook: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			*hits++
			w.WriteHeader(http.StatusOK)
		}),
		Health: health.NewManager("test"),
	})
}

func TestRouter_WebhookRequiresToken(t *testing.T) {
	hits := 0
	r := newTestRouter(&hits)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/123:abc", strings.NewReader("{}")))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, hits)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/wrong", strings.NewReader("{}")))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 1, hits)
}

func TestRouter_Probes(t *testing.T) {
	hits := 0
	r := newTestRouter(&hits)

	for _, path := range []string{"/healthz", "/readyz"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"), path)
	}
}

func TestRouter_Metrics(t *testing.T) {
	hits := 0
	r := newTestRouter(&hits)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "lookupbot_http_requests_in_flight")
}

func TestRouter_NoWebhookWithoutToken(t *testing.T) {
	r := NewRouter(Deps{Health: health.NewManager("test")})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/anything", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
