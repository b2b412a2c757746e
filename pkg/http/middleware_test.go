package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/models"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCommonMiddlewareAllowsConfiguredOrigin(t *testing.T) {
	handler := CommonMiddleware(okHandler(), models.CORSConfig{
		AllowedOrigins: []string{"https://dashboard.example.com"},
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://dashboard.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCommonMiddlewareRejectsUnknownOrigin(t *testing.T) {
	handler := CommonMiddleware(okHandler(), models.CORSConfig{
		AllowedOrigins: []string{"https://dashboard.example.com"},
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example.com")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCommonMiddlewareWildcardOrigin(t *testing.T) {
	handler := CommonMiddleware(okHandler(), models.CORSConfig{
		AllowedOrigins: []string{"*"},
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://anywhere.example.com")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCommonMiddlewareAnswersPreflight(t *testing.T) {
	nextCalled := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		nextCalled = true
	})

	handler := CommonMiddleware(next, models.CORSConfig{AllowedOrigins: []string{"*"}})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/telemetry", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, nextCalled)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestAPIKeyMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		header     string
		query      string
		wantStatus int
	}{
		{
			name:       "empty configured key disables the check",
			configured: "",
			wantStatus: http.StatusOK,
		},
		{
			name:       "matching header key",
			configured: "secret",
			header:     "secret",
			wantStatus: http.StatusOK,
		},
		{
			name:       "matching query key",
			configured: "secret",
			query:      "secret",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing key",
			configured: "secret",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong key",
			configured: "secret",
			header:     "guess",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := APIKeyMiddleware(tt.configured)(okHandler())

			target := "/api/devices"
			if tt.query != "" {
				target += "?api_key=" + tt.query
			}

			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.header != "" {
				req.Header.Set("X-API-Key", tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
