package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticHealth bool

func (h staticHealth) Healthy(context.Context) bool {
	return bool(h)
}

func testConfig() *Config {
	return &Config{Port: "0", CorsOrigins: []string{"*"}, RequestTimeout: time.Second}
}

func serve(s *Server, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("CORS_ORIGINS", "https://a.example.org, https://b.example.org")
	t.Setenv("USE_HTTP2", "true")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, defaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, []string{"https://a.example.org", "https://b.example.org"}, cfg.CorsOrigins)
	assert.True(t, cfg.UseHttp2)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"port not a number", "PORT", "http"},
		{"port out of range", "PORT", "70000"},
		{"bad timeout", "REQUEST_TIMEOUT", "soon"},
		{"zero timeout", "REQUEST_TIMEOUT", "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", "")
			t.Setenv("REQUEST_TIMEOUT", "")
			t.Setenv(tt.key, tt.val)

			_, err := LoadConfig()

			var cfgErr *apperr.ConfigurationError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestHealthCheck(t *testing.T) {
	healthy := New(testConfig(), staticHealth(true)).SetupHealthChecks("/health")
	rec := serve(healthy, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	down := New(testConfig(), staticHealth(false)).SetupHealthChecks("/health")
	rec = serve(down, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"unavailable"}`, rec.Body.String())
}

func TestErrorsCarryRequestID(t *testing.T) {
	s := New(testConfig(), staticHealth(true)).
		SetupMiddlewares().
		SetupErrorHandler()
	s.Echo.GET("/missing-theme", func(c echo.Context) error {
		return apperr.ErrThemeNotFound
	})

	rec := serve(s, "/missing-theme")

	require.Equal(t, http.StatusNotFound, rec.Code)
	requestID := rec.Header().Get(echo.HeaderXRequestID)
	require.NotEmpty(t, requestID)

	var body apperr.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Theme not found.", body.Detail)
	assert.Equal(t, requestID, body.RequestID)
}

func TestRequestTimeoutCancelsHandlerContext(t *testing.T) {
	cfg := testConfig()
	cfg.RequestTimeout = 20 * time.Millisecond
	s := New(cfg, staticHealth(true)).
		SetupMiddlewares().
		SetupErrorHandler()
	s.Echo.GET("/slow", func(c echo.Context) error {
		<-c.Request().Context().Done()
		return c.Request().Context().Err()
	})

	rec := serve(s, "/slow")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestIsQuiet(t *testing.T) {
	s := New(testConfig(), staticHealth(true)).
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	for path, want := range map[string]bool{
		"/health":             true,
		"/swagger/index.html": true,
		"/gazettes":           false,
		"/healthz":            false,
	} {
		c := s.Echo.NewContext(httptest.NewRequest(http.MethodGet, path, nil), httptest.NewRecorder())
		assert.Equal(t, want, s.isQuiet(c), path)
	}
}
