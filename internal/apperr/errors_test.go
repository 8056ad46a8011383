package apperr_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("field is required")

	if err.Error() != "field is required" {
		t.Errorf("expected 'field is required', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("parse failed")
	err := apperr.NewValidationWrap("invalid date", inner)

	if err.Error() != "invalid date: parse failed" {
		t.Errorf("expected 'invalid date: parse failed', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("territory id must have 7 digits")

	wrapped := fmt.Errorf("failed to parse: %w", original)
	doubleWrapped := fmt.Errorf("access error: %w", wrapped)

	var ve *apperr.ValidationError
	if !errors.As(doubleWrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through double wrapping")
	}
	if ve.Message != "territory id must have 7 digits" {
		t.Errorf("unexpected message %q", ve.Message)
	}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{"validation", apperr.NewValidation("bad date"), http.StatusUnprocessableEntity, "bad date"},
		{"binding", echo.NewBindingError("size", []string{"x"}, "failed to bind", nil), http.StatusUnprocessableEntity, `invalid value for query parameter "size"`},
		{"theme not found", fmt.Errorf("resolve: %w", apperr.ErrThemeNotFound), http.StatusNotFound, "Theme not found."},
		{"index not found", &apperr.IndexNotFoundError{Index: "gazettes"}, http.StatusInternalServerError, "search index is not available"},
		{"unavailable", &apperr.BackendUnavailableError{Backend: "elasticsearch", Err: context.DeadlineExceeded}, http.StatusServiceUnavailable, "upstream service unavailable"},
		{"backend error", &apperr.BackendError{Backend: "elasticsearch", Status: 400, Reason: "parsing_exception"}, http.StatusBadGateway, "upstream service error"},
		{"corrupt hit", &apperr.CorruptHitError{ID: "x", Err: errors.New("bad date")}, http.StatusInternalServerError, "could not read search results"},
		{"echo http error", echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"), http.StatusMethodNotAllowed, "method not allowed"},
		{"plain", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, detail := apperr.StatusOf(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.detail, detail)
		})
	}
}

func TestStatusOf_DoesNotLeakBackendInternals(t *testing.T) {
	err := &apperr.BackendError{Backend: "elasticsearch", Status: 500, Reason: "shard [3] failed at node 10.0.0.4"}

	_, detail := apperr.StatusOf(err)

	assert.NotContains(t, detail, "10.0.0.4")
}

func TestGlobalErrorHandler(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()

	req := httptest.NewRequest(http.MethodGet, "/gazettes/by_theme/nonexistent", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Response().Header().Set(echo.HeaderXRequestID, "req-1")

	e.HTTPErrorHandler(apperr.ErrThemeNotFound, c)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body apperr.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Theme not found.", body.Detail)
	assert.Equal(t, "req-1", body.RequestID)
}

func TestConfigurationError(t *testing.T) {
	inner := errors.New("open themes.json: no such file")
	err := apperr.NewConfigurationWrap("failed to load themes", inner)

	assert.Equal(t, "configuration error: failed to load themes: open themes.json: no such file", err.Error())
	assert.ErrorIs(t, err, inner)
}
