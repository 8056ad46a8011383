package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Detail    string `json:"detail"`
	RequestID string `json:"request_id,omitempty"`
}

// StatusOf maps an error kind to the HTTP status it surfaces as, with a user-safe message.
func StatusOf(err error) (int, string) {
	var (
		ve      *ValidationError
		nfe     *NotFoundError
		ine     *IndexNotFoundError
		bue     *BackendUnavailableError
		be      *BackendError
		che     *CorruptHitError
		bindErr *echo.BindingError
		he      *echo.HTTPError
	)

	switch {
	case errors.As(err, &ve):
		return http.StatusUnprocessableEntity, ve.Message
	case errors.As(err, &bindErr):
		return http.StatusUnprocessableEntity, fmt.Sprintf("invalid value for query parameter %q", bindErr.Field)
	case errors.As(err, &nfe):
		return http.StatusNotFound, nfe.Message
	case errors.As(err, &ine):
		return http.StatusInternalServerError, "search index is not available"
	case errors.As(err, &bue):
		return http.StatusServiceUnavailable, "upstream service unavailable"
	case errors.As(err, &be):
		return http.StatusBadGateway, "upstream service error"
	case errors.As(err, &che):
		return http.StatusInternalServerError, "could not read search results"
	case errors.As(err, &he):
		return he.Code, fmt.Sprintf("%v", he.Message)
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, msg := StatusOf(err)
		requestID := c.Response().Header().Get(echo.HeaderXRequestID)

		if status >= http.StatusInternalServerError {
			slog.Error("Request failed", "error", err, "status", status, "request_id", requestID)
		} else {
			slog.Debug("Request rejected", "error", err, "status", status, "request_id", requestID)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, ErrorResponse{Detail: msg, RequestID: requestID})
	}
}
