// Package middleware contains the echo middleware and error handler of the HTTP delivery.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "clientaccount/internal/delivery/context"
	"clientaccount/internal/delivery/http/response"
	domainerrors "clientaccount/internal/domain/errors"
	"clientaccount/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
		}
		m.write(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprint(httpErr.Message)
		m.write(c, httpErr.Code, "HTTP_ERROR", message, message)

		return
	}

	m.logUnhandled(c, err)
	m.write(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", "")
}

func (m *ErrorMiddleware) write(c echo.Context, status int, code, message, details string) {
	if err := response.Error(c, status, code, message, details); err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error) {
	ctx := c.Request().Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).ErrorContext(ctx, "Unhandled error",
		slog.String("error", fmt.Sprintf("%+v", err)),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
