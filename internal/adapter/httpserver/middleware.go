package httpserver

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/sentimentapi/internal/platform/correlation"
	apperrors "github.com/pscheid92/sentimentapi/internal/platform/errors"
)

func correlationMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := correlation.FromInbound(c.Request().Header.Get(correlation.Header))
		c.Response().Header().Set(correlation.Header, id)
		ctx := correlation.WithID(c.Request().Context(), id)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// noCacheMiddleware marks every response, errors included, as not cacheable.
func noCacheMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")
		return next(c)
	}
}

func ErrorHandlingMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}
			return HandleError(c, err)
		}
	}
}

// handleHTTPError is the echo fallback for errors that escape the middleware chain.
func (s *Server) handleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		slog.ErrorContext(c.Request().Context(), "Error after response was committed", "path", c.Request().URL.Path, "error", err)
		return
	}
	if err := HandleError(c, err); err != nil {
		slog.ErrorContext(c.Request().Context(), "Failed to write error response", "error", err)
	}
}

// HandleError logs err and writes it as {"error": "..."} with the status of its kind.
func HandleError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	var structuredErr *apperrors.Error
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && !errors.As(err, &structuredErr) {
		structuredErr = WrapHTTPError(httpErr)
	} else {
		structuredErr = apperrors.AsStructuredError(err)
	}

	logError(c, structuredErr)

	if c.Response().Committed {
		return nil
	}
	if err := c.JSON(structuredErr.HTTPStatus(), structuredErr.ToResponse()); err != nil {
		return fmt.Errorf("failed to write error response: %w", err)
	}
	return nil
}

func logError(c echo.Context, err *apperrors.Error) {
	attrs := []any{
		"error_kind", err.Kind,
		"message", err.Message,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"status", err.HTTPStatus(),
	}

	for k, v := range err.Context {
		attrs = append(attrs, k, v)
	}

	ctx := c.Request().Context()
	if err.ClientError() {
		slog.InfoContext(ctx, "Request rejected", attrs...)
		return
	}
	if err.Cause != nil {
		attrs = append(attrs, "cause", err.Cause)
	}
	slog.ErrorContext(ctx, "Request failed", attrs...)
}

// WrapHTTPError converts router and middleware errors (404, 405, 413, panics) into
// structured errors. The client-visible message is always the kind's fixed message.
func WrapHTTPError(httpErr *echo.HTTPError) *apperrors.Error {
	err := apperrors.New(apperrors.KindForStatus(httpErr.Code))
	if httpErr.Internal != nil {
		err.Cause = httpErr.Internal
	} else if err.Kind == apperrors.KindInternal {
		err.Cause = httpErr
	}
	return err
}
