package httpserver

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/sentimentapi/internal/platform/config"
	apperrors "github.com/pscheid92/sentimentapi/internal/platform/errors"
)

// HeaderCheck inspects request headers and returns nil to pass or a terminal error.
type HeaderCheck func(h http.Header) *apperrors.Error

// legacyEncodings are rejected outright even though other unknown encodings are tolerated.
var legacyEncodings = []string{"compress", "x-compress"}

// NewRequestGate returns the header checks for the analysis endpoint in evaluation order:
// Accept, Accept-Encoding, Content-Type.
func NewRequestGate(acceptMediaType string) []HeaderCheck {
	return []HeaderCheck{
		RequireAccept(acceptMediaType),
		RejectLegacyEncodings(config.SupportedEncodings),
		RequireContentType(config.ContentType),
	}
}

// RunGate applies checks in order and returns the first failure.
func RunGate(checks []HeaderCheck, h http.Header) *apperrors.Error {
	for _, check := range checks {
		if err := check(h); err != nil {
			return err
		}
	}
	return nil
}

// RequireAccept matches the Accept header byte for byte; no wildcards or q-values.
func RequireAccept(expected string) HeaderCheck {
	return func(h http.Header) *apperrors.Error {
		if got := h.Get(echo.HeaderAccept); got != expected {
			return apperrors.New(apperrors.KindUnacceptableMediaType).WithField("accept", got)
		}
		return nil
	}
}

// RejectLegacyEncodings fails when an Accept-Encoding token outside supported is
// compress or x-compress. Other unsupported tokens pass.
func RejectLegacyEncodings(supported []string) HeaderCheck {
	return func(h http.Header) *apperrors.Error {
		raw := strings.Join(h.Values(echo.HeaderAcceptEncoding), ",")
		for _, token := range strings.Split(raw, ",") {
			token = strings.TrimSpace(token)
			if slices.Contains(supported, token) {
				continue
			}
			if slices.Contains(legacyEncodings, token) {
				return apperrors.New(apperrors.KindUnacceptableEncoding).WithField("accept_encoding", raw)
			}
		}
		return nil
	}
}

// RequireContentType matches the Content-Type header exactly; parameters such as charset fail.
func RequireContentType(expected string) HeaderCheck {
	return func(h http.Header) *apperrors.Error {
		if got := h.Get(echo.HeaderContentType); got != expected {
			return apperrors.New(apperrors.KindUnsupportedMediaType).WithField("content_type", got)
		}
		return nil
	}
}

func (s *Server) gateMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := RunGate(s.gateChecks, c.Request().Header); err != nil {
			slog.DebugContext(c.Request().Context(), "Request failed header check", "kind", err.Kind)
			s.gateRecorder.ObserveGateRejection(string(err.Kind))
			return err
		}
		return next(c)
	}
}
