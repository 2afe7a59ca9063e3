package httpserver

import (
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pscheid92/sentimentapi/internal/domain"
	apperrors "github.com/pscheid92/sentimentapi/internal/platform/errors"
)

const defaultThreshold = 0.0

func (s *Server) registerAnalysisRoutes() {
	// Header checks come first; the body limit only applies to requests that pass them.
	s.echo.POST("/analyze-sentiment", s.handleAnalyzeSentiment, s.gateMiddleware, middleware.BodyLimit(s.config.MaxBodySize))
}

func (s *Server) handleAnalyzeSentiment(c echo.Context) error {
	ctx := c.Request().Context()

	includeText := c.QueryParam("password") == s.config.TextAccessSecret

	rawThreshold := c.QueryParam("threshold")
	threshold, err := parseThreshold(rawThreshold)
	if err != nil {
		return apperrors.New(apperrors.KindInvalidThreshold).WithField("threshold", rawThreshold)
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}

	items, ok := decodeItems(body)
	if !ok {
		return apperrors.New(apperrors.KindNoTextGiven)
	}

	resp, err := s.analysis.Analyze(ctx, domain.AnalysisRequest{
		Threshold:   threshold,
		IncludeText: includeText,
		Items:       items,
	})
	if err != nil {
		return analysisError(err)
	}

	out, err := encodeResults(resp)
	if err != nil {
		return apperrors.InternalError("failed to encode response", err)
	}
	if err := c.Blob(http.StatusCreated, echo.MIMEApplicationJSON, out); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

// parseThreshold returns the default for an absent or empty value and rejects
// anything that is not a finite float.
func parseThreshold(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultThreshold, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse threshold: %w", err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("threshold %q is not finite", raw)
	}
	return v, nil
}

func analysisError(err error) error {
	var inadmissible *domain.InadmissibleTextError
	switch {
	case errors.As(err, &inadmissible):
		return apperrors.InvalidCharactersError(inadmissible.ID)
	case errors.Is(err, domain.ErrNoItems):
		return apperrors.New(apperrors.KindNoTextGiven)
	case errors.Is(err, domain.ErrScoringUnavailable):
		return apperrors.ScoringUnavailableError(err)
	default:
		return apperrors.InternalError("failed to analyze batch", err)
	}
}
