package httpserver

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/pscheid92/sentimentapi/internal/domain"
	"github.com/pscheid92/sentimentapi/internal/platform/config"
)

const (
	testAccept = "application/vnd.premier.v1.hal+json"
	testSecret = "test-access-secret"
)

// --- Mock implementations ---

type mockAnalysisService struct {
	analyzeFn func(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisResponse, error)
	calls     atomic.Int32
}

func (m *mockAnalysisService) Analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisResponse, error) {
	m.calls.Add(1)
	if m.analyzeFn != nil {
		return m.analyzeFn(ctx, req)
	}
	return nil, errors.New("not implemented")
}

type mockGateRecorder struct {
	kinds []string
}

func (m *mockGateRecorder) ObserveGateRejection(kind string) {
	m.kinds = append(m.kinds, kind)
}

// countingScorer scores by exact text lookup and counts invocations.
type countingScorer struct {
	scores map[string]domain.Score
	err    error
	calls  atomic.Int32
}

func (s *countingScorer) Score(_ context.Context, text string) (domain.Score, error) {
	s.calls.Add(1)
	if s.err != nil {
		return domain.Score{}, s.err
	}
	return s.scores[text], nil
}

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:             "test",
		Port:               "0",
		TextAccessSecret:   testSecret,
		AcceptMediaType:    testAccept,
		ScoringConcurrency: 2,
		MaxBodySize:        "1K",
	}
}

type testServerOptions struct {
	recorder     gateRecorder
	registry     *prometheus.Registry
	healthChecks []HealthCheck
	clock        clockwork.Clock
}

func withGateRecorder(r gateRecorder) func(*testServerOptions) {
	return func(o *testServerOptions) { o.recorder = r }
}

func withRegistry(reg *prometheus.Registry) func(*testServerOptions) {
	return func(o *testServerOptions) { o.registry = reg }
}

func withHealthChecks(checks ...HealthCheck) func(*testServerOptions) {
	return func(o *testServerOptions) { o.healthChecks = checks }
}

func withClock(clock clockwork.Clock) func(*testServerOptions) {
	return func(o *testServerOptions) { o.clock = clock }
}

func newTestServer(t *testing.T, analysis analysisService, opts ...func(*testServerOptions)) *Server {
	t.Helper()

	o := &testServerOptions{clock: clockwork.NewFakeClock()}
	for _, opt := range opts {
		opt(o)
	}

	return NewServer(testConfig(), analysis, o.recorder, o.registry, o.healthChecks, o.clock)
}

// newAnalyzeRequest builds a request that passes every header check.
func newAnalyzeRequest(query, body string) *http.Request {
	target := "/analyze-sentiment"
	if query != "" {
		target += "?" + query
	}
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(http.MethodPost, target, reader)
	req.Header.Set("Accept", testAccept)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}
