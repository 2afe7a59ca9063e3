package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/sentimentapi/internal/domain"
	"github.com/pscheid92/sentimentapi/internal/sentiment"
	"golang.org/x/sync/errgroup"
)

// Classifier labels a single text against a threshold.
type Classifier interface {
	Classify(ctx context.Context, text string, threshold float64) (domain.Classification, error)
}

// Recorder receives per-batch and per-item observations. Implementations must be
// safe for concurrent use.
type Recorder interface {
	ObserveBatch(size int)
	ObserveClassification(label domain.Label, elapsed time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) ObserveBatch(int)                                  {}
func (noopRecorder) ObserveClassification(domain.Label, time.Duration) {}

// Service runs sentiment analysis batches. It holds no per-request state and is
// safe for concurrent use.
type Service struct {
	classifier  Classifier
	recorder    Recorder
	clock       clockwork.Clock
	concurrency int
}

// NewService creates the analysis service. recorder may be nil.
// concurrency bounds how many items of one batch are scored at once; values below 1 mean sequential.
func NewService(classifier Classifier, recorder Recorder, clock clockwork.Clock, concurrency int) *Service {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &Service{
		classifier:  classifier,
		recorder:    recorder,
		clock:       clock,
		concurrency: concurrency,
	}
}

// Analyze classifies every item of req and returns results in request order.
//
// All items are checked for admissibility before any scoring starts; the first
// inadmissible item in request order fails the batch with *domain.InadmissibleTextError.
// A scoring failure on any item fails the whole batch. No partial results are returned.
func (s *Service) Analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisResponse, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrNoItems
	}

	for _, item := range req.Items {
		if !item.Valid || !sentiment.Admissible(item.Text) {
			return nil, &domain.InadmissibleTextError{ID: item.ID}
		}
	}

	s.recorder.ObserveBatch(len(req.Items))

	results := make([]domain.AnalysisResult, len(req.Items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, item := range req.Items {
		i, item := i, item
		g.Go(func() error {
			start := s.clock.Now()
			classification, err := s.classifier.Classify(gctx, item.Text, req.Threshold)
			if err != nil {
				return fmt.Errorf("classify item %q: %w", item.ID, err)
			}
			s.recorder.ObserveClassification(classification.Sentiment, s.clock.Since(start))

			result := domain.AnalysisResult{ID: item.ID, Classification: classification}
			if req.IncludeText {
				text := item.Text
				result.Text = &text
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "Batch analyzed", "items", len(results), "threshold", req.Threshold, "include_text", req.IncludeText)
	return &domain.AnalysisResponse{Results: results}, nil
}
