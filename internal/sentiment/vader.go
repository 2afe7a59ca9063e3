package sentiment

import (
	"context"

	"github.com/jonreiter/govader"
	"github.com/pscheid92/sentimentapi/internal/domain"
)

// VaderScorer scores text locally with the VADER lexicon.
//
// Polarity is the VADER compound score. Subjectivity is the share of the text
// carrying positive or negative valence (pos + neg), so purely factual text scores 0.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (s *VaderScorer) Score(ctx context.Context, text string) (domain.Score, error) {
	if err := ctx.Err(); err != nil {
		return domain.Score{}, err
	}
	if s == nil || s.analyzer == nil {
		return domain.Score{}, domain.ErrScoringUnavailable
	}

	sentiment := s.analyzer.PolarityScores(text)
	return domain.Score{
		Polarity:     sentiment.Compound,
		Subjectivity: sentiment.Positive + sentiment.Negative,
	}, nil
}

// Probe runs a trivial scoring pass; used by readiness checks.
func (s *VaderScorer) Probe(ctx context.Context) error {
	_, err := s.Score(ctx, "ok")
	return err
}
