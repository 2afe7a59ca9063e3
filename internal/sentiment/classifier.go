package sentiment

import (
	"context"
	"fmt"
	"math"

	"github.com/pscheid92/sentimentapi/internal/domain"
	"github.com/shopspring/decimal"
)

// scoreDigits is the number of fractional digits scores are rounded and rendered to.
const scoreDigits = 3

// Classifier turns raw scores from a domain.Scorer into labeled, fixed-precision results.
type Classifier struct {
	scorer domain.Scorer
}

func NewClassifier(scorer domain.Scorer) *Classifier {
	return &Classifier{scorer: scorer}
}

// Classify scores text and labels it against threshold.
// Any scorer failure, including a non-finite score, is reported as domain.ErrScoringUnavailable.
func (c *Classifier) Classify(ctx context.Context, text string, threshold float64) (domain.Classification, error) {
	score, err := c.scorer.Score(ctx, text)
	if err != nil {
		return domain.Classification{}, fmt.Errorf("%w: %w", domain.ErrScoringUnavailable, err)
	}
	if !isFinite(score.Polarity) || !isFinite(score.Subjectivity) {
		return domain.Classification{}, fmt.Errorf("%w: non-finite score %+v", domain.ErrScoringUnavailable, score)
	}
	return ClassifyScore(score, threshold), nil
}

// ClassifyScore clamps polarity to [-1, 1] and subjectivity to [0, 1], rounds both to
// three decimals with round-half-to-even on their shortest decimal representation,
// and derives the label from the rounded polarity. Score components must be finite.
func ClassifyScore(score domain.Score, threshold float64) domain.Classification {
	polarity := Round(clamp(score.Polarity, -1, 1))
	subjectivity := Round(clamp(score.Subjectivity, 0, 1))

	return domain.Classification{
		Sentiment:    LabelFor(polarity, threshold),
		Polarity:     polarity.StringFixed(scoreDigits),
		Subjectivity: subjectivity.StringFixed(scoreDigits),
	}
}

// Round rounds v half-to-even to three decimal places.
func Round(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).RoundBank(scoreDigits)
}

// LabelFor compares a rounded polarity with threshold. Ties are Neutral.
// An infinite threshold sits beyond every polarity; NaN never compares, so it is Neutral.
func LabelFor(polarity decimal.Decimal, threshold float64) domain.Label {
	switch {
	case math.IsNaN(threshold):
		return domain.LabelNeutral
	case math.IsInf(threshold, 1):
		return domain.LabelNegative
	case math.IsInf(threshold, -1):
		return domain.LabelPositive
	}

	switch polarity.Cmp(decimal.NewFromFloat(threshold)) {
	case 1:
		return domain.LabelPositive
	case -1:
		return domain.LabelNegative
	default:
		return domain.LabelNeutral
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
