package sentiment

import (
	"context"
	"testing"

	"github.com/jonreiter/govader"
	"github.com/pscheid92/sentimentapi/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaderScorer_Polarity(t *testing.T) {
	scorer := NewVaderScorer()
	ctx := context.Background()

	positive, err := scorer.Score(ctx, "I love this.")
	require.NoError(t, err)
	assert.Greater(t, positive.Polarity, 0.0)
	assert.Greater(t, positive.Subjectivity, 0.0)

	negative, err := scorer.Score(ctx, "I hate this!")
	require.NoError(t, err)
	assert.Less(t, negative.Polarity, 0.0)
	assert.Greater(t, negative.Subjectivity, 0.0)
}

func TestVaderScorer_SubjectivityIsOpinionatedShare(t *testing.T) {
	scorer := NewVaderScorer()
	analyzer := govader.NewSentimentIntensityAnalyzer()

	for _, text := range []string{"I love this.", "I hate this!", "The food was good but the service was terrible."} {
		raw := analyzer.PolarityScores(text)

		score, err := scorer.Score(context.Background(), text)
		require.NoError(t, err)

		assert.InDelta(t, raw.Positive+raw.Negative, score.Subjectivity, 1e-9, text)
		assert.InDelta(t, raw.Compound, score.Polarity, 1e-9, text)
	}
}

func TestVaderScorer_FactualTextIsNeutral(t *testing.T) {
	scorer := NewVaderScorer()

	score, err := scorer.Score(context.Background(), "The table is brown.")
	require.NoError(t, err)

	assert.InDelta(t, 0.0, score.Polarity, 1e-9)
	assert.InDelta(t, 0.0, score.Subjectivity, 1e-9)
}

func TestVaderScorer_Ranges(t *testing.T) {
	scorer := NewVaderScorer()

	for _, text := range []string{
		"good good good day",
		"terrible, horrible, awful, worst day ever!!!",
		"WOW this is AMAZING!!!",
		"meh",
	} {
		score, err := scorer.Score(context.Background(), text)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, score.Polarity, -1.0, text)
		assert.LessOrEqual(t, score.Polarity, 1.0, text)
		assert.GreaterOrEqual(t, score.Subjectivity, 0.0, text)
		assert.LessOrEqual(t, score.Subjectivity, 1.0+1e-9, text)
	}
}

func TestVaderScorer_Deterministic(t *testing.T) {
	scorer := NewVaderScorer()

	first, err := scorer.Score(context.Background(), "not bad at all")
	require.NoError(t, err)
	second, err := scorer.Score(context.Background(), "not bad at all")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestVaderScorer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewVaderScorer().Score(ctx, "I love this.")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestVaderScorer_Uninitialized(t *testing.T) {
	var scorer *VaderScorer

	_, err := scorer.Score(context.Background(), "text")

	assert.ErrorIs(t, err, domain.ErrScoringUnavailable)
}

func TestVaderScorer_Probe(t *testing.T) {
	assert.NoError(t, NewVaderScorer().Probe(context.Background()))
}

func TestVaderScorer_WithClassifier(t *testing.T) {
	classifier := NewClassifier(NewVaderScorer())

	a, err := classifier.Classify(context.Background(), "I love this.", 0)
	require.NoError(t, err)
	b, err := classifier.Classify(context.Background(), "I hate this!", 0)
	require.NoError(t, err)

	assert.Equal(t, domain.LabelPositive, a.Sentiment)
	assert.Equal(t, domain.LabelNegative, b.Sentiment)
}
