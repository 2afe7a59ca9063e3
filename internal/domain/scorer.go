package domain

import "context"

// Score is the raw output of a text analysis engine.
// Polarity is in [-1, 1], Subjectivity in [0, 1].
type Score struct {
	Polarity     float64
	Subjectivity float64
}

// Scorer computes polarity and subjectivity for a text. Implementations are
// pure, deterministic and safe for concurrent use.
type Scorer interface {
	Score(ctx context.Context, text string) (Score, error)
}
