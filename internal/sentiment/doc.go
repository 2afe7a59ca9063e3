// Package sentiment implements text admissibility and threshold-based sentiment classification.
//
// Admissible gates which texts may be classified at all. Classifier rounds the raw
// polarity and subjectivity of a domain.Scorer to three decimals and labels the text
// Positive, Negative or Neutral relative to a caller-supplied threshold.
// VaderScorer is the local scoring engine.
package sentiment
