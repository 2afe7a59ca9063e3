package domain

// Label is the discrete sentiment derived from a polarity score.
type Label string

const (
	LabelPositive Label = "Positive"
	LabelNegative Label = "Negative"
	LabelNeutral  Label = "Neutral"
)

// Item is one labeled text snippet of a batch.
type Item struct {
	ID   string
	Text string
	// Valid is false when the JSON value was not a string.
	Valid bool
}

// AnalysisRequest is a batch in client order. IDs are unique.
type AnalysisRequest struct {
	Threshold   float64
	IncludeText bool
	Items       []Item
}

// Classification carries polarity and subjectivity already rounded and
// rendered with exactly three fractional digits.
type Classification struct {
	Sentiment    Label  `json:"sentiment"`
	Polarity     string `json:"polarity"`
	Subjectivity string `json:"subjectivity"`
}

// AnalysisResult is the outcome for a single item.
type AnalysisResult struct {
	ID string `json:"-"`
	Classification
	Text *string `json:"text,omitempty"`
}

// AnalysisResponse holds one result per request item, in request order.
type AnalysisResponse struct {
	Results []AnalysisResult
}
