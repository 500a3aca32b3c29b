package sentiment

import (
	"math"
	"strings"

	"github.com/jonreiter/govader"

	dErrors "centseek/pkg/domain-errors"
)

// Classifier is the local NLP inference boundary. A nil Classifier (or one
// returning an error) sends the chain to the keyword fallback.
type Classifier interface {
	Classify(text string) (Label, float64, error)
}

// VaderClassifier scores text with the VADER lexicon; compound polarity is
// mapped onto the label/confidence shape the chain expects.
type VaderClassifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderClassifier initializes the lexicon-backed analyzer.
func NewVaderClassifier() *VaderClassifier {
	return &VaderClassifier{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Classify labels text by compound polarity using the conventional VADER
// thresholds (±0.05). Confidence grows from 0.5 with polarity strength so a
// barely-positive text does not masquerade as a confident call.
func (c *VaderClassifier) Classify(text string) (Label, float64, error) {
	if strings.TrimSpace(text) == "" {
		return "", 0, dErrors.New(dErrors.CodeValidation, "cannot classify empty text")
	}

	scores := c.analyzer.PolarityScores(text)

	var label Label
	switch {
	case scores.Compound >= 0.05:
		label = LabelPositive
	case scores.Compound <= -0.05:
		label = LabelNegative
	default:
		label = LabelNeutral
	}

	confidence := 0.5 + math.Abs(scores.Compound)/2
	if confidence > 1 {
		confidence = 1
	}
	return label, confidence, nil
}
