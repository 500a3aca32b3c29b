package sentiment

import "strings"

// Fixed word sets for the deterministic fallback scorer. Counting is
// case-insensitive substring matching, so inflections like "recovering"
// still count toward "recover" stems listed here in full-word form.
var (
	positiveWords = []string{
		"growth", "recovery", "improving", "optimism", "gains",
		"expansion", "resilient", "confidence", "stable", "rebound",
	}
	negativeWords = []string{
		"recession", "decline", "inflation", "crisis", "downturn",
		"uncertainty", "slowdown", "losses", "weak", "volatility",
	}
)

// KeywordScore classifies text by counting fixed positive and negative word
// occurrences. With p positive and n negative hits the winning side scores
// 0.5 + wins/(p+n+1) * 0.5; a tie is neutral at 0.5.
func KeywordScore(text string) (Label, float64) {
	lower := strings.ToLower(text)

	var p, n int
	for _, w := range positiveWords {
		p += strings.Count(lower, w)
	}
	for _, w := range negativeWords {
		n += strings.Count(lower, w)
	}

	total := float64(p + n + 1)
	switch {
	case p > n:
		return LabelPositive, 0.5 + float64(p)/total*0.5
	case n > p:
		return LabelNegative, 0.5 + float64(n)/total*0.5
	default:
		return LabelNeutral, 0.5
	}
}
