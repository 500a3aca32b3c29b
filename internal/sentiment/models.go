package sentiment

// Label is the discrete sentiment judgment.
type Label string

const (
	LabelPositive Label = "POSITIVE"
	LabelNegative Label = "NEGATIVE"
	LabelNeutral  Label = "NEUTRAL"
)

// SourceTier records which tier of the fallback chain produced the result.
type SourceTier string

const (
	// SourceLLMNLP is the primary path: generated text classified by the
	// local NLP classifier.
	SourceLLMNLP SourceTier = "LLM_NLP"
	// SourceKeywordFallback means the text was fetched but classified by the
	// deterministic keyword scorer.
	SourceKeywordFallback SourceTier = "KEYWORD_FALLBACK"
	// SourceUnavailable means the text fetch itself failed; the result is a
	// neutral placeholder with a diagnostic message.
	SourceUnavailable SourceTier = "UNAVAILABLE"
)

// Result is the value object produced by every sentiment evaluation. Message
// carries the classified text on success and a diagnostic otherwise.
type Result struct {
	Label      Label
	Score      float64
	Message    string
	SourceTier SourceTier
}
