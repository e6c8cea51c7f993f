package analysis

// SentimentResult carries a backend score already mapped into the shared
// five-bucket label space. RawScore stays on the backend's native scale.
type SentimentResult struct {
	RawScore   float64
	Label      string
	Confidence float64
}

// ProfanitySignal is the detector output for a single text. Words preserves
// match order and may contain duplicates.
type ProfanitySignal struct {
	Count int
	Words []string
}

func (p ProfanitySignal) HasProfanity() bool {
	return p.Count > 0
}

// Verdict is derived from a SentimentResult and a ProfanitySignal and never
// mutated afterwards.
type Verdict struct {
	IsOffensive bool
	Confidence  float64
}

// Report is the full moderation outcome for one text.
type Report struct {
	Sentiment     SentimentResult
	Profanity     ProfanitySignal
	Verdict       Verdict
	Suggestions   []string
	CorrectedText string
	Language      string
}
