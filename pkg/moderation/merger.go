package moderation

import (
	"github.com/vportella/textgate/pkg/domain/analysis"
	"github.com/vportella/textgate/pkg/sentiment"
)

// VerdictMerger combines the sentiment and profanity halves of the pipeline
// into the final offensiveness call.
type VerdictMerger struct {
	normalizer         *ScoreNormalizer
	offensiveThreshold float64
	profanityPenalty   float64
	maxPenalty         float64
}

func NewVerdictMerger(normalizer *ScoreNormalizer, offensiveThreshold, profanityPenalty, maxPenalty float64) *VerdictMerger {
	return &VerdictMerger{
		normalizer:         normalizer,
		offensiveThreshold: offensiveThreshold,
		profanityPenalty:   profanityPenalty,
		maxPenalty:         maxPenalty,
	}
}

// Merge compares the sentiment score on the normalized scale so the cutoff
// behaves the same for every backend, then discounts confidence by the
// number of profane words found.
func (m *VerdictMerger) Merge(
	s analysis.SentimentResult,
	p analysis.ProfanitySignal,
	method sentiment.Method,
) analysis.Verdict {
	normalized := m.normalizer.ToUnitInterval(s.RawScore, method)
	isOffensive := normalized < m.offensiveThreshold || p.Count > 0

	penalty := m.profanityPenalty * float64(p.Count)
	if penalty > m.maxPenalty {
		penalty = m.maxPenalty
	}

	return analysis.Verdict{
		IsOffensive: isOffensive,
		Confidence:  clamp01(s.Confidence - penalty),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
