package sentiment

import (
	"context"
	"fmt"

	"github.com/drankou/go-vader/vader"
)

// VADER convention: compound beyond ±0.05 counts as polarized.
const vaderPolarityCutoff = 0.05

// VaderAnalyzer runs the rule-based VADER model in-process. Its compound
// score is signed, [-1,1].
type VaderAnalyzer struct {
	sia *vader.SentimentIntensityAnalyzer
}

// NewVaderAnalyzer loads the lexicon files once; the analyzer itself is
// stateless per call.
func NewVaderAnalyzer(lexiconFile, emojiFile string) (*VaderAnalyzer, error) {
	sia := &vader.SentimentIntensityAnalyzer{}
	if err := sia.Init(lexiconFile, emojiFile); err != nil {
		return nil, fmt.Errorf("failed to load vader lexicons: %w", err)
	}
	return &VaderAnalyzer{sia: sia}, nil
}

func (a *VaderAnalyzer) Method() Method {
	return MethodVader
}

func (a *VaderAnalyzer) Analyze(ctx context.Context, text string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	scores := a.sia.PolarityScores(text)
	compound := scores["compound"]

	label := "neutral"
	switch {
	case compound >= vaderPolarityCutoff:
		label = "positive"
	case compound <= -vaderPolarityCutoff:
		label = "negative"
	}

	return Result{
		Score:       compound,
		NativeLabel: label,
		Confidence:  dominantProportion(scores),
	}, nil
}

// dominantProportion uses the strongest of the pos/neu/neg shares as the
// backend confidence. The three always sum to 1.
func dominantProportion(scores map[string]float64) float64 {
	confidence := 0.0
	for _, key := range []string{"pos", "neu", "neg"} {
		if scores[key] > confidence {
			confidence = scores[key]
		}
	}
	return confidence
}
