package sentiment

import "context"

// Result is a backend-native score. Score stays on the backend's own scale
// ([0,1] for the transformer family, [-1,1] for the lexicon family); the
// moderation layer normalizes it.
type Result struct {
	Score       float64
	NativeLabel string
	Confidence  float64
}

// Analyzer is one scoring backend. Implementations must be safe for
// concurrent use; they are constructed once at startup and shared.
type Analyzer interface {
	Method() Method
	Analyze(ctx context.Context, text string) (Result, error)
}
