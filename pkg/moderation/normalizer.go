package moderation

import (
	"github.com/sirupsen/logrus"

	"github.com/vportella/textgate/pkg/config"
	"github.com/vportella/textgate/pkg/domain/analysis"
	"github.com/vportella/textgate/pkg/sentiment"
)

// ScoreNormalizer maps backend-native scores into the shared label space
// using the per-method threshold tables.
type ScoreNormalizer struct {
	methods map[string]config.MethodConfig
	def     string
	logger  *logrus.Logger
}

func NewScoreNormalizer(cfg config.SentimentConfig, logger *logrus.Logger) *ScoreNormalizer {
	return &ScoreNormalizer{
		methods: cfg.Methods,
		def:     cfg.DefaultMethod,
		logger:  logger,
	}
}

// Label buckets a native score. Boundary values belong to the lower bucket.
func (n *ScoreNormalizer) Label(score float64, method sentiment.Method) string {
	t := n.methodConfig(method).Thresholds
	switch {
	case score <= t.VeryNegative:
		return analysis.LabelVeryNegative
	case score <= t.Negative:
		return analysis.LabelNegative
	case score <= t.Neutral:
		return analysis.LabelNeutral
	case score <= t.Positive:
		return analysis.LabelPositive
	default:
		return analysis.LabelVeryPositive
	}
}

// ToUnitInterval rescales a native score onto [0,1] so scores from
// different backends can be compared. Signed scales map via (s+1)/2.
func (n *ScoreNormalizer) ToUnitInterval(score float64, method sentiment.Method) float64 {
	if n.methodConfig(method).Scale == config.ScaleSigned {
		return (score + 1) / 2
	}
	return score
}

// NeutralRaw is the native score that normalizes to the exact middle of the
// unit interval. Fallback results are built from it.
func (n *ScoreNormalizer) NeutralRaw(method sentiment.Method) float64 {
	if n.methodConfig(method).Scale == config.ScaleSigned {
		return 0
	}
	return 0.5
}

// methodConfig never errors: an unrecognized method falls back to the
// default method's table with a warning.
func (n *ScoreNormalizer) methodConfig(method sentiment.Method) config.MethodConfig {
	if cfg, ok := n.methods[string(method)]; ok {
		return cfg
	}
	n.logger.WithField("sentiment_method", string(method)).
		Warn("no threshold table for method, using default method's table")
	return n.methods[n.def]
}
