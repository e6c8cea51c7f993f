package moderation

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vportella/textgate/pkg/domain/analysis"
	"github.com/vportella/textgate/pkg/infra/prometheus"
	"github.com/vportella/textgate/pkg/sentiment"
)

// Detector is the profanity half of the pipeline.
type Detector interface {
	Detect(ctx context.Context, text string) (analysis.ProfanitySignal, error)
}

// Service runs the full moderation pipeline for one text: concurrent
// sentiment scoring and profanity detection, then normalization, verdict
// merging, suggestions and correction. Both external-ish calls fail open: a
// scoring glitch degrades the answer, it never fails the request.
type Service struct {
	registry    *sentiment.Registry
	detector    Detector
	normalizer  *ScoreNormalizer
	merger      *VerdictMerger
	suggestions *SuggestionGenerator
	corrector   *TextCorrector
	validator   *RequestValidator
	callTimeout time.Duration
	logger      *logrus.Logger
}

func NewService(
	registry *sentiment.Registry,
	detector Detector,
	normalizer *ScoreNormalizer,
	merger *VerdictMerger,
	suggestions *SuggestionGenerator,
	corrector *TextCorrector,
	validator *RequestValidator,
	callTimeout time.Duration,
	logger *logrus.Logger,
) *Service {
	return &Service{
		registry:    registry,
		detector:    detector,
		normalizer:  normalizer,
		merger:      merger,
		suggestions: suggestions,
		corrector:   corrector,
		validator:   validator,
		callTimeout: callTimeout,
		logger:      logger,
	}
}

// Validate applies the input constraints without running the pipeline.
func (s *Service) Validate(text string) error {
	return s.validator.Validate(text)
}

// DefaultMethod exposes the configured default backend.
func (s *Service) DefaultMethod() sentiment.Method {
	return s.registry.Default()
}

// AvailableMethods lists the methods a request may select.
func (s *Service) AvailableMethods() []string {
	return s.registry.Available()
}

// Moderate scores and rewrites one already-validated text.
func (s *Service) Moderate(ctx context.Context, text string, method sentiment.Method) analysis.Report {
	langInfo := whatlanggo.Detect(text)
	language := langInfo.Lang.Iso6391()

	var (
		sentimentResult analysis.SentimentResult
		profanitySignal analysis.ProfanitySignal
	)

	// Neither half depends on the other; run them side by side. Errors are
	// swallowed into fallbacks, so the group never reports one.
	g, groupCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sentimentResult = s.analyzeSentiment(groupCtx, text, method)
		return nil
	})
	g.Go(func() error {
		profanitySignal = s.detectProfanity(groupCtx, text)
		return nil
	})
	_ = g.Wait()

	verdict := s.merger.Merge(sentimentResult, profanitySignal, method)
	normalizedScore := s.normalizer.ToUnitInterval(sentimentResult.RawScore, method)
	suggestions := s.suggestions.Suggest(text, normalizedScore, profanitySignal.Count)
	corrected := s.corrector.Correct(text, profanitySignal.Words)

	if profanitySignal.Count > 0 {
		prometheus.ProfanityHitsTotal.Add(float64(profanitySignal.Count))
	}
	if verdict.IsOffensive {
		prometheus.OffensiveVerdictTotal.Inc()
	}

	return analysis.Report{
		Sentiment:     sentimentResult,
		Profanity:     profanitySignal,
		Verdict:       verdict,
		Suggestions:   suggestions,
		CorrectedText: corrected,
		Language:      language,
	}
}

func (s *Service) analyzeSentiment(ctx context.Context, text string, method sentiment.Method) analysis.SentimentResult {
	analyzer, ok := s.registry.Get(method)
	if !ok {
		// The HTTP boundary rejects unknown methods; reaching this means a
		// configured method lost its analyzer. Degrade, don't fail.
		s.logger.WithField("sentiment_method", string(method)).
			Warn("no analyzer registered for method, serving neutral fallback")
		return s.neutralFallback(method)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	started := time.Now()
	result, err := analyzer.Analyze(callCtx, cleanText(text))
	prometheus.SentimentLatency.WithLabelValues(string(method)).
		Observe(float64(time.Since(started).Milliseconds()))

	if err != nil {
		s.logger.WithError(err).WithField("sentiment_method", string(method)).
			Warn("sentiment backend failed, serving neutral fallback")
		prometheus.SentimentFallbackTotal.WithLabelValues(string(method)).Inc()
		return s.neutralFallback(method)
	}

	return analysis.SentimentResult{
		RawScore:   result.Score,
		Label:      s.normalizer.Label(result.Score, method),
		Confidence: result.Confidence,
	}
}

func (s *Service) detectProfanity(ctx context.Context, text string) analysis.ProfanitySignal {
	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	signal, err := s.detector.Detect(callCtx, text)
	if err != nil {
		s.logger.WithError(err).Warn("profanity detection failed, continuing without signal")
		return analysis.ProfanitySignal{Words: []string{}}
	}
	return signal
}

// neutralFallback builds the degraded result on the method's own scale so
// it still normalizes to the middle of the unit interval.
func (s *Service) neutralFallback(method sentiment.Method) analysis.SentimentResult {
	return analysis.SentimentResult{
		RawScore:   s.normalizer.NeutralRaw(method),
		Label:      analysis.LabelNeutral,
		Confidence: 0,
	}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// cleanText collapses whitespace before inference; the detectors see the
// original text.
func cleanText(text string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(text), " ")
}
