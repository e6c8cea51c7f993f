package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vportella/textgate/pkg/config"
	"github.com/vportella/textgate/pkg/moderation"
	"github.com/vportella/textgate/pkg/profanity"
	"github.com/vportella/textgate/pkg/sentiment"
)

// newTestApp wires the full pipeline on local backends only, so handler
// tests run without an inference server.
func newTestApp(t *testing.T) (*fiber.App, *moderation.Service) {
	t.Helper()

	cfg := config.LoadDefaults()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	registry, err := sentiment.NewRegistry(sentiment.MethodLexiconES, sentiment.NewLexiconESAnalyzer())
	require.NoError(t, err)

	detector, err := profanity.NewDetector(cfg.Profanity.Lexicon)
	require.NoError(t, err)

	normalizer := moderation.NewScoreNormalizer(cfg.Sentiment, logger)
	service := moderation.NewService(
		registry,
		detector,
		normalizer,
		moderation.NewVerdictMerger(
			normalizer,
			cfg.Moderation.OffensiveThreshold,
			cfg.Moderation.ProfanityPenalty,
			cfg.Moderation.MaxPenalty,
		),
		moderation.NewSuggestionGenerator(cfg.Moderation),
		moderation.NewTextCorrector(cfg.Moderation.Replacements),
		moderation.NewRequestValidator(cfg.Moderation.MaxTextLength),
		time.Second,
		logger,
	)

	app := fiber.New()
	app.Get("/", NewRootHandler().Handle)
	app.Get("/health", NewHealthHandler(logger, service, &ModelStatus{ModelsLoaded: true}).Handle)
	app.Get("/methods", NewMethodsHandler(logger, cfg.Sentiment).Handle)
	app.Get("/compare", NewCompareHandler(logger, service, cfg.Sentiment.Methods).Handle)
	app.Post("/validate", NewValidateHandler(logger, service, cfg.Sentiment.Methods).Handle)
	app.Post("/validate/batch", NewValidateBatchHandler(logger, service, cfg.Moderation.MaxBatchSize).Handle)

	return app, service
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func errorMessage(t *testing.T, raw []byte) string {
	t.Helper()
	var payload map[string]string
	require.NoError(t, json.Unmarshal(raw, &payload))
	return payload["error"]
}
