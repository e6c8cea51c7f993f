package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/vportella/textgate/pkg/config"
	handlers "github.com/vportella/textgate/pkg/handlers/http"
	"github.com/vportella/textgate/pkg/infra/httpx"
	infraLogger "github.com/vportella/textgate/pkg/infra/logger"
	"github.com/vportella/textgate/pkg/middleware"
	"github.com/vportella/textgate/pkg/moderation"
	"github.com/vportella/textgate/pkg/profanity"
	"github.com/vportella/textgate/pkg/sentiment"
	"github.com/vportella/textgate/pkg/server"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	if err := config.Load("./config"); err != nil {
		logger.WithError(err).Fatal("failed to load config")
	}
	cfg := config.GetConfig()

	defaultMethod, err := sentiment.ParseMethod(cfg.Sentiment.DefaultMethod, sentiment.MethodBERTMultilingual)
	if err != nil {
		logger.WithError(err).Fatal("invalid default sentiment method")
	}

	logger.Info("loading models...")

	analyzers := buildAnalyzers(cfg, logger)
	registry, err := sentiment.NewRegistry(defaultMethod, analyzers...)
	if err != nil {
		logger.WithError(err).Fatal("failed to build sentiment registry")
	}

	detector, err := profanity.NewDetector(cfg.Profanity.Lexicon)
	if err != nil {
		logger.WithError(err).Fatal("failed to build profanity detector")
	}

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
		cfg.Sentiment.Timeout,
		logger,
	)

	status := probeModels(registry, logger)
	logger.WithField("models_loaded", status.ModelsLoaded).Info("models ready")

	middlewareTransport := middleware.Transport{
		CORSMiddleware: middleware.NewCORSMiddleware(
			cfg.CORS.AllowOrigins,
			cfg.CORS.AllowMethods,
			cfg.CORS.AllowHeaders,
		),
		MetricsMiddleware: middleware.NewMetricsMiddleware(logger),
	}

	handlerTransport := handlers.HandlerTransport{
		ValidateHandler:      handlers.NewValidateHandler(logger, service, cfg.Sentiment.Methods),
		ValidateBatchHandler: handlers.NewValidateBatchHandler(logger, service, cfg.Moderation.MaxBatchSize),
		HealthHandler:        handlers.NewHealthHandler(logger, service, status),
		MethodsHandler:       handlers.NewMethodsHandler(logger, cfg.Sentiment),
		CompareHandler:       handlers.NewCompareHandler(logger, service, cfg.Sentiment.Methods),
		RootHandler:          handlers.NewRootHandler(),
	}

	srv := server.NewModerationServer(server.ModerationServerDI{
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		Config:              cfg,
		Logger:              logger,
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		logger.WithError(err).Error("error shutting down server")
		os.Exit(1)
	}
	logger.Info("server gracefully stopped")
}

// buildAnalyzers constructs every backend this deployment can run. A local
// backend that fails to load is skipped with a warning; the registry
// constructor catches the case where the default method ends up missing.
func buildAnalyzers(cfg *config.Config, logger *logrus.Logger) []sentiment.Analyzer {
	var analyzers []sentiment.Analyzer

	if bertCfg, ok := cfg.Sentiment.Methods[config.MethodBERTMultilingual]; ok {
		analyzers = append(analyzers, sentiment.NewBERTAnalyzer(
			bertCfg.Endpoint,
			httpx.NewJSONClient(cfg.Sentiment.Timeout),
			httpx.NewCircuitBreaker("bert-inference", 30*time.Second, 5),
			logger,
		))
	}

	if vaderCfg, ok := cfg.Sentiment.Methods[config.MethodVader]; ok {
		vaderAnalyzer, err := sentiment.NewVaderAnalyzer(vaderCfg.LexiconFile, vaderCfg.EmojiFile)
		if err != nil {
			logger.WithError(err).Warn("vader analyzer unavailable, method disabled")
		} else {
			analyzers = append(analyzers, vaderAnalyzer)
		}
	}

	if _, ok := cfg.Sentiment.Methods[config.MethodLexiconES]; ok {
		analyzers = append(analyzers, sentiment.NewLexiconESAnalyzer())
	}

	return analyzers
}

// probeModels scores a tiny sample with each backend so /health can report
// whether the models actually answer. A failing probe does not block boot;
// the pipeline falls open at request time anyway.
func probeModels(registry *sentiment.Registry, logger *logrus.Logger) *handlers.ModelStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	loaded := true
	for _, name := range registry.Available() {
		analyzer, ok := registry.Get(sentiment.Method(name))
		if !ok {
			continue
		}
		if _, err := analyzer.Analyze(ctx, "hola"); err != nil {
			logger.WithError(err).WithField("sentiment_method", name).Warn("model probe failed")
			loaded = false
		}
	}

	return &handlers.ModelStatus{
		ModelsLoaded: loaded,
		GPUAvailable: false,
	}
}
