package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vportella/textgate/pkg/config"
	"github.com/vportella/textgate/pkg/domain"
	"github.com/vportella/textgate/pkg/handlers/http/request"
	"github.com/vportella/textgate/pkg/handlers/http/response"
	"github.com/vportella/textgate/pkg/moderation"
	"github.com/vportella/textgate/pkg/sentiment"
)

type validateHandler struct {
	logger  *logrus.Logger
	service *moderation.Service
	methods map[string]config.MethodConfig
}

func NewValidateHandler(
	logger *logrus.Logger,
	service *moderation.Service,
	methods map[string]config.MethodConfig,
) Handler {
	return &validateHandler{
		logger:  logger,
		service: service,
		methods: methods,
	}
}

func (h *validateHandler) Handle(c *fiber.Ctx) error {
	started := time.Now()
	requestID := uuid.NewString()

	var req request.ValidateRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).WithField("request_id", requestID).Warn("unparseable request body")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo de la petición inválido"})
	}
	req.ApplyDefaults()

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "código de idioma inválido"})
	}

	method, err := sentiment.ParseMethod(req.SentimentMethod, h.service.DefaultMethod())
	if err != nil {
		h.logger.WithField("request_id", requestID).
			WithField("sentiment_method", req.SentimentMethod).
			Warn("unknown sentiment method requested")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.service.Validate(req.Text); err != nil {
		var validationError *domain.ValidationError
		if errors.As(err, &validationError) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationError.First()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	report := h.service.Moderate(c.Context(), req.Text, method)

	if report.Language != "" && report.Language != req.Language {
		h.logger.WithFields(logrus.Fields{
			"request_id":        requestID,
			"declared_language": req.Language,
			"detected_language": report.Language,
		}).Debug("declared language differs from detection")
	}

	h.logger.WithFields(logrus.Fields{
		"request_id":       requestID,
		"sentiment_method": string(method),
		"is_offensive":     report.Verdict.IsOffensive,
		"profanity_count":  report.Profanity.Count,
		"duration_ms":      time.Since(started).Milliseconds(),
	}).Info("text validated")

	return c.Status(fiber.StatusOK).JSON(response.ValidateResponse{
		OriginalText:    req.Text,
		IsOffensive:     report.Verdict.IsOffensive,
		HasProfanity:    report.Profanity.HasProfanity(),
		EmotionScore:    report.Sentiment.RawScore,
		EmotionLabel:    report.Sentiment.Label,
		ProfanityCount:  report.Profanity.Count,
		Suggestions:     report.Suggestions,
		CorrectedText:   report.CorrectedText,
		Confidence:      report.Verdict.Confidence,
		SentimentMethod: string(method),
		MethodInfo:      methodInfo(h.methods, method),
		ProcessingTime:  time.Since(started).Seconds(),
	})
}

func methodInfo(methods map[string]config.MethodConfig, method sentiment.Method) response.MethodInfo {
	cfg, ok := methods[string(method)]
	if !ok {
		return response.MethodInfo{}
	}
	return response.MethodInfo{
		Description: cfg.Description,
		Model:       cfg.Model,
		Scale:       cfg.Scale,
		Local:       cfg.Local,
		Thresholds: map[string]float64{
			"very_negative": cfg.Thresholds.VeryNegative,
			"negative":      cfg.Thresholds.Negative,
			"neutral":       cfg.Thresholds.Neutral,
			"positive":      cfg.Thresholds.Positive,
		},
	}
}
