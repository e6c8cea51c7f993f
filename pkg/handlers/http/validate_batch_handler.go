package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vportella/textgate/pkg/domain"
	"github.com/vportella/textgate/pkg/handlers/http/response"
	"github.com/vportella/textgate/pkg/moderation"
	"github.com/vportella/textgate/pkg/sentiment"
)

// batchConcurrency bounds how many texts are scored at once; the remote
// backend is the shared resource being protected.
const batchConcurrency = 8

type validateBatchHandler struct {
	logger       *logrus.Logger
	service      *moderation.Service
	maxBatchSize int
}

func NewValidateBatchHandler(
	logger *logrus.Logger,
	service *moderation.Service,
	maxBatchSize int,
) Handler {
	return &validateBatchHandler{
		logger:       logger,
		service:      service,
		maxBatchSize: maxBatchSize,
	}
}

func (h *validateBatchHandler) Handle(c *fiber.Ctx) error {
	var texts []string
	if err := json.Unmarshal(c.Body(), &texts); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "se esperaba una lista de textos"})
	}

	if len(texts) > h.maxBatchSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("máximo %d textos por lote", h.maxBatchSize),
		})
	}

	method, err := sentiment.ParseMethod(c.Query("method"), h.service.DefaultMethod())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	results := make([]response.BatchResult, len(texts))

	g, ctx := errgroup.WithContext(c.Context())
	g.SetLimit(batchConcurrency)
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			results[i] = h.processItem(ctx, text, method)
			return nil
		})
	}
	_ = g.Wait()

	validTexts := 0
	for _, r := range results {
		if r.Valid {
			validTexts++
		}
	}

	h.logger.WithFields(logrus.Fields{
		"sentiment_method": string(method),
		"total_texts":      len(texts),
		"valid_texts":      validTexts,
	}).Info("batch validated")

	return c.Status(fiber.StatusOK).JSON(response.BatchResponse{
		Method:     string(method),
		TotalTexts: len(texts),
		ValidTexts: validTexts,
		Results:    results,
	})
}

// processItem isolates each text: a bad entry yields a marked result, never
// a failed batch.
func (h *validateBatchHandler) processItem(ctx context.Context, text string, method sentiment.Method) response.BatchResult {
	if err := h.service.Validate(text); err != nil {
		var validationError *domain.ValidationError
		message := err.Error()
		if errors.As(err, &validationError) {
			message = validationError.First()
		}
		return response.BatchResult{Text: text, Valid: false, Error: message}
	}

	report := h.service.Moderate(ctx, text, method)
	return response.BatchResult{
		Text:           text,
		IsOffensive:    &report.Verdict.IsOffensive,
		EmotionScore:   &report.Sentiment.RawScore,
		EmotionLabel:   report.Sentiment.Label,
		ProfanityCount: &report.Profanity.Count,
		Valid:          true,
	}
}
