package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/vportella/textgate/pkg/config"
	"github.com/vportella/textgate/pkg/moderation"
	"github.com/vportella/textgate/pkg/sentiment"
)

// Speed/accuracy notes surfaced by /compare. Informational, not measured.
var methodTraits = map[sentiment.Method]fiber.Map{
	sentiment.MethodBERTMultilingual: {
		"speed":    "slow",
		"accuracy": "high",
		"notes":    "inferencia remota; requiere el servidor de modelos",
	},
	sentiment.MethodVader: {
		"speed":    "fast",
		"accuracy": "medium",
		"notes":    "reglas y léxico en proceso; mejor en inglés",
	},
	sentiment.MethodLexiconES: {
		"speed":    "fast",
		"accuracy": "low",
		"notes":    "léxico embebido en español; sin dependencias externas",
	},
}

type compareHandler struct {
	logger  *logrus.Logger
	service *moderation.Service
	methods map[string]config.MethodConfig
}

func NewCompareHandler(
	logger *logrus.Logger,
	service *moderation.Service,
	methods map[string]config.MethodConfig,
) Handler {
	return &compareHandler{
		logger:  logger,
		service: service,
		methods: methods,
	}
}

// Handle dumps the method comparison table. With ?text= it additionally
// scores the sample with every available backend; a backend failure shows
// up as the neutral fallback, it never fails the comparison.
func (h *compareHandler) Handle(c *fiber.Ctx) error {
	comparison := fiber.Map{}
	for _, m := range sentiment.AllMethods() {
		cfg, ok := h.methods[string(m)]
		if !ok {
			continue
		}
		entry := fiber.Map{
			"model": cfg.Model,
			"scale": cfg.Scale,
			"local": cfg.Local,
			"thresholds": fiber.Map{
				"very_negative": cfg.Thresholds.VeryNegative,
				"negative":      cfg.Thresholds.Negative,
				"neutral":       cfg.Thresholds.Neutral,
				"positive":      cfg.Thresholds.Positive,
			},
		}
		for key, value := range methodTraits[m] {
			entry[key] = value
		}
		comparison[string(m)] = entry
	}

	result := fiber.Map{
		"default_method": string(h.service.DefaultMethod()),
		"methods":        comparison,
	}

	if text := c.Query("text"); text != "" {
		if err := h.service.Validate(text); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		samples := fiber.Map{}
		for _, name := range h.service.AvailableMethods() {
			report := h.service.Moderate(c.Context(), text, sentiment.Method(name))
			samples[name] = fiber.Map{
				"emotion_score": report.Sentiment.RawScore,
				"emotion_label": report.Sentiment.Label,
				"confidence":    report.Sentiment.Confidence,
			}
		}
		result["sample_text"] = text
		result["sample_results"] = samples
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
