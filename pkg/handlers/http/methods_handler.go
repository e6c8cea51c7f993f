package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/vportella/textgate/pkg/config"
	"github.com/vportella/textgate/pkg/sentiment"
)

type methodsHandler struct {
	logger        *logrus.Logger
	methods       map[string]config.MethodConfig
	defaultMethod string
}

func NewMethodsHandler(logger *logrus.Logger, cfg config.SentimentConfig) Handler {
	return &methodsHandler{
		logger:        logger,
		methods:       cfg.Methods,
		defaultMethod: cfg.DefaultMethod,
	}
}

func (h *methodsHandler) Handle(c *fiber.Ctx) error {
	methods := fiber.Map{}
	for _, m := range sentiment.AllMethods() {
		cfg, ok := h.methods[string(m)]
		if !ok {
			continue
		}
		methods[string(m)] = fiber.Map{
			"description": cfg.Description,
			"model":       cfg.Model,
			"scale":       cfg.Scale,
			"local":       cfg.Local,
			"default":     string(m) == h.defaultMethod,
			"thresholds": fiber.Map{
				"very_negative": cfg.Thresholds.VeryNegative,
				"negative":      cfg.Thresholds.Negative,
				"neutral":       cfg.Thresholds.Neutral,
				"positive":      cfg.Thresholds.Positive,
			},
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"default_method": h.defaultMethod,
		"methods":        methods,
	})
}
