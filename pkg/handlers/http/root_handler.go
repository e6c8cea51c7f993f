package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vportella/textgate/pkg/version"
)

type rootHandler struct{}

func NewRootHandler() Handler {
	return &rootHandler{}
}

func (h *rootHandler) Handle(c *fiber.Ctx) error {
	info := version.GetInfo()
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "API de Validación de Textos para Redes Sociales",
		"version": info.Version,
		"endpoints": fiber.Map{
			"/validate":       "POST - Valida un texto",
			"/validate/batch": "POST - Valida una lista de textos",
			"/health":         "GET - Estado de salud de la API",
			"/methods":        "GET - Métodos de análisis disponibles",
			"/compare":        "GET - Comparación entre métodos",
		},
	})
}
