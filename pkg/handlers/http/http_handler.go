package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	ValidateHandler      Handler
	ValidateBatchHandler Handler
	HealthHandler        Handler
	MethodsHandler       Handler
	CompareHandler       Handler
	RootHandler          Handler
}
