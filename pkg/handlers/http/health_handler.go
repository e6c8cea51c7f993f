package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/vportella/textgate/pkg/handlers/http/response"
	"github.com/vportella/textgate/pkg/moderation"
)

// ModelStatus is set once at startup after the analyzers are built and the
// remote backend is probed. GPU inference never happens in this process.
type ModelStatus struct {
	ModelsLoaded bool
	GPUAvailable bool
}

type healthHandler struct {
	logger  *logrus.Logger
	service *moderation.Service
	status  *ModelStatus
}

func NewHealthHandler(logger *logrus.Logger, service *moderation.Service, status *ModelStatus) Handler {
	return &healthHandler{
		logger:  logger,
		service: service,
		status:  status,
	}
}

func (h *healthHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(response.HealthResponse{
		Status:           "healthy",
		ModelsLoaded:     h.status.ModelsLoaded,
		GPUAvailable:     h.status.GPUAvailable,
		AvailableMethods: h.service.AvailableMethods(),
		DefaultMethod:    string(h.service.DefaultMethod()),
	})
}
