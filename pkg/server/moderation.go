package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vportella/textgate/pkg/config"
	handlers "github.com/vportella/textgate/pkg/handlers/http"
	"github.com/vportella/textgate/pkg/middleware"
)

type (
	ModerationServerDI struct {
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
		Config              *config.Config
		Logger              *logrus.Logger
	}
	ModerationServer struct {
		*BaseServer
		middlewareTransport middleware.Transport
		handlerTransport    handlers.HandlerTransport
	}
)

func NewModerationServer(di ModerationServerDI) *ModerationServer {
	return &ModerationServer{
		BaseServer:          NewBaseServer(di.Config, di.Logger),
		middlewareTransport: di.MiddlewareTransport,
		handlerTransport:    di.HandlerTransport,
	}
}

func (s *ModerationServer) Run() error {
	s.setupRoutes()
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting moderation server")
	return s.Router.Listen(addr)
}

func (s *ModerationServer) setupRoutes() {
	s.Router.Use(s.middlewareTransport.CORSMiddleware.Middleware())
	s.Router.Use(s.middlewareTransport.MetricsMiddleware.Middleware())

	s.Router.Get("/", s.handlerTransport.RootHandler.Handle)
	s.Router.Get("/health", s.handlerTransport.HealthHandler.Handle)
	s.Router.Get("/methods", s.handlerTransport.MethodsHandler.Handle)
	s.Router.Get("/compare", s.handlerTransport.CompareHandler.Handle)

	s.Router.Post("/validate", s.handlerTransport.ValidateHandler.Handle)
	s.Router.Post("/validate/batch", s.handlerTransport.ValidateBatchHandler.Handle)
}

func (s *ModerationServer) Shutdown() error {
	return s.Router.Shutdown()
}
