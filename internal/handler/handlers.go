package handler

import (
	"github.com/MKhiriev/press-pay/internal/handler/http"
	"github.com/MKhiriev/press-pay/internal/logger"
	"github.com/MKhiriev/press-pay/internal/service"
)

// Handlers groups the transport handlers served by the process.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
