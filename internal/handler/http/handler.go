package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/press-pay/internal/logger"
	"github.com/MKhiriev/press-pay/internal/service"
	"github.com/MKhiriev/press-pay/internal/utils"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// decodeJSON reads a JSON body into dst. An empty body leaves dst untouched
// so that it is reported by field validation rather than as invalid JSON.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return errors.Join(ErrInvalidJSON, err)
}

// respondError logs err and writes its mapped status and code.
func respondError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)

	mapped := mapError(err)
	if mapped.status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Debug().Err(err).Str("code", mapped.code).Msg(msg)
	}

	_, _ = utils.WriteError(w, mapped.code, mapped.status)
}
