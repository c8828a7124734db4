package http

import (
	"net/http"

	"github.com/MKhiriev/press-pay/internal/utils"
	"github.com/MKhiriev/press-pay/models"
)

func (h *Handler) serviceInfo(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.ServiceInfoResponse{
		OK:      true,
		Service: h.services.AppInfoService.GetServiceName(r.Context()),
	}, http.StatusOK)
}

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.VersionResponse{
		OK:      true,
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	}, http.StatusOK)
}
