package http

import (
	"net/http"

	"github.com/MKhiriev/go-account-service/internal/utils"
)

// serviceInfo describes the running service. Returned by the root endpoint
// so that a plain GET / confirms the API is reachable.
type serviceInfo struct {
	Service string `json:"service"`
	Version string `json:"version,omitempty"`
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, serviceInfo{
		Service: "account-service",
		Version: h.version,
	}, http.StatusOK)
}
