package http

import (
	"net/http"

	"github.com/MKhiriev/go-account-service/internal/utils"
)

// healthResponse is the fixed payload returned by the health endpoint.
type healthResponse struct {
	Status string `json:"status"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, healthResponse{Status: "OK"}, http.StatusOK)
}
