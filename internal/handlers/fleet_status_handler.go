package handlers

import (
	"net/http"

	"forklift-backend/internal/services"
	"forklift-backend/pkg/utils"
)

type FleetStatusHandler struct {
	Service *services.FleetStatusService
}

func NewFleetStatusHandler(s *services.FleetStatusService) *FleetStatusHandler {
	return &FleetStatusHandler{Service: s}
}

// GetFleetStatus returns the per-forklift rollup for the supervisor
// dashboard, ascending by unit number.
func (h *FleetStatusHandler) GetFleetStatus(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.Service.Summary(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, summaries)
}
