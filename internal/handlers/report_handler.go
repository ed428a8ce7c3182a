package handlers

import (
	"net/http"

	"forklift-backend/internal/services"
	"forklift-backend/pkg/utils"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(s *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: s}
}

// InspectionHistoryCSV streams the filtered history as a CSV download.
// Accepts the same query filters as the history endpoint.
func (h *ReportHandler) InspectionHistoryCSV(w http.ResponseWriter, r *http.Request) {
	filter, err := parseHistoryFilter(r)
	if err != nil {
		utils.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	data, err := h.Service.InspectionHistoryCSV(r.Context(), filter)
	if err != nil {
		utils.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="inspection-history.csv"`)
	w.Write(data)
}

// FleetStatusPDF streams the fleet summary as a PDF download.
func (h *ReportHandler) FleetStatusPDF(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.FleetStatusPDF(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="fleet-status.pdf"`)
	w.Write(data)
}
