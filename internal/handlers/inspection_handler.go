package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"forklift-backend/internal/models"
	"forklift-backend/internal/services"
	"forklift-backend/internal/timeutil"
	"forklift-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type InspectionHandler struct {
	Service *services.InspectionService
}

func NewInspectionHandler(s *services.InspectionService) *InspectionHandler {
	return &InspectionHandler{Service: s}
}

func (h *InspectionHandler) RecordInspection(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInspectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	inspection, err := h.Service.RecordInspection(r.Context(), &req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, inspection)
}

// ListInspections returns the history, newest first. Supported filters:
// ?forklift_id=, ?start_date=YYYY-MM-DD, ?end_date=YYYY-MM-DD, ?status=.
// Filters are ANDed; absent ones match everything.
func (h *InspectionHandler) ListInspections(w http.ResponseWriter, r *http.Request) {
	filter, err := parseHistoryFilter(r)
	if err != nil {
		utils.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	inspections, err := h.Service.History(r.Context(), filter)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, inspections)
}

func (h *InspectionHandler) GetInspection(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid inspection id"})
		return
	}

	detail, err := h.Service.GetDetail(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}
	if detail == nil {
		utils.JSON(w, http.StatusNotFound, map[string]string{"error": "inspection not found"})
		return
	}

	utils.JSON(w, http.StatusOK, detail)
}

func parseHistoryFilter(r *http.Request) (models.HistoryFilter, error) {
	var filter models.HistoryFilter
	q := r.URL.Query()

	if raw := q.Get("forklift_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid forklift_id parameter")
		}
		filter.ForkliftID = &id
	}
	if raw := q.Get("start_date"); raw != "" {
		t, err := timeutil.ParseDate(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid start_date parameter, expected YYYY-MM-DD")
		}
		filter.StartDate = &t
	}
	if raw := q.Get("end_date"); raw != "" {
		t, err := timeutil.ParseDate(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid end_date parameter, expected YYYY-MM-DD")
		}
		filter.EndDate = &t
	}
	if raw := q.Get("status"); raw != "" {
		s := models.InspectionStatus(raw)
		filter.Status = &s
	}

	return filter, nil
}
