package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"forklift-backend/internal/models"
	"forklift-backend/internal/services"
	"forklift-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type ForkliftHandler struct {
	Service *services.ForkliftService
}

func NewForkliftHandler(s *services.ForkliftService) *ForkliftHandler {
	return &ForkliftHandler{Service: s}
}

func (h *ForkliftHandler) CreateForklift(w http.ResponseWriter, r *http.Request) {
	var req models.CreateForkliftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	forklift, err := h.Service.CreateForklift(r.Context(), &req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, forklift)
}

func (h *ForkliftHandler) GetForklift(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid forklift id"})
		return
	}

	forklift, err := h.Service.GetForklift(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, forklift)
}

// ListForklifts supports an optional ?status= filter.
func (h *ForkliftHandler) ListForklifts(w http.ResponseWriter, r *http.Request) {
	var status *models.ForkliftStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := models.ForkliftStatus(raw)
		status = &s
	}

	forklifts, err := h.Service.ListForklifts(r.Context(), status)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, forklifts)
}

func (h *ForkliftHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid forklift id"})
		return
	}

	var req models.UpdateForkliftStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.Service.UpdateStatus(r.Context(), id, req.Status); err != nil {
		utils.Error(w, err)
		return
	}

	forklift, err := h.Service.GetForklift(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, forklift)
}
