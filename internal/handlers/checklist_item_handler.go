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

type ChecklistItemHandler struct {
	Service *services.ChecklistItemService
}

func NewChecklistItemHandler(s *services.ChecklistItemService) *ChecklistItemHandler {
	return &ChecklistItemHandler{Service: s}
}

func (h *ChecklistItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req models.CreateChecklistItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	item, err := h.Service.CreateItem(r.Context(), &req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, item)
}

func (h *ChecklistItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid checklist item id"})
		return
	}

	item, err := h.Service.GetItem(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, item)
}

// ListItems returns the checklist catalog. ?active=true restricts the
// response to items still offered on new inspections.
func (h *ChecklistItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	items, err := h.Service.ListItems(r.Context(), activeOnly)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, items)
}

func (h *ChecklistItemHandler) DeactivateItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid checklist item id"})
		return
	}

	if err := h.Service.DeactivateItem(r.Context(), id); err != nil {
		utils.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
