package services

import (
	"context"

	"forklift-backend/internal/apperrors"
	"forklift-backend/internal/cache"
	"forklift-backend/internal/metrics"
	"forklift-backend/internal/models"
)

type InspectionService struct {
	InspectionRepo InspectionStore
	ForkliftRepo   ForkliftStore
	UserRepo       UserStore
	ChecklistRepo  ChecklistItemStore
}

func NewInspectionService(inspectionRepo InspectionStore, forkliftRepo ForkliftStore, userRepo UserStore, checklistRepo ChecklistItemStore) *InspectionService {
	return &InspectionService{
		InspectionRepo: inspectionRepo,
		ForkliftRepo:   forkliftRepo,
		UserRepo:       userRepo,
		ChecklistRepo:  checklistRepo,
	}
}

// RecordInspection validates the request, verifies every referenced entity,
// derives the overall status and persists the inspection together with its
// results. The overall status is never taken from the caller.
func (s *InspectionService) RecordInspection(ctx context.Context, req *models.CreateInspectionRequest) (*models.DailyInspection, error) {
	if err := validateInspectionRequest(req); err != nil {
		return nil, err
	}

	exists, err := s.ForkliftRepo.Exists(ctx, req.ForkliftID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("forklift with id %d", req.ForkliftID)
	}

	exists, err = s.UserRepo.Exists(ctx, req.OperatorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("user with id %d", req.OperatorID)
	}

	itemIDs := make([]int, 0, len(req.ChecklistResults))
	for _, result := range req.ChecklistResults {
		itemIDs = append(itemIDs, result.ChecklistItemID)
	}
	existingItems, err := s.ChecklistRepo.ExistingIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	for _, id := range itemIDs {
		if !existingItems[id] {
			return nil, apperrors.NotFound("checklist item with id %d", id)
		}
	}

	inspection := &models.DailyInspection{
		ForkliftID:     req.ForkliftID,
		OperatorID:     req.OperatorID,
		InspectionDate: req.InspectionDate,
		Shift:          req.Shift,
		HoursMeter:     req.HoursMeter,
		FuelLevel:      req.FuelLevel,
		OverallStatus:  models.DeriveOverallStatus(req.ChecklistResults),
		Notes:          req.Notes,
	}

	if err := s.InspectionRepo.CreateWithResults(ctx, inspection, req.ChecklistResults); err != nil {
		return nil, err
	}

	metrics.InspectionsRecorded.WithLabelValues(string(inspection.OverallStatus)).Inc()
	for _, result := range req.ChecklistResults {
		if result.Status == models.ChecklistDefect {
			metrics.DefectsDetected.Inc()
		}
	}

	// The fleet summary is stale as soon as a new inspection lands
	cache.InvalidateFleetStatus(ctx)

	return inspection, nil
}

func validateInspectionRequest(req *models.CreateInspectionRequest) error {
	if req.InspectionDate.IsZero() {
		return apperrors.Validation("inspection date is required")
	}
	if !req.Shift.Valid() {
		return apperrors.Validation("shift must be morning, afternoon or night")
	}
	if req.FuelLevel != nil && (*req.FuelLevel < 0 || *req.FuelLevel > 100) {
		return apperrors.Validation("fuel level must be between 0 and 100")
	}
	if req.HoursMeter != nil && *req.HoursMeter < 0 {
		return apperrors.Validation("hours meter cannot be negative")
	}
	for _, result := range req.ChecklistResults {
		if !result.Status.Valid() {
			return apperrors.Validation("checklist status must be ok, defect or not_applicable")
		}
	}
	return nil
}

// History returns inspections matching the filter, newest first. An empty
// result is a valid answer, not an error.
func (s *InspectionService) History(ctx context.Context, filter models.HistoryFilter) ([]*models.DailyInspection, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, apperrors.Validation("status must be pass, fail or needs_attention")
	}
	return s.InspectionRepo.History(ctx, filter)
}

// GetDetail returns the full inspection read model, or (nil, nil) when the
// id does not exist.
func (s *InspectionService) GetDetail(ctx context.Context, id int) (*models.InspectionDetail, error) {
	return s.InspectionRepo.GetDetail(ctx, id)
}
