package services

import (
	"context"
	"strings"

	"forklift-backend/internal/apperrors"
	"forklift-backend/internal/models"
	"forklift-backend/internal/timeutil"
)

const minForkliftYear = 1900

type ForkliftService struct {
	Repo ForkliftStore
}

func NewForkliftService(repo ForkliftStore) *ForkliftService {
	return &ForkliftService{Repo: repo}
}

func (s *ForkliftService) CreateForklift(ctx context.Context, req *models.CreateForkliftRequest) (*models.Forklift, error) {
	if strings.TrimSpace(req.UnitNumber) == "" {
		return nil, apperrors.Validation("unit number is required")
	}
	if strings.TrimSpace(req.Brand) == "" || strings.TrimSpace(req.Model) == "" {
		return nil, apperrors.Validation("brand and model are required")
	}
	if strings.TrimSpace(req.SerialNumber) == "" {
		return nil, apperrors.Validation("serial number is required")
	}
	maxYear := timeutil.Now().Year() + 1
	if req.Year < minForkliftYear || req.Year > maxYear {
		return nil, apperrors.Validation("year must be between %d and %d", minForkliftYear, maxYear)
	}
	status := req.Status
	if status == "" {
		status = models.ForkliftActive
	}
	if !status.Valid() {
		return nil, apperrors.Validation("status must be active, maintenance or inactive")
	}

	forklift := &models.Forklift{
		UnitNumber:   strings.TrimSpace(req.UnitNumber),
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		SerialNumber: strings.TrimSpace(req.SerialNumber),
		Status:       status,
	}
	if err := s.Repo.Create(ctx, forklift); err != nil {
		return nil, err
	}
	return forklift, nil
}

func (s *ForkliftService) GetForklift(ctx context.Context, id int) (*models.Forklift, error) {
	return s.Repo.Get(ctx, id)
}

func (s *ForkliftService) ListForklifts(ctx context.Context, status *models.ForkliftStatus) ([]*models.Forklift, error) {
	if status != nil && !status.Valid() {
		return nil, apperrors.Validation("status must be active, maintenance or inactive")
	}
	return s.Repo.List(ctx, status)
}

// UpdateStatus moves a unit between active, maintenance and inactive.
func (s *ForkliftService) UpdateStatus(ctx context.Context, id int, status models.ForkliftStatus) error {
	if !status.Valid() {
		return apperrors.Validation("status must be active, maintenance or inactive")
	}
	return s.Repo.UpdateStatus(ctx, id, status)
}
