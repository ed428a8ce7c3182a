package services

import (
	"context"
	"strings"

	"forklift-backend/internal/apperrors"
	"forklift-backend/internal/models"
)

type ChecklistItemService struct {
	Repo ChecklistItemStore
}

func NewChecklistItemService(repo ChecklistItemStore) *ChecklistItemService {
	return &ChecklistItemService{Repo: repo}
}

func (s *ChecklistItemService) CreateItem(ctx context.Context, req *models.CreateChecklistItemRequest) (*models.ChecklistItem, error) {
	if strings.TrimSpace(req.Category) == "" {
		return nil, apperrors.Validation("category is required")
	}
	if strings.TrimSpace(req.ItemName) == "" {
		return nil, apperrors.Validation("item name is required")
	}

	// New items default to active
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	item := &models.ChecklistItem{
		Category:    req.Category,
		ItemName:    req.ItemName,
		Description: req.Description,
		IsActive:    isActive,
	}
	if err := s.Repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ChecklistItemService) GetItem(ctx context.Context, id int) (*models.ChecklistItem, error) {
	return s.Repo.Get(ctx, id)
}

func (s *ChecklistItemService) ListItems(ctx context.Context, activeOnly bool) ([]*models.ChecklistItem, error) {
	return s.Repo.List(ctx, activeOnly)
}

// DeactivateItem soft-disables an item so it no longer appears in new
// inspections. Historical results keep referencing it.
func (s *ChecklistItemService) DeactivateItem(ctx context.Context, id int) error {
	return s.Repo.Deactivate(ctx, id)
}
