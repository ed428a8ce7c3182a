package services

import (
	"context"
	"time"

	"forklift-backend/internal/models"
	"forklift-backend/internal/repositories"
)

// Store interfaces let services run against fakes in tests. The concrete
// repositories satisfy them.

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	Get(ctx context.Context, id int) (*models.User, error)
	Exists(ctx context.Context, id int) (bool, error)
	List(ctx context.Context) ([]*models.User, error)
}

type ForkliftStore interface {
	Create(ctx context.Context, f *models.Forklift) error
	Get(ctx context.Context, id int) (*models.Forklift, error)
	Exists(ctx context.Context, id int) (bool, error)
	List(ctx context.Context, status *models.ForkliftStatus) ([]*models.Forklift, error)
	UpdateStatus(ctx context.Context, id int, status models.ForkliftStatus) error
}

type ChecklistItemStore interface {
	Create(ctx context.Context, item *models.ChecklistItem) error
	Get(ctx context.Context, id int) (*models.ChecklistItem, error)
	List(ctx context.Context, activeOnly bool) ([]*models.ChecklistItem, error)
	ExistingIDs(ctx context.Context, ids []int) (map[int]bool, error)
	Deactivate(ctx context.Context, id int) error
}

type InspectionStore interface {
	CreateWithResults(ctx context.Context, inspection *models.DailyInspection, results []models.ChecklistResultInput) error
	History(ctx context.Context, filter models.HistoryFilter) ([]*models.DailyInspection, error)
	GetDetail(ctx context.Context, id int) (*models.InspectionDetail, error)
	LatestByForklift(ctx context.Context) (map[int]repositories.LatestSnapshot, error)
	DefectCountsSince(ctx context.Context, cutoff time.Time) (map[int]int, error)
}
