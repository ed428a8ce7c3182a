package repositories

import (
	"context"

	"forklift-backend/internal/apperrors"
	"forklift-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ChecklistItemRepository struct {
	DB *pgxpool.Pool
}

func NewChecklistItemRepository(db *pgxpool.Pool) *ChecklistItemRepository {
	return &ChecklistItemRepository{DB: db}
}

func (r *ChecklistItemRepository) Create(ctx context.Context, item *models.ChecklistItem) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO checklist_items(category, item_name, description, is_active)
         VALUES($1, $2, $3, $4)
         RETURNING id, created_at`,
		item.Category, item.ItemName, item.Description, item.IsActive,
	).Scan(&item.ID, &item.CreatedAt)
	return apperrors.FromStorage(err, "checklist item")
}

func (r *ChecklistItemRepository) Get(ctx context.Context, id int) (*models.ChecklistItem, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, category, item_name, description, is_active, created_at
         FROM checklist_items WHERE id=$1`, id)

	var item models.ChecklistItem
	err := row.Scan(&item.ID, &item.Category, &item.ItemName, &item.Description, &item.IsActive, &item.CreatedAt)
	if err != nil {
		return nil, apperrors.FromStorage(err, "checklist item")
	}
	return &item, nil
}

// List returns checklist items by category then name. activeOnly limits the
// list to items that still appear in new inspections.
func (r *ChecklistItemRepository) List(ctx context.Context, activeOnly bool) ([]*models.ChecklistItem, error) {
	query := `SELECT id, category, item_name, description, is_active, created_at
	          FROM checklist_items`
	if activeOnly {
		query += ` WHERE is_active=TRUE`
	}
	query += ` ORDER BY category ASC, item_name ASC`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, apperrors.FromStorage(err, "checklist items")
	}
	defer rows.Close()

	var items []*models.ChecklistItem
	for rows.Next() {
		var item models.ChecklistItem
		if err := rows.Scan(&item.ID, &item.Category, &item.ItemName, &item.Description, &item.IsActive, &item.CreatedAt); err != nil {
			return nil, apperrors.FromStorage(err, "checklist items")
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

// ExistingIDs returns which of the given item ids are present. Used by the
// recorder to verify every referenced checklist item before writing.
func (r *ChecklistItemRepository) ExistingIDs(ctx context.Context, ids []int) (map[int]bool, error) {
	existing := make(map[int]bool, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}

	rows, err := r.DB.Query(ctx,
		`SELECT id FROM checklist_items WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, apperrors.FromStorage(err, "checklist items")
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, apperrors.FromStorage(err, "checklist items")
		}
		existing[id] = true
	}
	return existing, rows.Err()
}

// Deactivate soft-disables an item. Items are never deleted; historical
// results keep pointing at them.
func (r *ChecklistItemRepository) Deactivate(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE checklist_items SET is_active=FALSE WHERE id=$1`, id)
	if err != nil {
		return apperrors.FromStorage(err, "checklist item")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("checklist item with id %d", id)
	}
	return nil
}
