package repositories

import (
	"context"

	"forklift-backend/internal/apperrors"
	"forklift-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ForkliftRepository struct {
	DB *pgxpool.Pool
}

func NewForkliftRepository(db *pgxpool.Pool) *ForkliftRepository {
	return &ForkliftRepository{DB: db}
}

func (r *ForkliftRepository) Create(ctx context.Context, f *models.Forklift) error {
	if f.Status == "" {
		f.Status = models.ForkliftActive
	}
	err := r.DB.QueryRow(ctx,
		`INSERT INTO forklifts(unit_number, brand, model, year, serial_number, status)
         VALUES($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at`,
		f.UnitNumber, f.Brand, f.Model, f.Year, f.SerialNumber, f.Status,
	).Scan(&f.ID, &f.CreatedAt)
	return apperrors.FromStorage(err, "forklift")
}

func (r *ForkliftRepository) Get(ctx context.Context, id int) (*models.Forklift, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, unit_number, brand, model, year, serial_number, status, created_at
         FROM forklifts WHERE id=$1`, id)

	var f models.Forklift
	err := row.Scan(&f.ID, &f.UnitNumber, &f.Brand, &f.Model, &f.Year, &f.SerialNumber, &f.Status, &f.CreatedAt)
	if err != nil {
		return nil, apperrors.FromStorage(err, "forklift")
	}
	return &f, nil
}

// Exists reports whether a forklift with the given id exists.
func (r *ForkliftRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM forklifts WHERE id=$1)`, id).Scan(&exists)
	if err != nil {
		return false, apperrors.FromStorage(err, "forklift")
	}
	return exists, nil
}

// List returns forklifts ordered by unit number. A non-nil status filters
// to that lifecycle status.
func (r *ForkliftRepository) List(ctx context.Context, status *models.ForkliftStatus) ([]*models.Forklift, error) {
	query := `SELECT id, unit_number, brand, model, year, serial_number, status, created_at
	          FROM forklifts`
	args := []any{}
	if status != nil {
		query += ` WHERE status=$1`
		args = append(args, *status)
	}
	query += ` ORDER BY unit_number ASC`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.FromStorage(err, "forklifts")
	}
	defer rows.Close()

	var forklifts []*models.Forklift
	for rows.Next() {
		var f models.Forklift
		if err := rows.Scan(&f.ID, &f.UnitNumber, &f.Brand, &f.Model, &f.Year, &f.SerialNumber, &f.Status, &f.CreatedAt); err != nil {
			return nil, apperrors.FromStorage(err, "forklifts")
		}
		forklifts = append(forklifts, &f)
	}
	return forklifts, rows.Err()
}

// UpdateStatus changes a unit's lifecycle status.
func (r *ForkliftRepository) UpdateStatus(ctx context.Context, id int, status models.ForkliftStatus) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE forklifts SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return apperrors.FromStorage(err, "forklift")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("forklift with id %d", id)
	}
	return nil
}
