package repositories

import (
	"context"
	"fmt"
	"time"

	"forklift-backend/internal/apperrors"
	"forklift-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type InspectionRepository struct {
	DB *pgxpool.Pool
}

func NewInspectionRepository(db *pgxpool.Pool) *InspectionRepository {
	return &InspectionRepository{DB: db}
}

// CreateWithResults persists the inspection and its result rows in one
// transaction. Either everything lands or nothing does.
func (r *InspectionRepository) CreateWithResults(ctx context.Context, inspection *models.DailyInspection, results []models.ChecklistResultInput) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return apperrors.FromStorage(err, "inspection")
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO daily_inspections(forklift_id, operator_id, inspection_date, shift, hours_meter, fuel_level, overall_status, notes)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		inspection.ForkliftID, inspection.OperatorID, inspection.InspectionDate, inspection.Shift,
		inspection.HoursMeter, inspection.FuelLevel, inspection.OverallStatus, inspection.Notes,
	).Scan(&inspection.ID, &inspection.CreatedAt)
	if err != nil {
		return apperrors.FromStorage(err, "inspection")
	}

	for _, result := range results {
		_, err = tx.Exec(ctx,
			`INSERT INTO inspection_results(inspection_id, checklist_item_id, status, notes)
			 VALUES($1, $2, $3, $4)`,
			inspection.ID, result.ChecklistItemID, result.Status, result.Notes,
		)
		if err != nil {
			return apperrors.FromStorage(err, "inspection result")
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return apperrors.FromStorage(err, "inspection")
	}
	return nil
}

const inspectionColumns = `id, forklift_id, operator_id, inspection_date, shift, hours_meter, fuel_level, overall_status, notes, created_at`

// buildHistoryQuery assembles the filtered history SELECT. Supplied filters
// are ANDed; nil filters match everything.
func buildHistoryQuery(filter models.HistoryFilter) (string, []any) {
	query := `SELECT ` + inspectionColumns + ` FROM daily_inspections`
	var args []any

	add := func(clause string, value any) {
		if len(args) == 0 {
			query += ` WHERE `
		} else {
			query += ` AND `
		}
		args = append(args, value)
		query += fmt.Sprintf(clause, len(args))
	}

	if filter.ForkliftID != nil {
		add(`forklift_id = $%d`, *filter.ForkliftID)
	}
	if filter.StartDate != nil {
		add(`inspection_date >= $%d`, *filter.StartDate)
	}
	if filter.EndDate != nil {
		add(`inspection_date <= $%d`, *filter.EndDate)
	}
	if filter.Status != nil {
		add(`overall_status = $%d`, *filter.Status)
	}

	query += ` ORDER BY inspection_date DESC, created_at DESC`
	return query, args
}

// History returns inspections matching the filter, newest first.
func (r *InspectionRepository) History(ctx context.Context, filter models.HistoryFilter) ([]*models.DailyInspection, error) {
	query, args := buildHistoryQuery(filter)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.FromStorage(err, "inspections")
	}
	defer rows.Close()

	var inspections []*models.DailyInspection
	for rows.Next() {
		var ins models.DailyInspection
		err := rows.Scan(&ins.ID, &ins.ForkliftID, &ins.OperatorID, &ins.InspectionDate, &ins.Shift,
			&ins.HoursMeter, &ins.FuelLevel, &ins.OverallStatus, &ins.Notes, &ins.CreatedAt)
		if err != nil {
			return nil, apperrors.FromStorage(err, "inspections")
		}
		inspections = append(inspections, &ins)
	}
	return inspections, rows.Err()
}

// GetDetail returns the inspection joined with its forklift, operator and
// per-item results. A missing id returns (nil, nil) so the read path can
// answer 404 instead of an error.
func (r *InspectionRepository) GetDetail(ctx context.Context, id int) (*models.InspectionDetail, error) {
	var detail models.InspectionDetail
	err := r.DB.QueryRow(ctx,
		`SELECT i.id, i.forklift_id, i.operator_id, i.inspection_date, i.shift,
		        i.hours_meter, i.fuel_level, i.overall_status, i.notes, i.created_at,
		        f.unit_number, f.brand, f.model,
		        u.full_name, u.username
		 FROM daily_inspections i
		 JOIN forklifts f ON i.forklift_id = f.id
		 JOIN users u ON i.operator_id = u.id
		 WHERE i.id = $1`, id,
	).Scan(&detail.ID, &detail.ForkliftID, &detail.OperatorID, &detail.InspectionDate, &detail.Shift,
		&detail.HoursMeter, &detail.FuelLevel, &detail.OverallStatus, &detail.Notes, &detail.CreatedAt,
		&detail.Forklift.UnitNumber, &detail.Forklift.Brand, &detail.Forklift.Model,
		&detail.Operator.FullName, &detail.Operator.Username)
	if err != nil {
		werr := apperrors.FromStorage(err, "inspection")
		if apperrors.IsNotFound(werr) {
			return nil, nil
		}
		return nil, werr
	}

	rows, err := r.DB.Query(ctx,
		`SELECT r.id, r.inspection_id, r.checklist_item_id, r.status, r.notes, r.created_at,
		        c.category, c.item_name, c.description
		 FROM inspection_results r
		 JOIN checklist_items c ON r.checklist_item_id = c.id
		 WHERE r.inspection_id = $1
		 ORDER BY r.id ASC`, id)
	if err != nil {
		return nil, apperrors.FromStorage(err, "inspection results")
	}
	defer rows.Close()

	for rows.Next() {
		var res models.ResultDetail
		err := rows.Scan(&res.ID, &res.InspectionID, &res.ChecklistItemID, &res.Status, &res.Notes, &res.CreatedAt,
			&res.ChecklistItem.Category, &res.ChecklistItem.ItemName, &res.ChecklistItem.Description)
		if err != nil {
			return nil, apperrors.FromStorage(err, "inspection results")
		}
		detail.Results = append(detail.Results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.FromStorage(err, "inspection results")
	}
	return &detail, nil
}

// LatestSnapshot is a forklift's most recent inspection date and verdict.
type LatestSnapshot struct {
	InspectionDate time.Time
	OverallStatus  models.InspectionStatus
}

// LatestByForklift returns each forklift's most recent inspection, by
// inspection date with creation time as tiebreak. One aggregate query for
// the whole fleet instead of a round-trip per forklift.
func (r *InspectionRepository) LatestByForklift(ctx context.Context) (map[int]LatestSnapshot, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT DISTINCT ON (forklift_id) forklift_id, inspection_date, overall_status
		 FROM daily_inspections
		 ORDER BY forklift_id, inspection_date DESC, created_at DESC`)
	if err != nil {
		return nil, apperrors.FromStorage(err, "latest inspections")
	}
	defer rows.Close()

	latest := make(map[int]LatestSnapshot)
	for rows.Next() {
		var forkliftID int
		var snap LatestSnapshot
		if err := rows.Scan(&forkliftID, &snap.InspectionDate, &snap.OverallStatus); err != nil {
			return nil, apperrors.FromStorage(err, "latest inspections")
		}
		latest[forkliftID] = snap
	}
	return latest, rows.Err()
}

// DefectCountsSince returns, per forklift, the number of defect results in
// inspections dated on or after the cutoff.
func (r *InspectionRepository) DefectCountsSince(ctx context.Context, cutoff time.Time) (map[int]int, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT i.forklift_id, COUNT(*)
		 FROM inspection_results r
		 JOIN daily_inspections i ON r.inspection_id = i.id
		 WHERE r.status = 'defect' AND i.inspection_date >= $1
		 GROUP BY i.forklift_id`, cutoff)
	if err != nil {
		return nil, apperrors.FromStorage(err, "defect counts")
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var forkliftID, count int
		if err := rows.Scan(&forkliftID, &count); err != nil {
			return nil, apperrors.FromStorage(err, "defect counts")
		}
		counts[forkliftID] = count
	}
	return counts, rows.Err()
}
