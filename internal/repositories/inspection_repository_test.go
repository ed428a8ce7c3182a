package repositories

import (
	"testing"
	"time"

	"forklift-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHistoryQueryNoFilters(t *testing.T) {
	query, args := buildHistoryQuery(models.HistoryFilter{})

	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "ORDER BY inspection_date DESC, created_at DESC")
	assert.Empty(t, args)
}

func TestBuildHistoryQuerySingleFilter(t *testing.T) {
	id := 3
	query, args := buildHistoryQuery(models.HistoryFilter{ForkliftID: &id})

	assert.Contains(t, query, "WHERE forklift_id = $1")
	assert.NotContains(t, query, "AND")
	require.Len(t, args, 1)
	assert.Equal(t, 3, args[0])
}

func TestBuildHistoryQueryAllFilters(t *testing.T) {
	id := 3
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	status := models.StatusFail

	query, args := buildHistoryQuery(models.HistoryFilter{
		ForkliftID: &id,
		StartDate:  &start,
		EndDate:    &end,
		Status:     &status,
	})

	assert.Contains(t, query, "forklift_id = $1")
	assert.Contains(t, query, "inspection_date >= $2")
	assert.Contains(t, query, "inspection_date <= $3")
	assert.Contains(t, query, "overall_status = $4")
	require.Len(t, args, 4)
	assert.Equal(t, status, args[3].(models.InspectionStatus))
}

func TestBuildHistoryQueryPositionsStayDense(t *testing.T) {
	// Skipping the forklift filter must not leave a gap in placeholders
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	status := models.StatusPass

	query, args := buildHistoryQuery(models.HistoryFilter{
		StartDate: &start,
		Status:    &status,
	})

	assert.Contains(t, query, "inspection_date >= $1")
	assert.Contains(t, query, "overall_status = $2")
	assert.Len(t, args, 2)
}
