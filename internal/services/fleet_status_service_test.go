package services

import (
	"context"
	"testing"
	"time"

	"forklift-backend/internal/models"
	"forklift-backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFleetStatusSummary(t *testing.T) {
	forklifts := newFakeForkliftStore()
	inspections := newFakeInspectionStore()

	fl1 := &models.Forklift{UnitNumber: "FL001", Brand: "Toyota", Model: "8FGU25", Status: models.ForkliftActive}
	fl2 := &models.Forklift{UnitNumber: "FL002", Brand: "Hyster", Model: "H50", Status: models.ForkliftMaintenance}
	fl3 := &models.Forklift{UnitNumber: "FL003", Brand: "Crown", Model: "FC5200", Status: models.ForkliftActive}
	require.NoError(t, forklifts.Create(context.Background(), fl1))
	require.NoError(t, forklifts.Create(context.Background(), fl2))
	require.NoError(t, forklifts.Create(context.Background(), fl3))

	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	// FL001 inspected 2 days ago with a pass; FL002 failed 10 days ago;
	// FL003 never inspected.
	inspections.latest[fl1.ID] = repositories.LatestSnapshot{
		InspectionDate: now.AddDate(0, 0, -2),
		OverallStatus:  models.StatusPass,
	}
	inspections.latest[fl2.ID] = repositories.LatestSnapshot{
		InspectionDate: now.AddDate(0, 0, -10),
		OverallStatus:  models.StatusFail,
	}

	// Two recent defects for FL002, one stale defect outside the window
	inspections.defects = []defectEntry{
		{forkliftID: fl2.ID, date: now.AddDate(0, 0, -10)},
		{forkliftID: fl2.ID, date: now.AddDate(0, 0, -29)},
		{forkliftID: fl2.ID, date: now.AddDate(0, 0, -31)},
	}

	svc := NewFleetStatusService(forklifts, inspections)
	svc.now = func() time.Time { return now }

	summaries, err := svc.Summary(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	// Ascending by unit number
	assert.Equal(t, "FL001", summaries[0].Forklift.UnitNumber)
	assert.Equal(t, "FL002", summaries[1].Forklift.UnitNumber)
	assert.Equal(t, "FL003", summaries[2].Forklift.UnitNumber)

	first := summaries[0]
	require.NotNil(t, first.LastInspectionDate)
	require.NotNil(t, first.LastInspectionStatus)
	require.NotNil(t, first.DaysSinceInspection)
	assert.Equal(t, models.StatusPass, *first.LastInspectionStatus)
	assert.Equal(t, 2, *first.DaysSinceInspection)
	assert.Equal(t, 0, first.PendingDefects)

	second := summaries[1]
	assert.Equal(t, models.StatusFail, *second.LastInspectionStatus)
	assert.Equal(t, 10, *second.DaysSinceInspection)
	assert.Equal(t, 2, second.PendingDefects, "defect outside the 30-day window must not count")

	// Never-inspected unit reports nulls and zero defects
	third := summaries[2]
	assert.Nil(t, third.LastInspectionDate)
	assert.Nil(t, third.LastInspectionStatus)
	assert.Nil(t, third.DaysSinceInspection)
	assert.Equal(t, 0, third.PendingDefects)
}

func TestFleetStatusNeedsAttentionLatest(t *testing.T) {
	forklifts := newFakeForkliftStore()
	inspections := newFakeInspectionStore()

	fl := &models.Forklift{UnitNumber: "FL001", Brand: "Toyota", Model: "8FGU25", Status: models.ForkliftActive}
	require.NoError(t, forklifts.Create(context.Background(), fl))

	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	// Latest inspection was flagged needs_attention 2 days ago with one
	// defect; an older failed inspection 40 days ago falls outside the
	// defect window.
	inspections.latest[fl.ID] = repositories.LatestSnapshot{
		InspectionDate: now.AddDate(0, 0, -2),
		OverallStatus:  models.StatusNeedsAttention,
	}
	inspections.defects = []defectEntry{
		{forkliftID: fl.ID, date: now.AddDate(0, 0, -2)},
		{forkliftID: fl.ID, date: now.AddDate(0, 0, -40)},
	}

	svc := NewFleetStatusService(forklifts, inspections)
	svc.now = func() time.Time { return now }

	summaries, err := svc.Summary(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	summary := summaries[0]
	require.NotNil(t, summary.LastInspectionStatus)
	assert.Equal(t, models.StatusNeedsAttention, *summary.LastInspectionStatus)
	assert.Equal(t, 2, *summary.DaysSinceInspection)
	assert.Equal(t, 1, summary.PendingDefects)
}

func TestFleetStatusEmptyFleet(t *testing.T) {
	svc := NewFleetStatusService(newFakeForkliftStore(), newFakeInspectionStore())

	summaries, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
