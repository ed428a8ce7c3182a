package services

import (
	"context"
	"testing"
	"time"

	"forklift-backend/internal/apperrors"
	"forklift-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInspectionFixture(t *testing.T) (*InspectionService, *fakeInspectionStore, int, int, []int) {
	t.Helper()

	users := newFakeUserStore()
	forklifts := newFakeForkliftStore()
	items := newFakeChecklistStore()
	inspections := newFakeInspectionStore()

	operator := &models.User{Username: "jsmith", FullName: "John Smith", Role: models.RoleOperator}
	require.NoError(t, users.Create(context.Background(), operator))

	forklift := &models.Forklift{UnitNumber: "FL001", Brand: "Toyota", Model: "8FGU25", Year: 2020, SerialNumber: "SN-1", Status: models.ForkliftActive}
	require.NoError(t, forklifts.Create(context.Background(), forklift))

	var itemIDs []int
	for _, name := range []string{"Brakes", "Horn", "Forks"} {
		item := &models.ChecklistItem{Category: "safety", ItemName: name, IsActive: true}
		require.NoError(t, items.Create(context.Background(), item))
		itemIDs = append(itemIDs, item.ID)
	}

	svc := NewInspectionService(inspections, forklifts, users, items)
	return svc, inspections, forklift.ID, operator.ID, itemIDs
}

func validRequest(forkliftID, operatorID int, itemIDs []int) *models.CreateInspectionRequest {
	results := make([]models.ChecklistResultInput, 0, len(itemIDs))
	for _, id := range itemIDs {
		results = append(results, models.ChecklistResultInput{ChecklistItemID: id, Status: models.ChecklistOK})
	}
	return &models.CreateInspectionRequest{
		ForkliftID:       forkliftID,
		OperatorID:       operatorID,
		InspectionDate:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Shift:            models.ShiftMorning,
		ChecklistResults: results,
	}
}

func TestRecordInspectionDerivesPass(t *testing.T) {
	svc, store, forkliftID, operatorID, itemIDs := newInspectionFixture(t)

	inspection, err := svc.RecordInspection(context.Background(), validRequest(forkliftID, operatorID, itemIDs))
	require.NoError(t, err)

	assert.Equal(t, models.StatusPass, inspection.OverallStatus)
	assert.NotZero(t, inspection.ID)
	require.Len(t, store.inspections, 1)
	assert.Len(t, store.inspections[0].results, 3)
}

func TestRecordInspectionDerivesFailOnDefect(t *testing.T) {
	svc, _, forkliftID, operatorID, itemIDs := newInspectionFixture(t)

	req := validRequest(forkliftID, operatorID, itemIDs)
	req.ChecklistResults[1].Status = models.ChecklistDefect

	inspection, err := svc.RecordInspection(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFail, inspection.OverallStatus)
}

func TestRecordInspectionEmptyResultsPass(t *testing.T) {
	svc, _, forkliftID, operatorID, _ := newInspectionFixture(t)

	req := validRequest(forkliftID, operatorID, nil)
	inspection, err := svc.RecordInspection(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPass, inspection.OverallStatus)
}

func TestRecordInspectionUnknownForklift(t *testing.T) {
	svc, store, _, operatorID, itemIDs := newInspectionFixture(t)

	req := validRequest(999, operatorID, itemIDs)
	_, err := svc.RecordInspection(context.Background(), req)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Empty(t, store.inspections, "nothing should be written")
}

func TestRecordInspectionUnknownOperator(t *testing.T) {
	svc, store, forkliftID, _, itemIDs := newInspectionFixture(t)

	req := validRequest(forkliftID, 999, itemIDs)
	_, err := svc.RecordInspection(context.Background(), req)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Empty(t, store.inspections)
}

func TestRecordInspectionUnknownChecklistItem(t *testing.T) {
	svc, store, forkliftID, operatorID, itemIDs := newInspectionFixture(t)

	req := validRequest(forkliftID, operatorID, append(itemIDs, 999))
	_, err := svc.RecordInspection(context.Background(), req)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Empty(t, store.inspections)
}

func TestRecordInspectionValidation(t *testing.T) {
	svc, _, forkliftID, operatorID, itemIDs := newInspectionFixture(t)

	badFuel := 120
	negativeHours := -5.0

	tests := []struct {
		name   string
		mutate func(req *models.CreateInspectionRequest)
	}{
		{"missing date", func(req *models.CreateInspectionRequest) { req.InspectionDate = time.Time{} }},
		{"invalid shift", func(req *models.CreateInspectionRequest) { req.Shift = "evening" }},
		{"fuel level over 100", func(req *models.CreateInspectionRequest) { req.FuelLevel = &badFuel }},
		{"negative hours meter", func(req *models.CreateInspectionRequest) { req.HoursMeter = &negativeHours }},
		{"invalid checklist status", func(req *models.CreateInspectionRequest) {
			req.ChecklistResults[0].Status = "broken"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(forkliftID, operatorID, itemIDs)
			tt.mutate(req)
			_, err := svc.RecordInspection(context.Background(), req)
			assert.True(t, apperrors.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestHistoryRejectsInvalidStatus(t *testing.T) {
	svc, _, _, _, _ := newInspectionFixture(t)

	bad := models.InspectionStatus("broken")
	_, err := svc.History(context.Background(), models.HistoryFilter{Status: &bad})
	assert.True(t, apperrors.IsValidation(err))
}

func TestHistoryFiltersAreANDed(t *testing.T) {
	svc, _, forkliftID, operatorID, itemIDs := newInspectionFixture(t)

	// Two passes on different dates and one fail
	for i, day := range []int{10, 12} {
		req := validRequest(forkliftID, operatorID, itemIDs)
		req.InspectionDate = time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC)
		if i == 1 {
			req.ChecklistResults[0].Status = models.ChecklistDefect
		}
		_, err := svc.RecordInspection(context.Background(), req)
		require.NoError(t, err)
	}

	status := models.StatusFail
	start := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	got, err := svc.History(context.Background(), models.HistoryFilter{
		ForkliftID: &forkliftID,
		StartDate:  &start,
		Status:     &status,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.StatusFail, got[0].OverallStatus)
}

func TestGetDetailMissingID(t *testing.T) {
	svc, _, _, _, _ := newInspectionFixture(t)

	detail, err := svc.GetDetail(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, detail)
}
