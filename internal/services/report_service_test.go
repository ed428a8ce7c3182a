package services

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"forklift-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectionHistoryCSV(t *testing.T) {
	svc, _, forkliftID, operatorID, itemIDs := newInspectionFixture(t)

	req := validRequest(forkliftID, operatorID, itemIDs)
	req.ChecklistResults[0].Status = models.ChecklistDefect
	_, err := svc.RecordInspection(context.Background(), req)
	require.NoError(t, err)

	reports := NewReportService(svc, nil)
	data, err := reports.InspectionHistoryCSV(context.Background(), models.HistoryFilter{})
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2, "header plus one row")
	assert.Equal(t, "overall_status", records[0][7])
	assert.Equal(t, "fail", records[1][7])
	assert.Equal(t, "morning", records[1][4])
}

func TestInspectionHistoryCSVEmpty(t *testing.T) {
	svc, _, _, _, _ := newInspectionFixture(t)

	reports := NewReportService(svc, nil)
	data, err := reports.InspectionHistoryCSV(context.Background(), models.HistoryFilter{})
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1, "header only")
}

func TestFleetStatusPDF(t *testing.T) {
	forklifts := newFakeForkliftStore()
	require.NoError(t, forklifts.Create(context.Background(), &models.Forklift{
		UnitNumber: "FL001", Brand: "Toyota", Model: "8FGU25", Status: models.ForkliftActive,
	}))

	fleet := NewFleetStatusService(forklifts, newFakeInspectionStore())
	reports := NewReportService(nil, fleet)

	data, err := reports.FleetStatusPDF(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"), "output should be a PDF document")
}
