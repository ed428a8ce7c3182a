package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"strconv"

	"forklift-backend/internal/archive"
	"forklift-backend/internal/models"
	"forklift-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// ReportService exports inspection history as CSV and the fleet status
// summary as PDF. When an archive uploader is configured, generated
// reports are also pushed to object storage; that upload is best-effort
// and never fails the request.
type ReportService struct {
	Inspections *InspectionService
	FleetStatus *FleetStatusService
	Uploader    *archive.Uploader
}

func NewReportService(inspections *InspectionService, fleetStatus *FleetStatusService) *ReportService {
	return &ReportService{
		Inspections: inspections,
		FleetStatus: fleetStatus,
	}
}

// SetUploader wires the optional archive uploader.
func (s *ReportService) SetUploader(uploader *archive.Uploader) {
	s.Uploader = uploader
}

// InspectionHistoryCSV renders the filtered history as CSV, newest first.
func (s *ReportService) InspectionHistoryCSV(ctx context.Context, filter models.HistoryFilter) ([]byte, error) {
	inspections, err := s.Inspections.History(ctx, filter)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"id", "forklift_id", "operator_id", "inspection_date", "shift", "hours_meter", "fuel_level", "overall_status", "notes"})
	for _, ins := range inspections {
		hours := ""
		if ins.HoursMeter != nil {
			hours = strconv.FormatFloat(*ins.HoursMeter, 'f', 2, 64)
		}
		fuel := ""
		if ins.FuelLevel != nil {
			fuel = strconv.Itoa(*ins.FuelLevel)
		}
		notes := ""
		if ins.Notes != nil {
			notes = *ins.Notes
		}
		w.Write([]string{
			strconv.Itoa(ins.ID),
			strconv.Itoa(ins.ForkliftID),
			strconv.Itoa(ins.OperatorID),
			ins.InspectionDate.Format(timeutil.DateTimeLayout),
			string(ins.Shift),
			hours,
			fuel,
			string(ins.OverallStatus),
			notes,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	data := buf.Bytes()
	s.archiveReport(ctx, "inspection-history.csv", data)
	return data, nil
}

// FleetStatusPDF renders the fleet status summary as a PDF table.
func (s *ReportService) FleetStatusPDF(ctx context.Context) ([]byte, error) {
	summaries, err := s.FleetStatus.Summary(ctx)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "") // Landscape for more columns
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(277, 10, "Fleet Status Summary", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(277, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Table header
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(30, 7, "Unit", "1", 0, "C", true, 0, "")
	pdf.CellFormat(55, 7, "Brand / Model", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Status", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 7, "Last Inspection", "1", 0, "C", true, 0, "")
	pdf.CellFormat(42, 7, "Last Verdict", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Days Since", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Pending Defects", "1", 1, "C", true, 0, "")

	// Table rows
	pdf.SetFont("Arial", "", 10)
	for _, sum := range summaries {
		lastDate := "never"
		lastStatus := "-"
		daysSince := "-"
		if sum.LastInspectionDate != nil {
			lastDate = sum.LastInspectionDate.Format(timeutil.DateLayout)
		}
		if sum.LastInspectionStatus != nil {
			lastStatus = string(*sum.LastInspectionStatus)
		}
		if sum.DaysSinceInspection != nil {
			daysSince = strconv.Itoa(*sum.DaysSinceInspection)
		}

		pdf.CellFormat(30, 6, sum.Forklift.UnitNumber, "1", 0, "C", false, 0, "")
		pdf.CellFormat(55, 6, fmt.Sprintf("%s %s", sum.Forklift.Brand, sum.Forklift.Model), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, string(sum.Forklift.Status), "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 6, lastDate, "1", 0, "C", false, 0, "")
		pdf.CellFormat(42, 6, lastStatus, "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 6, daysSince, "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, strconv.Itoa(sum.PendingDefects), "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	data := buf.Bytes()
	s.archiveReport(ctx, "fleet-status.pdf", data)
	return data, nil
}

func (s *ReportService) archiveReport(ctx context.Context, name string, data []byte) {
	if s.Uploader == nil {
		return
	}
	key := fmt.Sprintf("reports/%s/%s", timeutil.Now().Format(timeutil.DateLayout), name)
	if err := s.Uploader.Put(ctx, key, data); err != nil {
		log.Printf("[Report] Archive upload failed for %s: %v", key, err)
	}
}
