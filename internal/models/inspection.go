package models

import "time"

// Shift is the period during which an inspection occurred.
type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
	ShiftNight     Shift = "night"
)

func (s Shift) Valid() bool {
	switch s {
	case ShiftMorning, ShiftAfternoon, ShiftNight:
		return true
	}
	return false
}

// InspectionStatus is the inspection-level verdict. needs_attention is a
// valid stored value (it shows up in filters and the fleet summary) but the
// recorder never derives it; only pass and fail come out of DeriveOverallStatus.
type InspectionStatus string

const (
	StatusPass           InspectionStatus = "pass"
	StatusFail           InspectionStatus = "fail"
	StatusNeedsAttention InspectionStatus = "needs_attention"
)

func (s InspectionStatus) Valid() bool {
	switch s {
	case StatusPass, StatusFail, StatusNeedsAttention:
		return true
	}
	return false
}

// ChecklistStatus is the per-item verdict within an inspection.
type ChecklistStatus string

const (
	ChecklistOK            ChecklistStatus = "ok"
	ChecklistDefect        ChecklistStatus = "defect"
	ChecklistNotApplicable ChecklistStatus = "not_applicable"
)

func (s ChecklistStatus) Valid() bool {
	switch s {
	case ChecklistOK, ChecklistDefect, ChecklistNotApplicable:
		return true
	}
	return false
}

type DailyInspection struct {
	ID             int              `json:"id"`
	ForkliftID     int              `json:"forklift_id"`
	OperatorID     int              `json:"operator_id"`
	InspectionDate time.Time        `json:"inspection_date"`
	Shift          Shift            `json:"shift"`
	HoursMeter     *float64         `json:"hours_meter"`
	FuelLevel      *int             `json:"fuel_level"`
	OverallStatus  InspectionStatus `json:"overall_status"`
	Notes          *string          `json:"notes"`
	CreatedAt      time.Time        `json:"created_at"`
}

type InspectionResult struct {
	ID              int             `json:"id"`
	InspectionID    int             `json:"inspection_id"`
	ChecklistItemID int             `json:"checklist_item_id"`
	Status          ChecklistStatus `json:"status"`
	Notes           *string         `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ChecklistResultInput is one checklist outcome within a new inspection
type ChecklistResultInput struct {
	ChecklistItemID int             `json:"checklist_item_id"`
	Status          ChecklistStatus `json:"status"`
	Notes           *string         `json:"notes"`
}

// CreateInspectionRequest represents the request body for recording an inspection
type CreateInspectionRequest struct {
	ForkliftID       int                    `json:"forklift_id"`
	OperatorID       int                    `json:"operator_id"`
	InspectionDate   time.Time              `json:"inspection_date"`
	Shift            Shift                  `json:"shift"`
	HoursMeter       *float64               `json:"hours_meter"`
	FuelLevel        *int                   `json:"fuel_level"`
	Notes            *string                `json:"notes"`
	ChecklistResults []ChecklistResultInput `json:"checklist_results"`
}

// HistoryFilter holds the optional inspection history filters. Nil means
// "match all" for that dimension; filters are ANDed.
type HistoryFilter struct {
	ForkliftID *int
	StartDate  *time.Time
	EndDate    *time.Time
	Status     *InspectionStatus
}

// ResultDetail is an inspection result joined with its checklist item.
type ResultDetail struct {
	InspectionResult
	ChecklistItem ChecklistItemRef `json:"checklist_item"`
}

type ChecklistItemRef struct {
	Category    string  `json:"category"`
	ItemName    string  `json:"item_name"`
	Description *string `json:"description"`
}

type ForkliftRef struct {
	UnitNumber string `json:"unit_number"`
	Brand      string `json:"brand"`
	Model      string `json:"model"`
}

type OperatorRef struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
}

// InspectionDetail is the full read model for a single inspection.
type InspectionDetail struct {
	DailyInspection
	Results  []ResultDetail `json:"results"`
	Forklift ForkliftRef    `json:"forklift"`
	Operator OperatorRef    `json:"operator"`
}

// ForkliftStatusSummary is the per-forklift rollup used for maintenance
// prioritization: latest inspection recency plus recent defect volume.
type ForkliftStatusSummary struct {
	Forklift             *Forklift         `json:"forklift"`
	LastInspectionDate   *time.Time        `json:"last_inspection_date"`
	LastInspectionStatus *InspectionStatus `json:"last_inspection_status"`
	DaysSinceInspection  *int              `json:"days_since_inspection"`
	PendingDefects       int               `json:"pending_defects"`
}

// DeriveOverallStatus computes the inspection verdict from its checklist
// outcomes: any defect fails the inspection, otherwise it passes. An empty
// result list passes.
func DeriveOverallStatus(results []ChecklistResultInput) InspectionStatus {
	for _, r := range results {
		if r.Status == ChecklistDefect {
			return StatusFail
		}
	}
	return StatusPass
}
