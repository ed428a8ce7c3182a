package models

import "time"

// ForkliftStatus is the lifecycle status of a unit.
type ForkliftStatus string

const (
	ForkliftActive      ForkliftStatus = "active"
	ForkliftMaintenance ForkliftStatus = "maintenance"
	ForkliftInactive    ForkliftStatus = "inactive"
)

func (s ForkliftStatus) Valid() bool {
	switch s {
	case ForkliftActive, ForkliftMaintenance, ForkliftInactive:
		return true
	}
	return false
}

type Forklift struct {
	ID           int            `json:"id"`
	UnitNumber   string         `json:"unit_number"`
	Brand        string         `json:"brand"`
	Model        string         `json:"model"`
	Year         int            `json:"year"`
	SerialNumber string         `json:"serial_number"`
	Status       ForkliftStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
}

// CreateForkliftRequest represents the request body for registering a forklift
type CreateForkliftRequest struct {
	UnitNumber   string         `json:"unit_number"`
	Brand        string         `json:"brand"`
	Model        string         `json:"model"`
	Year         int            `json:"year"`
	SerialNumber string         `json:"serial_number"`
	Status       ForkliftStatus `json:"status"`
}

// UpdateForkliftStatusRequest changes a unit's lifecycle status
type UpdateForkliftStatusRequest struct {
	Status ForkliftStatus `json:"status"`
}
