package models

import "time"

// ChecklistItem is a named inspection point. Items are soft-disabled via
// IsActive, never deleted, so historical results stay referentially intact.
type ChecklistItem struct {
	ID          int       `json:"id"`
	Category    string    `json:"category"`
	ItemName    string    `json:"item_name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateChecklistItemRequest represents the request body for adding a checklist item
type CreateChecklistItemRequest struct {
	Category    string  `json:"category"`
	ItemName    string  `json:"item_name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}
