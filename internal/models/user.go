package models

import "time"

// Role is the closed set of user roles. Each role maps to a fixed
// capability set; display logic should branch on capabilities, not
// on raw role strings.
type Role string

const (
	RoleOperator   Role = "operator"
	RoleMechanic   Role = "mechanic"
	RoleSupervisor Role = "supervisor"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOperator, RoleMechanic, RoleSupervisor:
		return true
	}
	return false
}

// Capabilities describes what a role may do through the API.
type Capabilities struct {
	CanRecordInspections bool `json:"can_record_inspections"`
	CanReviewHistory     bool `json:"can_review_history"`
	CanManageFleet       bool `json:"can_manage_fleet"`
	CanManageUsers       bool `json:"can_manage_users"`
}

// Capabilities returns the capability set for the role. Unknown roles
// get no capabilities.
func (r Role) Capabilities() Capabilities {
	switch r {
	case RoleOperator:
		return Capabilities{CanRecordInspections: true}
	case RoleMechanic:
		return Capabilities{CanReviewHistory: true}
	case RoleSupervisor:
		return Capabilities{CanRecordInspections: true, CanReviewHistory: true, CanManageFleet: true, CanManageUsers: true}
	}
	return Capabilities{}
}

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
}

// LoginRequest selects an existing user by id. Login is a trusted
// role selection, there are no credentials.
type LoginRequest struct {
	UserID int `json:"user_id"`
}

// LoginResponse returns the selected user and its capability set.
type LoginResponse struct {
	User         *User        `json:"user"`
	Capabilities Capabilities `json:"capabilities"`
}
