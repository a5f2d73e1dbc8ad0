package models

// RoleType defines the user role type
type RoleType string

const (
	RoleEmployee RoleType = "employee"
	RoleAdmin    RoleType = "admin"
)

// Valid reports whether the role is one of the known roles.
func (r RoleType) Valid() bool {
	return r == RoleEmployee || r == RoleAdmin
}

// ProgressStatus defines the completion state of a user/module pair
type ProgressStatus string

const (
	StatusNotStarted ProgressStatus = "not_started"
	StatusInProgress ProgressStatus = "in_progress"
	StatusCompleted  ProgressStatus = "completed"
)

// Valid reports whether the status is one of the known states.
func (s ProgressStatus) Valid() bool {
	return s == StatusNotStarted || s == StatusInProgress || s == StatusCompleted
}
