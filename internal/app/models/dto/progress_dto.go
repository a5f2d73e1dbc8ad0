package dto

import (
	"time"

	"github.com/ethos-training/ethos/internal/app/models"
)

// UpdateProgressRequest represents a progress update for a module.
// Status may be omitted; it is then inferred from the percentage.
type UpdateProgressRequest struct {
	ProgressPercentage int                   `json:"progressPercentage" binding:"min=0,max=100"`
	Status             models.ProgressStatus `json:"status" binding:"omitempty,oneof=not_started in_progress completed"`
	TimeSpentSeconds   int64                 `json:"timeSpentSeconds" binding:"omitempty,min=0"`
	Version            *int64                `json:"version"` // omit to check against the version just read
}

// ProgressSummaryResponse aggregates a user's progress across all active modules.
type ProgressSummaryResponse struct {
	TotalModules                int     `json:"total_modules"`
	CompletedModules            int     `json:"completed_modules"`
	InProgressModules           int     `json:"in_progress_modules"`
	RequiredModules             int     `json:"required_modules"`
	RequiredCompleted           int     `json:"required_completed"`
	OverallCompletionPercentage float64 `json:"overall_completion_percentage"`
	TotalTimeSpentSeconds       int64   `json:"total_time_spent_seconds"`
}

// AdminOverviewRow is one user's aggregate in the admin overview.
type AdminOverviewRow struct {
	UserID            int64   `json:"userId"`
	EmployeeID        string  `json:"employeeId"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Department        string  `json:"department"`
	CompletedModules  int     `json:"completedModules"`
	RequiredModules   int     `json:"requiredModules"`
	RequiredCompleted int     `json:"requiredCompleted"`
	CompletionPercent float64 `json:"completionPercent"`
}

// ProgressExportRow is one flattened user/module row for the admin export.
// The column order of the generated report is fixed and matches the field
// order here.
type ProgressExportRow struct {
	EmployeeID   string
	Name         string
	Email        string
	Department   string
	ModuleTitle  string
	DisplayOrder int
	IsRequired   bool
	Status       models.ProgressStatus
	Percentage   int
	StartedAt    *time.Time
	CompletedAt  *time.Time
	TimeSpent    int64
}
