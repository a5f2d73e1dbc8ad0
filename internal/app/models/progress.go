package models

import (
	"time"

	"github.com/google/uuid"
)

// UserProgress tracks a single user's completion state for a single module,
// based on the 'user_progress' table. The (UserID, ModuleID) pair is unique.
// Rows are created lazily on the first start action.
type UserProgress struct {
	ID                 int64           `json:"id" db:"id"`
	UserID             int64           `json:"userId" db:"user_id"`
	ModuleID           uuid.UUID       `json:"moduleId" db:"module_id"`
	Status             ProgressStatus  `json:"status" db:"status" example:"in_progress"`
	ProgressPercentage int             `json:"progressPercentage" db:"progress_percentage" example:"40"`
	StartedAt          *time.Time      `json:"startedAt,omitempty" db:"started_at"`
	CompletedAt        *time.Time      `json:"completedAt,omitempty" db:"completed_at"`
	TimeSpentSeconds   int64           `json:"timeSpentSeconds" db:"time_spent_seconds"`
	Version            int64           `json:"version" db:"version"` // bumped on every update, used for conflict detection
	Module             *TrainingModule `json:"module,omitempty"`     // Relation, no db tag
}

// InferStatus resolves the effective status for a progress update.
//
// Precedence: an explicit status always wins, including regressions
// (completed back to in_progress is accepted, not guarded). With no
// explicit status, a percentage of 100 means completed, anything above
// zero means in_progress, and zero means not_started.
func InferStatus(percentage int, explicit ProgressStatus) ProgressStatus {
	if explicit != "" {
		return explicit
	}
	switch {
	case percentage >= 100:
		return StatusCompleted
	case percentage > 0:
		return StatusInProgress
	default:
		return StatusNotStarted
	}
}
