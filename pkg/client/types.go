package client

import (
	"encoding/json"
	"time"
)

// User is the API's public user projection.
type User struct {
	ID          int64      `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Role        string     `json:"role"`
	Department  string     `json:"department"`
	EmployeeID  string     `json:"employeeId"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// TokenResponse is the login result.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
	User      User   `json:"user"`
}

// Module is a training module as served by the API.
type Module struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Content          json.RawMessage `json:"content,omitempty"`
	DisplayOrder     int             `json:"displayOrder"`
	EstimatedMinutes int             `json:"estimatedMinutes"`
	IsRequired       bool            `json:"isRequired"`
	IsActive         bool            `json:"isActive"`
}

// Progress is one user/module progress row.
type Progress struct {
	ID                 int64      `json:"id"`
	UserID             int64      `json:"userId"`
	ModuleID           string     `json:"moduleId"`
	Status             string     `json:"status"`
	ProgressPercentage int        `json:"progressPercentage"`
	StartedAt          *time.Time `json:"startedAt,omitempty"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
	TimeSpentSeconds   int64      `json:"timeSpentSeconds"`
	Version            int64      `json:"version"`
	Module             *Module    `json:"module,omitempty"`
}

// ProgressUpdate is the payload for reporting progress.
type ProgressUpdate struct {
	ProgressPercentage int    `json:"progressPercentage"`
	Status             string `json:"status,omitempty"`
	TimeSpentSeconds   int64  `json:"timeSpentSeconds,omitempty"`
	Version            *int64 `json:"version,omitempty"`
}

// ProgressSummary aggregates completion across all active modules.
type ProgressSummary struct {
	TotalModules                int     `json:"total_modules"`
	CompletedModules            int     `json:"completed_modules"`
	InProgressModules           int     `json:"in_progress_modules"`
	RequiredModules             int     `json:"required_modules"`
	RequiredCompleted           int     `json:"required_completed"`
	OverallCompletionPercentage float64 `json:"overall_completion_percentage"`
	TotalTimeSpentSeconds       int64   `json:"total_time_spent_seconds"`
}

// Quiz is a module's quiz without grading information.
type Quiz struct {
	ID           string         `json:"id"`
	ModuleID     string         `json:"moduleId"`
	Title        string         `json:"title"`
	PassingScore int            `json:"passingScore"`
	Questions    []QuizQuestion `json:"questions"`
}

// QuizQuestion is one question as presented to a trainee.
type QuizQuestion struct {
	ID           string          `json:"id"`
	Prompt       string          `json:"prompt"`
	Options      json.RawMessage `json:"options"`
	Points       int             `json:"points"`
	DisplayOrder int             `json:"displayOrder"`
}

// QuizAnswer is one selected option.
type QuizAnswer struct {
	QuestionID     string `json:"questionId"`
	SelectedOption int    `json:"selectedOption"`
}

// QuizResult is the graded outcome of a submission.
type QuizResult struct {
	QuizID       string               `json:"quizId"`
	Score        int                  `json:"score"`
	TotalPoints  int                  `json:"totalPoints"`
	Percentage   float64              `json:"percentage"`
	Passed       bool                 `json:"passed"`
	PassingScore int                  `json:"passingScore"`
	Questions    []QuizQuestionResult `json:"questions"`
}

// QuizQuestionResult is per-question grading feedback.
type QuizQuestionResult struct {
	QuestionID     string `json:"questionId"`
	SelectedOption int    `json:"selectedOption"`
	CorrectOption  int    `json:"correctOption"`
	Correct        bool   `json:"correct"`
	PointsEarned   int    `json:"pointsEarned"`
	Explanation    string `json:"explanation,omitempty"`
}
