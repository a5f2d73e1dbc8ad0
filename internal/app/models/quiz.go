package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Quiz belongs to a training module, based on the 'quizzes' table.
type Quiz struct {
	ID           uuid.UUID      `json:"id" db:"id"`
	ModuleID     uuid.UUID      `json:"moduleId" db:"module_id"`
	Title        string         `json:"title" db:"title"`
	PassingScore int            `json:"passingScore" db:"passing_score" example:"70"` // percent of total points
	CreatedAt    time.Time      `json:"createdAt" db:"created_at"`
	Questions    []QuizQuestion `json:"questions,omitempty"` // Relation, no db tag
}

// QuizQuestion is a single question within a quiz, based on the
// 'quiz_questions' table. Options is an ordered JSON array of answer texts;
// CorrectOption indexes into it.
type QuizQuestion struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	QuizID        uuid.UUID       `json:"quizId" db:"quiz_id"`
	Prompt        string          `json:"prompt" db:"prompt"`
	Options       json.RawMessage `json:"options" db:"options" swaggertype:"array,string"`
	CorrectOption int             `json:"correctOption,omitempty" db:"correct_option"`
	Explanation   string          `json:"explanation,omitempty" db:"explanation"`
	Points        int             `json:"points" db:"points" example:"10"`
	DisplayOrder  int             `json:"displayOrder" db:"display_order"`
}
