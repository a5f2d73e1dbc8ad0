package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TrainingModule defines a unit of ethics-training content based on the
// 'training_modules' table. Content is opaque JSON rendered by the clients.
// Modules are never hard-deleted; IsActive is cleared instead.
type TrainingModule struct {
	ID               uuid.UUID       `json:"id" db:"id"`
	Title            string          `json:"title" db:"title" example:"Gifts and Gratuities"`
	Description      string          `json:"description" db:"description"`
	Content          json.RawMessage `json:"content,omitempty" db:"content" swaggertype:"object"`
	DisplayOrder     int             `json:"displayOrder" db:"display_order" example:"1"`
	EstimatedMinutes int             `json:"estimatedMinutes" db:"estimated_minutes" example:"25"`
	IsRequired       bool            `json:"isRequired" db:"is_required" example:"true"`
	IsActive         bool            `json:"isActive" db:"is_active" example:"true"`
	CreatedAt        time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time       `json:"updatedAt" db:"updated_at"`
}
