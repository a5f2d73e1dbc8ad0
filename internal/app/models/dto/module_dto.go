package dto

import "encoding/json"

// CreateModuleRequest represents the request to create a training module
type CreateModuleRequest struct {
	Title            string          `json:"title" binding:"required"`
	Description      string          `json:"description"`
	Content          json.RawMessage `json:"content" swaggertype:"object"`
	DisplayOrder     int             `json:"displayOrder" binding:"omitempty,min=0"`
	EstimatedMinutes int             `json:"estimatedMinutes" binding:"omitempty,min=0"`
	IsRequired       bool            `json:"isRequired"`
}

// UpdateModuleRequest represents the request to update a training module
type UpdateModuleRequest struct {
	Title            string          `json:"title" binding:"required"`
	Description      string          `json:"description"`
	Content          json.RawMessage `json:"content" swaggertype:"object"`
	DisplayOrder     int             `json:"displayOrder" binding:"omitempty,min=0"`
	EstimatedMinutes int             `json:"estimatedMinutes" binding:"omitempty,min=0"`
	IsRequired       bool            `json:"isRequired"`
	IsActive         *bool           `json:"isActive"`
}

// PaginationInfo represents pagination metadata
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
}
