package dto

import "time"

// APIResponse is the uniform response envelope used by every endpoint.
type APIResponse struct {
	Success   bool          `json:"success" example:"true"`
	Message   string        `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{}   `json:"data,omitempty"`
	Error     *ErrorDetail  `json:"error,omitempty"`
	Errors    []ErrorDetail `json:"errors,omitempty"`
	Timestamp time.Time     `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewSuccessResponse creates a success envelope with optional data and message.
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewErrorResponse creates an error envelope from a single error detail.
func NewErrorResponse(errorDetail *ErrorDetail) APIResponse {
	return APIResponse{
		Success:   false,
		Error:     errorDetail,
		Timestamp: time.Now(),
	}
}

// NewValidationErrorResponse creates an error envelope carrying multiple
// field-level validation errors.
func NewValidationErrorResponse(message string, errs []ErrorDetail) APIResponse {
	detail := NewErrorDetail(ErrorCodeValidationFailed, message)
	return APIResponse{
		Success:   false,
		Error:     detail,
		Errors:    errs,
		Timestamp: time.Now(),
	}
}
