package dto

import (
	"time"

	"github.com/ethos-training/ethos/internal/app/models"
)

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName" binding:"required"`
	Department string `json:"department" binding:"required"`
	EmployeeID string `json:"employeeId" binding:"required"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries the issued access token and the authenticated user.
type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expiresIn" example:"86400"` // seconds
	User      UserResponse `json:"user"`
}

// UserResponse is the public projection of a user.
type UserResponse struct {
	ID          int64           `json:"id" example:"1"`
	Email       string          `json:"email" example:"jane.doe@epa.gov"`
	FirstName   string          `json:"firstName" example:"Jane"`
	LastName    string          `json:"lastName" example:"Doe"`
	Role        models.RoleType `json:"role" example:"employee"`
	Department  string          `json:"department" example:"Office of General Counsel"`
	EmployeeID  string          `json:"employeeId" example:"EPA-10433"`
	LastLoginAt *time.Time      `json:"lastLoginAt,omitempty"`
}

// UserListResponse is a page of user accounts with pagination metadata.
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination PaginationInfo `json:"pagination"`
}

// FromUser converts a user model to its public projection.
func FromUser(user *models.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Role:        user.Role,
		Department:  user.Department,
		EmployeeID:  user.EmployeeID,
		LastLoginAt: user.LastLoginAt,
	}
}
