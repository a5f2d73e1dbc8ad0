package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`                                           // Unique identifier for the user
	Email       string     `json:"email" db:"email" example:"jane.doe@epa.gov"`                      // User's email address, unique
	Password    string     `json:"-" db:"password_hash"`                                             // Hashed password (excluded from JSON)
	FirstName   string     `json:"firstName" db:"first_name" example:"Jane"`                         // User's first name
	LastName    string     `json:"lastName" db:"last_name" example:"Doe"`                            // User's last name
	Role        RoleType   `json:"role" db:"role" example:"employee"`                                // User's role (employee or admin)
	Department  string     `json:"department" db:"department" example:"Office of General Counsel"`   // Department the user belongs to
	EmployeeID  string     `json:"employeeId" db:"employee_id" example:"EPA-10433"`                  // Agency employee identifier, unique
	IsActive    bool       `json:"isActive" db:"is_active" example:"true"`                           // Inactive users cannot authenticate
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`                         // Timestamp of the last login (nullable)
	CreatedAt   time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`         // Timestamp when the user was created
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`         // Timestamp when the user was last updated
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
