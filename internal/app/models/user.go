package models

import (
	"time"
)

// User defines a login account based on the 'users' table. Accounts are
// written by the admin dashboard; this service only reads them, mainly to
// chase studentId references that point at an account instead of a profile.
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Email     string    `json:"email" db:"email" example:"resident@hostel.edu"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Name      string    `json:"name" db:"name" example:"John Doe"`
	RoleType  RoleType  `json:"roleType" db:"role_type" example:"STUDENT"`
	IsActive  bool      `json:"isActive" db:"is_active" example:"true"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
