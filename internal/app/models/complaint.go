package models

import (
	"time"
)

// Complaint defines a maintenance complaint based on the 'complaints' table.
// Complaint CRUD lives in the dashboard backend; this service only lists
// complaints and resolves their studentId references.
type Complaint struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	StudentID   int64     `json:"studentId" db:"student_id" example:"5"`
	Category    string    `json:"category" db:"category" example:"Internet"`
	Title       string    `json:"title" db:"title" example:"WiFi Not Working"`
	Description string    `json:"description" db:"description"`
	Status      string    `json:"status" db:"status" example:"Open"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	Student *StudentSummary `json:"student,omitempty"`
}
