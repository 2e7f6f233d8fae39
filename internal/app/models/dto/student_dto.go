package dto

import "github.com/yigit/hostelhub/internal/app/models"

// CreateStudentRequest is the payload for creating a resident profile.
type CreateStudentRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Phone  string `json:"phone" binding:"omitempty,phone"`
	Course string `json:"course"`
	Year   int    `json:"year" binding:"omitempty,min=1,max=8"`
}

// UpdateStudentRequest is the payload for profile edits. Room and block are
// deliberately absent; only the allocation engine may touch them.
type UpdateStudentRequest struct {
	Name   string `json:"name" binding:"required"`
	Phone  string `json:"phone" binding:"omitempty,phone"`
	Course string `json:"course"`
	Year   int    `json:"year" binding:"omitempty,min=1,max=8"`
	Status string `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

// AllocationResponse is returned by the allocation endpoints.
type AllocationResponse struct {
	Student *models.Student `json:"student"`
	Room    *RoomResponse   `json:"room,omitempty"`
}
