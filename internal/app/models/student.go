package models

import (
	"time"
)

// Student defines a resident profile based on the 'students' table.
// Room and Block are nil until the allocation engine assigns a room;
// they are always set and cleared together.
type Student struct {
	ID        int64         `json:"id" db:"id" example:"1"`
	Name      string        `json:"name" db:"name" example:"John Doe"`
	Email     string        `json:"email" db:"email" example:"resident@hostel.edu"`
	Phone     string        `json:"phone" db:"phone" example:"+90 555 000 0000"`
	Course    string        `json:"course" db:"course" example:"Computer Engineering"`
	Year      int           `json:"year" db:"year" example:"2"`
	Room      *string       `json:"room" db:"room" example:"101"`
	Block     *string       `json:"block" db:"block" example:"A"`
	Status    StudentStatus `json:"status" db:"status" example:"Active"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" db:"updated_at"`
}

// Allocated reports whether the student currently has a room assigned.
func (s *Student) Allocated() bool {
	return s.Room != nil
}
