package models

import (
	"time"
)

// Notice defines an announcement based on the 'notices' table. Notices are
// written by the dashboard backend and only listed here.
type Notice struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Title     string    `json:"title" db:"title" example:"Water outage on Saturday"`
	Body      string    `json:"body" db:"body"`
	Audience  string    `json:"audience" db:"audience" example:"All"`
	PostedBy  string    `json:"postedBy" db:"posted_by" example:"Warden"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
