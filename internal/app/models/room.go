package models

import (
	"time"
)

// Room statuses derived from occupancy. Only the maintenance override is
// stored; the rest is computed so occupancy and status cannot drift apart.
const (
	RoomStatusAvailable   = "Available"
	RoomStatusFull        = "Full"
	RoomStatusMaintenance = "Maintenance"
)

// Room defines a finite-capacity housing unit based on the 'rooms' table.
// The number+block pair is unique. A DB check constraint keeps
// 0 <= occupied <= capacity.
type Room struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Number      string    `json:"number" db:"number" example:"101"`
	Block       string    `json:"block" db:"block" example:"A"`
	Capacity    int       `json:"capacity" db:"capacity" example:"2"`
	Occupied    int       `json:"occupied" db:"occupied" example:"1"`
	Maintenance bool      `json:"maintenance" db:"maintenance" example:"false"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// Status computes the room status from the occupancy pair. The maintenance
// override wins over both derived states.
func (r *Room) Status() string {
	if r.Maintenance {
		return RoomStatusMaintenance
	}
	if r.Occupied >= r.Capacity {
		return RoomStatusFull
	}
	return RoomStatusAvailable
}

// HasCapacity reports whether the room can take one more resident.
func (r *Room) HasCapacity() bool {
	return !r.Maintenance && r.Occupied < r.Capacity
}
