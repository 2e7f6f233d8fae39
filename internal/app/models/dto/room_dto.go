package dto

import "github.com/yigit/hostelhub/internal/app/models"

// CreateRoomRequest is the payload for registering a room.
type CreateRoomRequest struct {
	Number      string `json:"number" binding:"required,roomnum"`
	Block       string `json:"block" binding:"required,blockcode"`
	Capacity    int    `json:"capacity" binding:"required,min=1"`
	Maintenance bool   `json:"maintenance"`
}

// UpdateRoomRequest is the payload for admin room edits. Occupied is not
// editable; it only moves through the allocation engine.
type UpdateRoomRequest struct {
	Capacity    *int  `json:"capacity" binding:"omitempty,min=1"`
	Maintenance *bool `json:"maintenance"`
}

// RoomResponse mirrors models.Room plus the derived status string.
type RoomResponse struct {
	ID          int64  `json:"id"`
	Number      string `json:"number"`
	Block       string `json:"block"`
	Capacity    int    `json:"capacity"`
	Occupied    int    `json:"occupied"`
	Maintenance bool   `json:"maintenance"`
	Status      string `json:"status" example:"Available"`
}

// NewRoomResponse maps a room model onto the response shape, deriving status.
func NewRoomResponse(room *models.Room) RoomResponse {
	return RoomResponse{
		ID:          room.ID,
		Number:      room.Number,
		Block:       room.Block,
		Capacity:    room.Capacity,
		Occupied:    room.Occupied,
		Maintenance: room.Maintenance,
		Status:      room.Status(),
	}
}
