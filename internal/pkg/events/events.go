// Package events publishes domain events to RabbitMQ. Publishing is
// best-effort: errors are logged and returned so callers can ignore
// failures without interrupting the main request flow.
package events

import "time"

// Queue names
const (
	QueueRoomAllocated     = "room.allocated"
	QueueRoomDeallocated   = "room.deallocated"
	QueueLeaveStatusChange = "leave.status_changed"
)

// RoomAllocatedEvent is emitted after a student is placed into a room.
type RoomAllocatedEvent struct {
	StudentID  int64     `json:"studentId"`
	RoomID     int64     `json:"roomId"`
	RoomNumber string    `json:"roomNumber"`
	Block      string    `json:"block"`
	OccurredAt time.Time `json:"occurredAt"`
}

// RoomDeallocatedEvent is emitted after a student vacates a room.
type RoomDeallocatedEvent struct {
	StudentID  int64     `json:"studentId"`
	RoomNumber string    `json:"roomNumber"`
	Block      string    `json:"block"`
	OccurredAt time.Time `json:"occurredAt"`
}

// LeaveStatusChangedEvent is emitted after a leave application moves
// between lifecycle states.
type LeaveStatusChangedEvent struct {
	LeaveID    int64     `json:"leaveId"`
	StudentID  int64     `json:"studentId"`
	FromStatus string    `json:"fromStatus"`
	ToStatus   string    `json:"toStatus"`
	OccurredAt time.Time `json:"occurredAt"`
}
