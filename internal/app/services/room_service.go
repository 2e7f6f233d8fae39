package services

import (
	"context"

	"github.com/yigit/hostelhub/internal/app/models"
	"github.com/yigit/hostelhub/internal/app/models/dto"
)

// RoomService defines the interface for room administration
type RoomService interface {
	CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*models.Room, error)
	GetRoomByID(ctx context.Context, id int64) (*models.Room, error)
	UpdateRoom(ctx context.Context, id int64, req *dto.UpdateRoomRequest) (*models.Room, error)
}

// roomStore is the slice of the room repository administration needs.
type roomStore interface {
	Create(ctx context.Context, room *models.Room) error
	GetByID(ctx context.Context, id int64) (*models.Room, error)
	Update(ctx context.Context, id int64, capacity *int, maintenance *bool) (*models.Room, error)
}

// roomServiceImpl implements RoomService
type roomServiceImpl struct {
	rooms roomStore
}

// NewRoomService creates a new RoomService
func NewRoomService(rooms roomStore) RoomService {
	return &roomServiceImpl{rooms: rooms}
}

// CreateRoom registers a new empty room
func (s *roomServiceImpl) CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*models.Room, error) {
	room := &models.Room{
		Number:      req.Number,
		Block:       req.Block,
		Capacity:    req.Capacity,
		Maintenance: req.Maintenance,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// GetRoomByID retrieves a room
func (s *roomServiceImpl) GetRoomByID(ctx context.Context, id int64) (*models.Room, error) {
	return s.rooms.GetByID(ctx, id)
}

// UpdateRoom changes capacity or the maintenance flag. Capacity can never
// shrink below current occupancy.
func (s *roomServiceImpl) UpdateRoom(ctx context.Context, id int64, req *dto.UpdateRoomRequest) (*models.Room, error) {
	return s.rooms.Update(ctx, id, req.Capacity, req.Maintenance)
}
