package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/hostelhub/internal/app/models"
	"github.com/yigit/hostelhub/internal/db"
	"github.com/yigit/hostelhub/internal/pkg/apperrors"
	"github.com/yigit/hostelhub/internal/pkg/events"
	"github.com/yigit/hostelhub/internal/pkg/logger"
)

// maxAllocationAttempts bounds how many times the candidate snapshot is
// refreshed when every candidate loses its occupancy race.
const maxAllocationAttempts = 3

// errRoomContended marks a candidate that filled up between the snapshot
// and the conditional occupancy write. It never escapes the service.
var errRoomContended = errors.New("room contended")

// AllocationService defines the interface for room allocation operations
type AllocationService interface {
	AllocateRoom(ctx context.Context, studentID int64, block *string) (*models.Student, *models.Room, error)
	DeallocateRoom(ctx context.Context, studentID int64) (*models.Student, error)
}

// allocationStudentStore is the slice of the student repository the
// allocation engine needs.
type allocationStudentStore interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	AssignRoomTx(ctx context.Context, tx pgx.Tx, studentID int64, roomNumber, block string) error
	ClearRoomTx(ctx context.Context, tx pgx.Tx, studentID int64) error
}

// allocationRoomStore is the slice of the room repository the allocation
// engine needs.
type allocationRoomStore interface {
	ListCandidates(ctx context.Context, block *string) ([]*models.Room, error)
	TryOccupyTx(ctx context.Context, tx pgx.Tx, roomID int64) (bool, error)
	ReleaseTx(ctx context.Context, tx pgx.Tx, number, block string) error
}

// txRunner runs a function inside a database transaction.
type txRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// allocationServiceImpl implements AllocationService
type allocationServiceImpl struct {
	students  allocationStudentStore
	rooms     allocationRoomStore
	tx        txRunner
	publisher EventPublisher
}

// NewAllocationService creates a new AllocationService
func NewAllocationService(students allocationStudentStore, rooms allocationRoomStore, tx txRunner, publisher EventPublisher) AllocationService {
	return &allocationServiceImpl{
		students:  students,
		rooms:     rooms,
		tx:        tx,
		publisher: publisher,
	}
}

// AllocateRoom places a student into the first room with free capacity,
// scanning candidates in ascending id order. The occupancy increment and
// the student's room assignment commit in one transaction, so a crash or
// a lost race leaves no half-applied state. When a candidate fills up
// concurrently the engine moves to the next one, refreshing the snapshot
// up to maxAllocationAttempts times before giving up.
func (s *allocationServiceImpl) AllocateRoom(ctx context.Context, studentID int64, block *string) (*models.Student, *models.Room, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, nil, err
	}
	if student.Allocated() {
		return nil, nil, apperrors.ErrAlreadyAllocated
	}

	for attempt := 0; attempt < maxAllocationAttempts; attempt++ {
		candidates, err := s.rooms.ListCandidates(ctx, block)
		if err != nil {
			return nil, nil, fmt.Errorf("error listing candidate rooms: %w", err)
		}
		if len(candidates) == 0 {
			return nil, nil, apperrors.ErrNoCapacity
		}

		for _, room := range candidates {
			err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
				ok, err := s.rooms.TryOccupyTx(ctx, tx, room.ID)
				if err != nil {
					return err
				}
				if !ok {
					return errRoomContended
				}
				return s.students.AssignRoomTx(ctx, tx, studentID, room.Number, room.Block)
			})
			if err == nil {
				room.Occupied++
				student.Room = &room.Number
				student.Block = &room.Block
				s.publishAllocated(ctx, student, room)
				return student, room, nil
			}
			if errors.Is(err, errRoomContended) {
				continue
			}
			// Any other failure (double allocation, storage error)
			// already rolled back the occupancy increment.
			return nil, nil, err
		}

		logger.Debug().
			Int64("student_id", studentID).
			Int("attempt", attempt+1).
			Msg("All candidate rooms contended, refreshing snapshot")
	}

	return nil, nil, apperrors.ErrNoCapacity
}

// DeallocateRoom vacates the student's current room. Clearing the
// assignment and decrementing occupancy commit together.
func (s *allocationServiceImpl) DeallocateRoom(ctx context.Context, studentID int64) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !student.Allocated() {
		return nil, apperrors.ErrNotAllocated
	}

	roomNumber, roomBlock := *student.Room, *student.Block

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.students.ClearRoomTx(ctx, tx, studentID); err != nil {
			return err
		}
		return s.rooms.ReleaseTx(ctx, tx, roomNumber, roomBlock)
	})
	if err != nil {
		return nil, err
	}

	student.Room = nil
	student.Block = nil
	s.publishDeallocated(ctx, studentID, roomNumber, roomBlock)
	return student, nil
}

func (s *allocationServiceImpl) publishAllocated(ctx context.Context, student *models.Student, room *models.Room) {
	if s.publisher == nil || !s.publisher.Enabled() {
		return
	}
	event := events.RoomAllocatedEvent{
		StudentID:  student.ID,
		RoomID:     room.ID,
		RoomNumber: room.Number,
		Block:      room.Block,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, events.QueueRoomAllocated, event); err != nil {
		logger.Warn().Err(err).Int64("student_id", student.ID).Msg("Failed to publish allocation event")
	}
}

func (s *allocationServiceImpl) publishDeallocated(ctx context.Context, studentID int64, number, block string) {
	if s.publisher == nil || !s.publisher.Enabled() {
		return
	}
	event := events.RoomDeallocatedEvent{
		StudentID:  studentID,
		RoomNumber: number,
		Block:      block,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, events.QueueRoomDeallocated, event); err != nil {
		logger.Warn().Err(err).Int64("student_id", studentID).Msg("Failed to publish deallocation event")
	}
}
