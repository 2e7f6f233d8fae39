package services

import (
	"context"
	"time"

	"github.com/yigit/hostelhub/internal/app/models"
	"github.com/yigit/hostelhub/internal/app/models/dto"
	"github.com/yigit/hostelhub/internal/pkg/apperrors"
	"github.com/yigit/hostelhub/internal/pkg/events"
	"github.com/yigit/hostelhub/internal/pkg/logger"
)

// LeaveService defines the interface for leave lifecycle operations
type LeaveService interface {
	CreateLeave(ctx context.Context, req *dto.CreateLeaveRequest) (*models.Leave, error)
	GetLeaveByID(ctx context.Context, id int64) (*models.Leave, error)
	DecideLeave(ctx context.Context, id int64, decision models.LeaveStatus) (*models.Leave, error)
	CheckoutLeave(ctx context.Context, id int64) (*models.Leave, error)
	CheckinLeave(ctx context.Context, id int64) (*models.Leave, error)
}

// leaveStore is the slice of the leave repository the lifecycle needs.
type leaveStore interface {
	Create(ctx context.Context, leave *models.Leave) error
	GetByID(ctx context.Context, id int64) (*models.Leave, error)
	UpdateStatusIf(ctx context.Context, id int64, from, to models.LeaveStatus) (*models.Leave, error)
}

// leaveStudentStore verifies that a leave references an existing student.
type leaveStudentStore interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
}

// leaveServiceImpl implements LeaveService
type leaveServiceImpl struct {
	leaves    leaveStore
	students  leaveStudentStore
	publisher EventPublisher
}

// NewLeaveService creates a new LeaveService
func NewLeaveService(leaves leaveStore, students leaveStudentStore, publisher EventPublisher) LeaveService {
	return &leaveServiceImpl{
		leaves:    leaves,
		students:  students,
		publisher: publisher,
	}
}

// CreateLeave files a new leave application in Pending state
func (s *leaveServiceImpl) CreateLeave(ctx context.Context, req *dto.CreateLeaveRequest) (*models.Leave, error) {
	fromDate, err := time.Parse("2006-01-02", req.FromDate)
	if err != nil {
		return nil, apperrors.ErrInvalidDateRange
	}
	toDate, err := time.Parse("2006-01-02", req.ToDate)
	if err != nil {
		return nil, apperrors.ErrInvalidDateRange
	}
	if fromDate.After(toDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	if _, err := s.students.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	leave := &models.Leave{
		StudentID: req.StudentID,
		FromDate:  fromDate,
		ToDate:    toDate,
		Reason:    req.Reason,
		Status:    models.LeavePending,
	}
	if err := s.leaves.Create(ctx, leave); err != nil {
		return nil, err
	}

	return leave, nil
}

// GetLeaveByID retrieves a single leave application
func (s *leaveServiceImpl) GetLeaveByID(ctx context.Context, id int64) (*models.Leave, error) {
	return s.leaves.GetByID(ctx, id)
}

// DecideLeave approves or rejects a Pending application. The status guard
// in the store makes concurrent decisions race-free: the first decision
// wins and the loser gets a transition conflict.
func (s *leaveServiceImpl) DecideLeave(ctx context.Context, id int64, decision models.LeaveStatus) (*models.Leave, error) {
	if decision != models.LeaveApproved && decision != models.LeaveRejected {
		return nil, apperrors.ErrInvalidLeaveStatus
	}
	return s.transition(ctx, id, models.LeavePending, decision)
}

// CheckoutLeave records the student physically leaving on an approved
// application. The checkout timestamp lands in the same write.
func (s *leaveServiceImpl) CheckoutLeave(ctx context.Context, id int64) (*models.Leave, error) {
	return s.transition(ctx, id, models.LeaveApproved, models.LeaveCheckedOut)
}

// CheckinLeave records the student's return, completing the lifecycle.
func (s *leaveServiceImpl) CheckinLeave(ctx context.Context, id int64) (*models.Leave, error) {
	return s.transition(ctx, id, models.LeaveCheckedOut, models.LeaveCompleted)
}

func (s *leaveServiceImpl) transition(ctx context.Context, id int64, from, to models.LeaveStatus) (*models.Leave, error) {
	if !from.CanTransitionTo(to) {
		return nil, apperrors.ErrInvalidTransition
	}

	leave, err := s.leaves.UpdateStatusIf(ctx, id, from, to)
	if err != nil {
		return nil, err
	}

	s.publishStatusChanged(ctx, leave, from)
	return leave, nil
}

func (s *leaveServiceImpl) publishStatusChanged(ctx context.Context, leave *models.Leave, from models.LeaveStatus) {
	if s.publisher == nil || !s.publisher.Enabled() {
		return
	}
	event := events.LeaveStatusChangedEvent{
		LeaveID:    leave.ID,
		StudentID:  leave.StudentID,
		FromStatus: string(from),
		ToStatus:   string(leave.Status),
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, events.QueueLeaveStatusChange, event); err != nil {
		logger.Warn().Err(err).Int64("leave_id", leave.ID).Msg("Failed to publish leave status event")
	}
}
