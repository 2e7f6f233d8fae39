package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/hostelhub/internal/app/models"
	"github.com/yigit/hostelhub/internal/pkg/apperrors"
	"github.com/yigit/hostelhub/internal/pkg/dberrors"
)

const leaveColumns = `id, student_id, from_date, to_date, reason, status, checkout_date, checkin_date, created_at, updated_at`

// LeaveRepository handles database operations for leave applications
type LeaveRepository struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

// NewLeaveRepository creates a new leave repository
func NewLeaveRepository(db *pgxpool.Pool, timeout time.Duration) *LeaveRepository {
	return &LeaveRepository{
		db:      db,
		timeout: timeout,
	}
}

func scanLeave(row pgx.Row) (*models.Leave, error) {
	var leave models.Leave
	err := row.Scan(
		&leave.ID,
		&leave.StudentID,
		&leave.FromDate,
		&leave.ToDate,
		&leave.Reason,
		&leave.Status,
		&leave.CheckoutDate,
		&leave.CheckinDate,
		&leave.CreatedAt,
		&leave.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &leave, nil
}

// Create creates a new leave application in Pending state
func (r *LeaveRepository) Create(ctx context.Context, leave *models.Leave) error {
	ctx, cancel := boundCtx(ctx, r.timeout)
	defer cancel()

	query := `
		INSERT INTO leaves (student_id, from_date, to_date, reason, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		leave.StudentID, leave.FromDate, leave.ToDate, leave.Reason, leave.Status,
	).Scan(&leave.ID, &leave.CreatedAt, &leave.UpdatedAt)
	if err != nil {
		if dberrors.IsCheckViolation(err, "leaves_date_range") {
			return apperrors.ErrInvalidDateRange
		}
		return fmt.Errorf("error creating leave: %w", err)
	}

	return nil
}

// GetByID retrieves a leave application by ID
func (r *LeaveRepository) GetByID(ctx context.Context, id int64) (*models.Leave, error) {
	ctx, cancel := boundCtx(ctx, r.timeout)
	defer cancel()

	query := `SELECT ` + leaveColumns + ` FROM leaves WHERE id = $1`

	leave, err := scanLeave(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLeaveNotFound
		}
		return nil, fmt.Errorf("error retrieving leave: %w", err)
	}

	return leave, nil
}

// UpdateStatusIf moves a leave from one status to another as a single
// conditional write. The status guard makes concurrent decisions race-free:
// only one transition out of a given state can ever land. A timestamp
// column (checkout_date or checkin_date) is set in the same statement when
// the target state records one.
//
// It returns the updated leave, or apperrors.ErrLeaveNotFound /
// apperrors.ErrInvalidTransition after re-reading to tell the two
// zero-rows cases apart.
func (r *LeaveRepository) UpdateStatusIf(ctx context.Context, id int64, from, to models.LeaveStatus) (*models.Leave, error) {
	ctx, cancel := boundCtx(ctx, r.timeout)
	defer cancel()

	var tsColumn string
	switch to {
	case models.LeaveCheckedOut:
		tsColumn = "checkout_date = NOW(),"
	case models.LeaveCompleted:
		tsColumn = "checkin_date = NOW(),"
	}

	query := `
		UPDATE leaves
		SET status = $1, ` + tsColumn + ` updated_at = NOW()
		WHERE id = $2 AND status = $3
		RETURNING ` + leaveColumns

	leave, err := scanLeave(r.db.QueryRow(ctx, query, to, id, from))
	if err == nil {
		return leave, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("error updating leave status: %w", err)
	}

	// Zero rows: either the leave does not exist or it is no longer in
	// the expected source state. Re-read to report the right error.
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, apperrors.ErrInvalidTransition
}
