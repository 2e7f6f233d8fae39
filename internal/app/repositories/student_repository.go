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

const studentColumns = `id, name, email, phone, course, year, room, block, status, created_at, updated_at`

// StudentRepository handles database operations for resident profiles
type StudentRepository struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool, timeout time.Duration) *StudentRepository {
	return &StudentRepository{
		db:      db,
		timeout: timeout,
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.Phone,
		&student.Course,
		&student.Year,
		&student.Room,
		&student.Block,
		&student.Status,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Create creates a new resident profile
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	ctx, cancel := boundCtx(ctx, r.timeout)
	defer cancel()

	query := `
		INSERT INTO students (name, email, phone, course, year, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.Name, student.Email, student.Phone, student.Course, student.Year, student.Status,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a resident profile by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	ctx, cancel := boundCtx(ctx, r.timeout)
	defer cancel()

	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByEmail retrieves a resident profile by email
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	ctx, cancel := boundCtx(ctx, r.timeout)
	defer cancel()

	query := `SELECT ` + studentColumns + ` FROM students WHERE email = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// Update updates the profile fields of a student. Room and block are
// deliberately excluded; only the allocation engine writes those.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	ctx, cancel := boundCtx(ctx, r.timeout)
	defer cancel()

	query := `
		UPDATE students
		SET name = $1, email = $2, phone = $3, course = $4, year = $5, status = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.Name, student.Email, student.Phone, student.Course, student.Year, student.Status, student.ID,
	).Scan(&student.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrStudentNotFound
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	return nil
}

// AssignRoomTx writes the room assignment within an allocation transaction.
// It only succeeds when the student does not already hold a room, so a
// concurrent double-allocation loses here and rolls back.
func (r *StudentRepository) AssignRoomTx(ctx context.Context, tx pgx.Tx, studentID int64, roomNumber, block string) error {
	query := `
		UPDATE students
		SET room = $1, block = $2, updated_at = NOW()
		WHERE id = $3 AND room IS NULL
	`

	tag, err := tx.Exec(ctx, query, roomNumber, block, studentID)
	if err != nil {
		return fmt.Errorf("error assigning room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAlreadyAllocated
	}

	return nil
}

// ClearRoomTx removes the room assignment within a deallocation transaction.
func (r *StudentRepository) ClearRoomTx(ctx context.Context, tx pgx.Tx, studentID int64) error {
	query := `
		UPDATE students
		SET room = NULL, block = NULL, updated_at = NOW()
		WHERE id = $1 AND room IS NOT NULL
	`

	tag, err := tx.Exec(ctx, query, studentID)
	if err != nil {
		return fmt.Errorf("error clearing room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotAllocated
	}

	return nil
}
