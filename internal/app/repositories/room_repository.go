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

const roomColumns = `id, number, block, capacity, occupied, maintenance, created_at, updated_at`

// RoomRepository handles database operations for rooms
type RoomRepository struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *pgxpool.Pool, timeout time.Duration) *RoomRepository {
	return &RoomRepository{
		db:      db,
		timeout: timeout,
	}
}

func scanRoom(row pgx.Row) (*models.Room, error) {
	var room models.Room
	err := row.Scan(
		&room.ID,
		&room.Number,
		&room.Block,
		&room.Capacity,
		&room.Occupied,
		&room.Maintenance,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// Create creates a new room
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	ctx, cancel := boundCtx(ctx, r.timeout)
	defer cancel()

	query := `
		INSERT INTO rooms (number, block, capacity, occupied, maintenance)
		VALUES ($1, $2, $3, 0, $4)
		RETURNING id, occupied, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		room.Number, room.Block, room.Capacity, room.Maintenance,
	).Scan(&room.ID, &room.Occupied, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "rooms_number_block_unique") {
			return apperrors.ErrRoomAlreadyExists
		}
		return fmt.Errorf("error creating room: %w", err)
	}

	return nil
}

// GetByID retrieves a room by ID
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	ctx, cancel := boundCtx(ctx, r.timeout)
	defer cancel()

	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	room, err := scanRoom(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}

	return room, nil
}

// GetByNumberAndBlock retrieves a room by its number+block pair
func (r *RoomRepository) GetByNumberAndBlock(ctx context.Context, number, block string) (*models.Room, error) {
	ctx, cancel := boundCtx(ctx, r.timeout)
	defer cancel()

	query := `SELECT ` + roomColumns + ` FROM rooms WHERE number = $1 AND block = $2`

	room, err := scanRoom(r.db.QueryRow(ctx, query, number, block))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}

	return room, nil
}

// Update changes the capacity or maintenance flag of a room. Shrinking
// capacity below the current occupancy is rejected so the occupancy
// invariant cannot be violated from the admin side.
func (r *RoomRepository) Update(ctx context.Context, id int64, capacity *int, maintenance *bool) (*models.Room, error) {
	ctx, cancel := boundCtx(ctx, r.timeout)
	defer cancel()

	query := `
		UPDATE rooms
		SET capacity = COALESCE($1, capacity),
		    maintenance = COALESCE($2, maintenance),
		    updated_at = NOW()
		WHERE id = $3 AND ($1 IS NULL OR $1 >= occupied)
		RETURNING ` + roomColumns

	room, err := scanRoom(r.db.QueryRow(ctx, query, capacity, maintenance, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Disambiguate: missing room vs capacity below occupancy
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, apperrors.ErrCapacityTooSmall
		}
		return nil, fmt.Errorf("error updating room: %w", err)
	}

	return room, nil
}

// ListCandidates returns rooms with free capacity in deterministic id
// order. Rooms under maintenance never come back. The snapshot may be
// stale by the time the caller acts on it; TryOccupyTx is the gate.
func (r *RoomRepository) ListCandidates(ctx context.Context, block *string) ([]*models.Room, error) {
	ctx, cancel := boundCtx(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT ` + roomColumns + `
		FROM rooms
		WHERE occupied < capacity AND NOT maintenance AND ($1::text IS NULL OR block = $1)
		ORDER BY id ASC
	`

	rows, err := r.db.Query(ctx, query, block)
	if err != nil {
		return nil, fmt.Errorf("error listing candidate rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*models.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning room: %w", err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rooms, nil
}

// TryOccupyTx increments the occupancy of a room only while capacity
// remains. Zero rows affected means the room filled up (or went under
// maintenance) since the candidate snapshot; the caller moves on to the
// next candidate.
func (r *RoomRepository) TryOccupyTx(ctx context.Context, tx pgx.Tx, roomID int64) (bool, error) {
	query := `
		UPDATE rooms
		SET occupied = occupied + 1, updated_at = NOW()
		WHERE id = $1 AND occupied < capacity AND NOT maintenance
	`

	tag, err := tx.Exec(ctx, query, roomID)
	if err != nil {
		return false, fmt.Errorf("error occupying room: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

// ReleaseTx decrements the occupancy of a room, guarded against going
// negative.
func (r *RoomRepository) ReleaseTx(ctx context.Context, tx pgx.Tx, number, block string) error {
	query := `
		UPDATE rooms
		SET occupied = occupied - 1, updated_at = NOW()
		WHERE number = $1 AND block = $2 AND occupied > 0
	`

	tag, err := tx.Exec(ctx, query, number, block)
	if err != nil {
		return fmt.Errorf("error releasing room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRoomNotFound
	}

	return nil
}
