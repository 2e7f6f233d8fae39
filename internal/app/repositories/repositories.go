package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository    *UserRepository
	StudentRepository *StudentRepository
	RoomRepository    *RoomRepository
	LeaveRepository   *LeaveRepository
	ListingRepository *ListingRepository
}

// NewRepositories initializes all repositories. queryTimeout bounds every
// storage call that arrives without a deadline of its own.
func NewRepositories(db *pgxpool.Pool, queryTimeout time.Duration) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db, queryTimeout),
		StudentRepository: NewStudentRepository(db, queryTimeout),
		RoomRepository:    NewRoomRepository(db, queryTimeout),
		LeaveRepository:   NewLeaveRepository(db, queryTimeout),
		ListingRepository: NewListingRepository(db, queryTimeout),
	}
}

// boundCtx attaches the repository query timeout unless the caller
// already carries a deadline.
func boundCtx(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
