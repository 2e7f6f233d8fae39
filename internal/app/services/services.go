package services

import (
	"context"

	"github.com/yigit/hostelhub/internal/app/repositories"
	"github.com/yigit/hostelhub/internal/db"
)

// EventPublisher publishes best-effort domain events. Implementations
// must never block request flow on broker failures.
type EventPublisher interface {
	Enabled() bool
	Publish(ctx context.Context, queue string, event interface{}) error
}

// Services holds all the service instances
type Services struct {
	StudentService    StudentService
	RoomService       RoomService
	AllocationService AllocationService
	LeaveService      LeaveService
	ListingService    ListingService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, database *db.PostgresDB, publisher EventPublisher) *Services {
	resolver := NewIdentityResolver(repos.StudentRepository, repos.UserRepository)

	return &Services{
		StudentService:    NewStudentService(repos.StudentRepository),
		RoomService:       NewRoomService(repos.RoomRepository),
		AllocationService: NewAllocationService(repos.StudentRepository, repos.RoomRepository, database, publisher),
		LeaveService:      NewLeaveService(repos.LeaveRepository, repos.StudentRepository, publisher),
		ListingService:    NewListingService(repos.ListingRepository, resolver),
	}
}
