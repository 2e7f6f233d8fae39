package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/yigit/hostelhub/internal/app/models"
	appRepos "github.com/yigit/hostelhub/internal/app/repositories"
	"github.com/yigit/hostelhub/internal/pkg/apperrors"
	"github.com/yigit/hostelhub/internal/pkg/auth"
)

// defaultRooms is the starting room plan for a fresh installation.
var defaultRooms = []appModels.Room{
	{Number: "101", Block: "A", Capacity: 2},
	{Number: "102", Block: "A", Capacity: 2},
	{Number: "103", Block: "A", Capacity: 3},
	{Number: "201", Block: "B", Capacity: 2},
	{Number: "202", Block: "B", Capacity: 4},
}

// CreateDefaultData seeds the admin login account and the default room
// plan when they do not exist yet. Existing rows are left alone, so
// seeding is safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool, 0)
	roomRepo := appRepos.NewRoomRepository(dbPool, 0)

	lgr.Info().Msg("Checking/Creating default data (admin account, rooms)...")
	var finalErr error

	if _, err := userRepo.GetByEmail(ctx, "admin@hostelhub.local"); err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			lgr.Error().Err(err).Msg("Error checking admin account")
			finalErr = errors.Join(finalErr, err)
		} else {
			hash, err := auth.HashPassword("admin123")
			if err != nil {
				lgr.Error().Err(err).Msg("Error hashing default admin password")
				finalErr = errors.Join(finalErr, err)
			} else {
				admin := &appModels.User{
					Email:    "admin@hostelhub.local",
					Password: hash,
					Name:     "Warden",
					RoleType: appModels.RoleAdmin,
					IsActive: true,
				}
				if err := userRepo.Create(ctx, admin); err != nil {
					lgr.Error().Err(err).Msg("Error creating default admin account")
					finalErr = errors.Join(finalErr, err)
				} else {
					lgr.Info().Str("email", admin.Email).Msg("Default admin account created")
				}
			}
		}
	}

	for i := range defaultRooms {
		room := defaultRooms[i]
		if err := roomRepo.Create(ctx, &room); err != nil {
			if errors.Is(err, apperrors.ErrRoomAlreadyExists) {
				continue
			}
			lgr.Error().Err(err).Str("room", room.Number).Str("block", room.Block).Msg("Error creating default room")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
