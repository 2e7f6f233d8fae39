package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/hostelhub/internal/app/controllers"
	appMigrations "github.com/yigit/hostelhub/internal/app/migrations"
	appRepos "github.com/yigit/hostelhub/internal/app/repositories"
	appRoutes "github.com/yigit/hostelhub/internal/app/routes"
	appServices "github.com/yigit/hostelhub/internal/app/services"
	"github.com/yigit/hostelhub/internal/config"
	"github.com/yigit/hostelhub/internal/db"
	appMiddleware "github.com/yigit/hostelhub/internal/middleware"
	pkgAuth "github.com/yigit/hostelhub/internal/pkg/auth"
	"github.com/yigit/hostelhub/internal/pkg/cache"
	"github.com/yigit/hostelhub/internal/pkg/events"
	"github.com/yigit/hostelhub/internal/pkg/helpers"
	"github.com/yigit/hostelhub/internal/pkg/logger"
	"github.com/yigit/hostelhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos             *appRepos.Repositories
	Services          *appServices.Services
	StudentController *appControllers.StudentController
	RoomController    *appControllers.RoomController
	LeaveController   *appControllers.LeaveController
	ListingController *appControllers.ListingController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	JWTService        *pkgAuth.JWTService
	Publisher         *events.Publisher
	RedisClient       *redis.Client
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database.Pool, lgr); err != nil {
		// Seeding is convenience, not correctness
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool, cfg.QueryTimeout())

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.Auth.JWTSecret,
		AccessTokenExp: helpers.ParseDuration(cfg.Auth.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.Auth.Issuer,
	})

	deps.Publisher = events.NewPublisher(cfg.Broker.URL)
	if deps.Publisher.Enabled() {
		lgr.Info().Msg("Domain event publishing enabled")
	}

	deps.RedisClient = cache.NewClient(cfg)

	deps.Services = appServices.NewServices(deps.Repos, database, deps.Publisher)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, cfg.Auth.Enabled)

	deps.StudentController = appControllers.NewStudentController(deps.Services.StudentService, deps.Services.AllocationService)
	deps.RoomController = appControllers.NewRoomController(deps.Services.RoomService)
	deps.LeaveController = appControllers.NewLeaveController(deps.Services.LeaveService)
	deps.ListingController = appControllers.NewListingController(deps.Services.ListingService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := appMiddleware.RegisterCustomValidators(); err != nil {
		lgr.Error().Err(err).Msg("Failed to register custom validators")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.Metrics())

	// Optional listing cache; nil when Redis is absent
	cacheTTL := helpers.ParseDuration(cfg.Redis.CacheTTL, 30*time.Second)
	cacheMW := appMiddleware.ResponseCache(deps.RedisClient, cacheTTL)

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.RoomController,
		deps.LeaveController,
		deps.ListingController,
		deps.AuthMiddleware,
		cacheMW,
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
