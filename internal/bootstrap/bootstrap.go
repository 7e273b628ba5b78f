package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/selim/gradepoint/internal/app/controllers"
	appMigrations "github.com/selim/gradepoint/internal/app/migrations"
	appRepos "github.com/selim/gradepoint/internal/app/repositories"
	appRoutes "github.com/selim/gradepoint/internal/app/routes"
	appServices "github.com/selim/gradepoint/internal/app/services"
	"github.com/selim/gradepoint/internal/config"
	"github.com/selim/gradepoint/internal/db"
	appMiddleware "github.com/selim/gradepoint/internal/middleware"
	"github.com/selim/gradepoint/internal/pkg/logger"
	"github.com/selim/gradepoint/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CatalogService    appServices.CatalogService // Interface type
	SessionService    appServices.SessionService // Interface type
	CatalogController *appControllers.CatalogController
	SessionController *appControllers.SessionController
	Repos             *appRepos.Repositories
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

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the course catalog.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

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

	// Seed catalog data (after migrations). The catalog service refuses to
	// start with an empty catalog, so a seeding failure is fatal here.
	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed catalog data")
		dbPool.Close()
		return nil, fmt.Errorf("catalog seeding failed: %w", err)
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// The catalog service loads the full catalog into memory at startup;
	// an unreachable or empty catalog fails the boot.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	catalogService, err := appServices.NewCatalogService(ctx,
		deps.Repos.FacultyRepository,
		deps.Repos.ProgramRepository,
		deps.Repos.CourseRepository,
	)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize catalog service")
		return nil, fmt.Errorf("failed to initialize catalog service: %w", err)
	}
	deps.CatalogService = catalogService

	deps.SessionService = appServices.NewSessionService(
		deps.Repos.SessionRepository,
		deps.CatalogService,
		appServices.SessionConfig{
			ClearLedgerOnFacultyChange: cfg.Calculator.ClearLedgerOnFacultyChange,
			CreditsPerYear:             cfg.Calculator.CreditsPerYear,
		},
	)

	deps.CatalogController = appControllers.NewCatalogController(deps.CatalogService, deps.SessionService)
	deps.SessionController = appControllers.NewSessionController(deps.SessionService)

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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.CatalogController,
		deps.SessionController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
