// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "userhub/internal/api"
	"userhub/internal/api/handler"
	"userhub/internal/config"
	"userhub/internal/migrations"
	"userhub/internal/repository"
	"userhub/internal/repository/postgres"
	"userhub/internal/security"
	"userhub/internal/service"
	"userhub/internal/util"
	"userhub/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	UserRepository repository.UserRepository

	// Services
	UserService   service.UserService
	HealthService service.HealthService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	// 4. Apply schema migrations
	if err := migrations.Run(ctx, app.DB.DB); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Logger.Info("Database migrations applied.")

	// 5. Initialize Repositories
	app.UserRepository = postgres.NewUserRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	// 6. Initialize Services
	hasher := security.NewBcryptHasher()
	app.UserService = service.NewUserService(app.DB, app.UserRepository, hasher)
	app.HealthService = service.NewHealthService(app.DB)
	app.Logger.Info("Services initialized.")

	// 7. Initialize HTTP Handlers and Router
	userHandler := handler.NewUserHandler(app.UserService, app.Logger)
	healthHandler := handler.NewHealthHandler(app.HealthService, app.Logger)
	metaHandler := handler.NewMetaHandler(app.Logger)
	app.HTTPHandler = router.NewRouter(userHandler, healthHandler, metaHandler, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
