// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	"finledger/database"
	router "finledger/internal/api"
	"finledger/internal/api/handler"
	"finledger/internal/config"
	"finledger/internal/repository"
	"finledger/internal/repository/postgres"
	"finledger/internal/service"
	"finledger/internal/token"
	"finledger/internal/util"
	"finledger/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	UserRepository      repository.UserRepository
	StatementRepository repository.StatementRepository

	// Services
	UserService   service.UserService
	LedgerService service.LedgerService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	pool, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = pool
	app.Logger.Info("Database connection established.")

	if err := database.Migrate(app.DB); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Logger.Info("Database migrations applied.")

	app.UserRepository = postgres.NewUserRepository(app.DB)
	app.StatementRepository = postgres.NewStatementRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	tokens := token.NewJWT(app.Config.JWTSecret)

	app.UserService = service.NewUserService(app.DB, app.UserRepository, tokens)
	app.LedgerService = service.NewLedgerService(
		app.DB, // This is the DBTxBeginner
		app.DB, // This is the DBExecutor
		app.UserRepository,
		app.StatementRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.Logger.Info("Services initialized.")

	userHandler := handler.NewUserHandler(app.UserService, app.Logger)
	statementHandler := handler.NewStatementHandler(app.LedgerService, app.Logger)
	app.HTTPHandler = router.NewRouter(userHandler, statementHandler, tokens, app.Logger)
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
