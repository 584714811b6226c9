package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/serafaleo/wingman/internal/config"
	"github.com/serafaleo/wingman/internal/domain"
	"github.com/serafaleo/wingman/internal/platform/logger"
	"github.com/serafaleo/wingman/internal/platform/postgres"
	"github.com/serafaleo/wingman/internal/service"
	"github.com/serafaleo/wingman/internal/service/auth"
)

// application holds the configuration and the fully wired service graph.
// Everything is constructed once at startup; there is no container.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userService     *service.UserService
	aircraftService *service.ResourceService[*domain.Aircraft]
	flightService   *service.ResourceService[*domain.Flight]
	tokenIssuer     auth.TokenIssuer
}

// newApplication loads configuration and wires every dependency,
// innermost first: stores, then auth components, then services.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := openDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	tokenIssuer, err := auth.NewTokenIssuer(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db)
	aircraftStore := postgres.NewPostgresAircraftStore(db)
	flightStore := postgres.NewPostgresFlightStore(db)

	app := &application{
		config: cfg,
		logger: appLogger,
		db:     db,

		tokenIssuer: tokenIssuer,
		userService: service.NewUserService(
			userStore,
			tokenIssuer,
			auth.NewBcryptHasher(),
			appLogger,
		),
		aircraftService: service.NewResourceService[*domain.Aircraft](
			"aircraft", aircraftStore, appLogger),
		flightService: service.NewResourceService[*domain.Flight](
			"flight", flightStore, appLogger),
	}

	appLogger.Info("application initialized",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", slog.Any("error", err))
		}
	}
}
