// Package app assembles the auth-service: configuration, logging, the
// user directory, and the service layer.
package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/ecommerce/auth-service/internal/config"
	"github.com/ecommerce/auth-service/internal/db"
	"github.com/ecommerce/auth-service/internal/logging"
	"github.com/ecommerce/auth-service/internal/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	manager db.RepositoryManager
	service *services.Service
}

// NewApp wires the application together. With an empty DatabaseDSN the
// directory lives in memory; otherwise it is backed by PostgreSQL and the
// schema migrations run on startup. New users get uuid identifiers.
func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	var manager db.RepositoryManager
	if cfg.DatabaseDSN == "" {
		manager = db.NewInMemoryRepositoryManager()
	} else {
		var err error
		manager, err = db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
	}

	service := services.NewService(manager.Users(), cfg, logger).
		WithIDGenerator(uuid.NewString)

	return &App{config: cfg, logger: logger, manager: manager, service: service}, nil
}

func (a *App) Service() *services.Service {
	return a.service
}

func (a *App) Logger() logging.Logger {
	return a.logger
}

func (a *App) Close() error {
	return a.manager.Close()
}
