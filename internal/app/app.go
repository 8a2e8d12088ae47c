package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/orbitpress/magazine/config"
	"github.com/orbitpress/magazine/internal/db"
	"github.com/orbitpress/magazine/internal/magazine"
	"github.com/orbitpress/magazine/internal/rest"
	"github.com/orbitpress/magazine/internal/rpc"
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	database := db.New(dbConnect)

	var announcer *magazine.Announcer
	if cfg.Announce.Enabled() {
		announcer = magazine.NewAnnouncer(
			cfg.Announce.BaseURL,
			cfg.Announce.Email,
			cfg.Announce.Password,
			cfg.Announce.Timeout.Duration,
			logger,
		)
	}

	manager := magazine.NewManager(database, magazine.Config{
		TokenSecret:   cfg.Auth.TokenSecret,
		SessionTTL:    cfg.Auth.SessionTTL.Duration,
		InviteBaseURL: cfg.Auth.InviteBaseURL,
	}, announcer, logger)

	handler := rest.NewHandler(manager, rpc.New(logger, manager), logger)

	return &App{
		DB:     database,
		Logger: logger,
		Echo:   handler.RegisterRoutes(),
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
