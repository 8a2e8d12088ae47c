package wire

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/spf13/viper"

	"github.com/orbitpress/magazine/internal/db"
	"github.com/orbitpress/magazine/internal/magazine"
	"github.com/orbitpress/magazine/internal/rest"
	"github.com/orbitpress/magazine/internal/rpc"
)

func ProvideRepository(logger *slog.Logger) (*db.Repository, func(), error) {
	url := viper.GetString("DATABASE_URL")

	opt, err := pg.ParseURL(url)
	if err != nil {
		logger.Error("failed to parse database URL", "error", err)
		return nil, nil, err
	}

	opt.MaxRetries = 3
	opt.PoolSize = viper.GetInt("DB_MAX_CONNS")

	lifetimeStr := viper.GetString("DB_MAX_CONN_LIFETIME")
	if lifetimeStr != "" {
		lifetime, err := time.ParseDuration(lifetimeStr)
		if err != nil {
			logger.Error("failed to parse DB_MAX_CONN_LIFETIME", "error", err, "value", lifetimeStr)
			return nil, nil, err
		}
		opt.MaxConnAge = lifetime
	}

	conn := pg.Connect(opt)

	if viper.GetBool("DB_LOG_QUERIES") {
		conn.AddQueryHook(db.NewQueryHook(logger))
		logger.Info("SQL query logging enabled")
	}

	ctx := context.Background()
	if err := conn.Ping(ctx); err != nil {
		logger.Error("failed to ping database", "error", err)
		conn.Close()
		return nil, nil, err
	}

	repo := db.New(conn)
	cleanup := func() {
		if err := repo.Close(); err != nil {
			logger.Error("error closing database connection", "error", err)
		}
	}

	return repo, cleanup, nil
}

func ProvideLogger() *slog.Logger {
	return slog.New(
		slog.NewTextHandler(
			os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo},
		),
	)
}

func ProvideManager(repo *db.Repository, logger *slog.Logger) *magazine.Manager {
	cfg := magazine.Config{
		TokenSecret:   viper.GetString("TOKEN_SECRET"),
		InviteBaseURL: viper.GetString("INVITE_BASE_URL"),
	}

	ttlStr := viper.GetString("SESSION_TTL")
	if ttlStr != "" {
		if ttl, err := time.ParseDuration(ttlStr); err == nil {
			cfg.SessionTTL = ttl
		} else {
			logger.Error("failed to parse SESSION_TTL", "error", err, "value", ttlStr)
		}
	}

	var announcer *magazine.Announcer
	if baseURL := viper.GetString("ANNOUNCE_BASE_URL"); baseURL != "" {
		announcer = magazine.NewAnnouncer(
			baseURL,
			viper.GetString("ANNOUNCE_EMAIL"),
			viper.GetString("ANNOUNCE_PASSWORD"),
			0,
			logger,
		)
	}

	return magazine.NewManager(repo, cfg, announcer, logger)
}

func ProvideHandler(manager *magazine.Manager, logger *slog.Logger) *rest.Handler {
	return rest.NewHandler(manager, rpc.New(logger, manager), logger)
}

func ProvideEngine(handler *rest.Handler) http.Handler {
	return handler.RegisterRoutes()
}
