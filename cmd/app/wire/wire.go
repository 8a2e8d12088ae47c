//go:build wireinject
// +build wireinject

package wire

import (
	"log/slog"
	"net/http"

	"github.com/google/wire"

	"github.com/orbitpress/magazine/internal/db"
)

type Service struct {
	Repository *db.Repository
	Logger     *slog.Logger
	Engine     http.Handler
}

func Initialize() (*Service, func(), error) {
	wire.Build(
		ProvideLogger,
		ProvideRepository,
		ProvideManager,
		ProvideHandler,
		ProvideEngine,
		wire.Struct(new(Service), "*"),
	)
	return nil, nil, nil
}
