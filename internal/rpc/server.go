package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/orbitpress/magazine/internal/magazine"
)

func New(logger *slog.Logger, manager *magazine.Manager) *zenrpc.Server {
	rpcService := NewMagazineService(manager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("magazine", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "magazine", nil))

	return rpcServer
}
