// Package app wires and runs the stub API server: a local in-memory
// stand-in for the remote library service.
package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/bookbuddy/library-client/config"
	"github.com/bookbuddy/library-client/internal/server"
	"github.com/bookbuddy/library-client/internal/stubapi/handler"
	"github.com/bookbuddy/library-client/internal/stubapi/storage"
	"github.com/bookbuddy/library-client/pkg/logger"
)

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "stubapi")

	store := storage.New()
	h := handler.New(store, log, cfg.Auth)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}
