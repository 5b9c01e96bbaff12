package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/mgavrilov/blackraven/internal/config"
	httphandler "github.com/mgavrilov/blackraven/internal/handler/http"
	"github.com/mgavrilov/blackraven/internal/logger"
	"github.com/mgavrilov/blackraven/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

func NewServer(handler *httphandler.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	httpSrv := newHTTPServer(handler.Init(), cfg, logger)

	return &server{
		httpServer: httpSrv,
		workers:    workers.NewWorkers(httpSrv),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	s.run()
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) run() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	s.workers.Run()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}
