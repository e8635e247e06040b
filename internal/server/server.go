package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/lacnutry/internal/config"
	"github.com/MKhiriev/lacnutry/internal/handler"
	"github.com/MKhiriev/lacnutry/internal/logger"
	"github.com/MKhiriev/lacnutry/internal/service"
	"github.com/MKhiriev/lacnutry/internal/workers"
)

const defaultShutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	profiles   service.ProfileStore
	background *workers.Workers

	shutdownTimeout time.Duration

	logger *logger.Logger
}

// NewServer wires the HTTP API with the profile store and the background
// workers (persistence queue, billing listener) whose lifecycle it owns.
func NewServer(handlers *handler.Handlers, profiles service.ProfileStore, background *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		profiles:        profiles,
		background:      background,
		shutdownTimeout: timeout,
		logger:          logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.start()
	go s.httpServer.RunServer()

	// wait for a stop signal
	<-ctx.Done()

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")
}

// start launches the workers and loads the profile store in the
// background. Until loading finishes the API answers 503 on state routes.
func (s *server) start() {
	// workers outlive the signal context; Shutdown stops them explicitly
	ctx := context.Background()

	s.background.Run(ctx)
	go func() {
		s.profiles.Load(ctx)
		s.logger.Info().Msg("profile store loaded")
	}()
}

// Shutdown stops accepting requests, flushes pending profile writes and
// stops the workers, all bounded by the shutdown timeout.
func (s *server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	s.httpServer.Shutdown(ctx)

	if err := s.profiles.Close(ctx); err != nil {
		s.logger.Err(err).Str("func", "*server.Shutdown").Msg("pending profile writes were not flushed")
	}

	s.background.Stop()
}
