package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/lacnutry/internal/adapter"
	"github.com/MKhiriev/lacnutry/internal/config"
	"github.com/MKhiriev/lacnutry/internal/handler"
	"github.com/MKhiriev/lacnutry/internal/logger"
	"github.com/MKhiriev/lacnutry/internal/metrics"
	"github.com/MKhiriev/lacnutry/internal/server"
	"github.com/MKhiriev/lacnutry/internal/service"
	"github.com/MKhiriev/lacnutry/internal/store"
	"github.com/MKhiriev/lacnutry/internal/workers"
	"github.com/MKhiriev/lacnutry/models"
	"github.com/jonboulle/clockwork"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewLogger("lacnutry")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.LogFile != "" {
		fileLog, closer := logger.NewFileLogger("lacnutry", cfg.App.LogFile)
		defer closer.Close()
		log = fileLog
	}
	if !logger.SetLevel(cfg.App.LogLevel) {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}

	log.Debug().Any("config", cfg.App).Msg("received configs")

	clock := clockwork.NewRealClock()
	m := metrics.New()

	storage, err := store.NewKeyValueStorage(context.Background(), cfg.Storage, log.WithComponent("storage"))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storage")
	}
	defer storage.Close()

	adapters, err := adapter.NewAdapters(cfg, clock, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating adapters")
	}

	queue := workers.NewQueue(cfg.App.QueueSize, log.WithComponent("persist_queue"), m)
	m.WatchQueueDepth(queue.Pending)
	services, err := service.NewServices(storage, queue, adapters, cfg, build, m, clock, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	background := workers.NewWorkers(queue, services.SubscriptionService)
	srv, err := server.NewServer(handlers, services.ProfileStore, background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.BuildVersion())
	fmt.Printf("Build date: %s\n", build.BuildDate())
	fmt.Printf("Build commit: %s\n", build.BuildCommit())
}
