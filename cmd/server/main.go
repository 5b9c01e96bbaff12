package main

import (
	"context"
	"fmt"

	"github.com/mgavrilov/blackraven/internal/config"
	httphandler "github.com/mgavrilov/blackraven/internal/handler/http"
	"github.com/mgavrilov/blackraven/internal/logger"
	"github.com/mgavrilov/blackraven/internal/server"
	"github.com/mgavrilov/blackraven/internal/service"
	"github.com/mgavrilov/blackraven/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("blackraven-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repos := store.NewRepositories(db, log)
	services := service.NewServices(repos, *cfg, log)
	handler := httphandler.NewHandler(services, cfg.App.Version, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
