package main

import (
	"context"
	"fmt"

	"github.com/Alianda23/art-exhibit-hub-72/internal/adapter"
	"github.com/Alianda23/art-exhibit-hub-72/internal/config"
	handler "github.com/Alianda23/art-exhibit-hub-72/internal/handler/http"
	"github.com/Alianda23/art-exhibit-hub-72/internal/logger"
	"github.com/Alianda23/art-exhibit-hub-72/internal/server"
	"github.com/Alianda23/art-exhibit-hub-72/internal/service"
	"github.com/Alianda23/art-exhibit-hub-72/internal/store"
	"github.com/Alianda23/art-exhibit-hub-72/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("gallery-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB, cfg.Storage.DB.Driver); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	gateway := adapter.NewMpesaGateway(cfg.Payments, log)
	services := service.NewServices(storages, cfg, gateway, log)

	handlers := handler.NewHandler(services, cfg.Storage.Files.StaticDir, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
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
