// @title Study Planner API
// @version 1.0
// @description Backend server for the study planner.

// @license.name MIT

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"study_planner_backend/internal/app"
	"study_planner_backend/internal/config"
	"study_planner_backend/pkg/configwatcher"
	"study_planner_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migration and exit")
	migrate := flag.Bool("migrate", false, "force database migration on startup")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	store := config.NewStore(cfg)
	application := app.NewApp(store)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration completed, exiting")
		return
	}

	// Hot-reload the config file. The store swap is atomic; middleware
	// loads a fresh snapshot on every request.
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		newCfg.ForceMigrate = cfg.ForceMigrate
		newCfg.MigrateOnly = cfg.MigrateOnly
		store.Swap(newCfg)
		log.Println("Configuration reloaded")
	})

	application.Run()
}
