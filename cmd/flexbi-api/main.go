package main

import (
	"flag"
	"log"
	"path/filepath"

	"flexbi-engine/internal/api"
	"flexbi-engine/internal/api/handler"
	"flexbi-engine/internal/config"
	"flexbi-engine/internal/store"
	"flexbi-engine/pkg/router"

	_ "flexbi-engine/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

// @title FlexBI Engine API
// @version 1.0
// @description Data profiling and auto-aggregation service for uploaded spreadsheets.
// @BasePath /api/v1
func main() {
	cfgFile := flag.String("config", "", "path to flexbi.yaml (optional)")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Init DB
	if err := store.InitDB(cfg.DBPath); err != nil {
		log.Fatalf("init db: %v", err)
	}

	// Snapshot the effective settings next to the database so a running
	// instance records the thresholds it classifies with.
	snapshot := filepath.Join(filepath.Dir(cfg.DBPath), "flexbi.effective.yaml")
	if err := config.Save(cfg, snapshot); err != nil {
		log.Printf("config snapshot: %v", err)
	}

	// Wire handlers to the loaded configuration
	handler.Configure(cfg)

	// Create router
	r := router.New()

	// Register API routes
	api.RegisterRoutes(r)

	// Swagger UI
	r.Mount("/swagger/", httpSwagger.WrapHandler)

	// Start server
	r.Start(cfg.ListenAddr)
}
