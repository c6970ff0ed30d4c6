package main

import (
	"flag"
	"log"
	"time"

	"go-funnel-dashboard/internal/api"
	"go-funnel-dashboard/internal/api/handler"
	"go-funnel-dashboard/internal/config"
	"go-funnel-dashboard/internal/store"
	"go-funnel-dashboard/pkg/router"
	"go-funnel-dashboard/pkg/utils"
)

// @title Funnel Dashboard Normalization API
// @version 1.0
// @description Normalizes loosely-typed funnel analytics payloads and infers dashboard specs.
// @BasePath /api/v1
func main() {
	cfgFile := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := store.InitDB(cfg.DBPath); err != nil {
		log.Fatalf("store: %v", err)
	}

	handler.SetMaxBodyBytes(int64(cfg.MaxPayloadBytes))

	r := router.New()
	api.RegisterRoutes(r)

	r.Start(cfg.Addr, utils.ParseDuration(cfg.ReadTimeout, 30*time.Second))
}
