package main

import (
	"log"

	_ "cotizador_inprotar/docs"
	"cotizador_inprotar/internal/adapter/http/routes"
	"cotizador_inprotar/internal/config"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Inprotar Quoting API
// @version         1.0
// @description     Quote builder for Inprotar: sessions, product extraction from photos and datasheets, catalog reconciliation and PDF quotes.

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if err := config.InitLogger(cfg.Log); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = zap.L().Sync() }()

	if err := routes.Run(cfg); err != nil {
		zap.L().Fatal("server stopped", zap.Error(err))
	}
}
