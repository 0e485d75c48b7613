package main

import (
	"compro_backend/database"
	"compro_backend/internal/config"
	"compro_backend/internal/logger"
	"compro_backend/internal/seed"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)

	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	result, err := seed.Content(db)
	if err != nil {
		logger.Fatal("Failed to seed content", "error", err)
	}
	for table, inserted := range result {
		logger.Info("Seeded table", "table", table, "inserted", inserted)
	}
}
