package main

import (
	"log"

	"pantry/internal/assistant"
	"pantry/internal/config"
	"pantry/internal/db"
	"pantry/internal/logging"
	"pantry/internal/service"
	"pantry/internal/store"
	"pantry/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := logging.New(cfg.LogLevel)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	itemStore := store.NewItemStore(database)

	var suggester assistant.Suggester
	if cfg.AnthropicAPIKey != "" {
		logger.Info("recipe suggestions enabled", "model", cfg.AnthropicModel)
		suggester = assistant.NewClaudeSuggester(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	}

	pantryService := service.NewPantryService(itemStore, suggester, logger)
	server := web.NewServer(pantryService, logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}
