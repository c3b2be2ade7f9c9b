package main

import (
	"github.com/ericogr/game-balance/internal/config"
	"github.com/ericogr/game-balance/internal/logging"
	"github.com/ericogr/game-balance/internal/storage"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid balance configuration", err, logging.Fields{
			"config_path": path,
			"hint":        "create a balance_config.json with optional keys: server.address, default_attributes, default_stat_definitions",
		})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db)
}
