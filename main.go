package main

import (
	"log"
	"os"
	"path/filepath"

	"welcome-power/bot"
	"welcome-power/config"
	"welcome-power/handlers"
	"welcome-power/utils/database"
	"welcome-power/utils/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	if err := os.MkdirAll(cfg.DataDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	db, err := database.Init(filepath.Join(cfg.DataDir, "guilds.db"))
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	if err := database.CreateTables(db); err != nil {
		log.Fatalf("Error creating guild tables: %v", err)
	}

	autoRoles, err := database.LoadAutoRoleConfigs(db)
	if err != nil {
		log.Fatalf("Error loading auto-role configuration: %v", err)
	}
	cfg.AutoRoles = autoRoles
	log.Printf("Loaded auto-role configuration for %d guilds", len(autoRoles))

	store := storage.New(cfg.DataDir)

	b, err := bot.New(cfg, db, store)
	if err != nil {
		log.Fatalf("Error creating bot: %v", err)
	}

	handlers.Register(b)
	defer b.Close()

	b.Run()
}
