package main

import (
	"log"
	"log/slog"

	"social-service/configs"
	"social-service/internal/database"
)

func main() {
	cfg := configs.Load()

	slog.Info("Starting database migration...")

	db, err := database.NewMySQLDB(cfg.MySQLUser, cfg.MySQLPassword, cfg.MySQLHost, cfg.MySQLPort, cfg.MySQLDB)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	slog.Info("Database connection established")

	slog.Info("Running GORM auto-migration...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate schema:", err)
	}

	slog.Info("Database migration completed successfully!")
}
