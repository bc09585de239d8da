package main

import (
	"os"

	"brokeria-dashboard-be/internal/config"
	"brokeria-dashboard-be/internal/model"
	"brokeria-dashboard-be/pkg/database"

	"github.com/fatih/color"
)

// Dev-only: the record table is owned by the chatbot flow in production.
func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" && cfg.Database.Name == "" {
		color.Red("Error: DB_CONNECTION_STRING or DB_NAME must be set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.DSN(), database.DefaultPoolConfig(), nil)
	if err != nil {
		color.Red("Error: failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Running migrations...")

	tables := []struct {
		name  string
		model interface{}
	}{
		{name: "brokeria_users", model: &model.User{}},
		{name: "brokeria_registros_brokeria", model: &model.Record{}},
	}

	failed := false
	for _, t := range tables {
		if db.Migrator().HasTable(t.model) {
			color.Yellow("  %s already exists, checking columns", t.name)
		}
		if err := db.AutoMigrate(t.model); err != nil {
			color.Red("  %s: %v", t.name, err)
			failed = true
			continue
		}
		color.Green("  %s ok", t.name)
	}

	if failed {
		os.Exit(1)
	}
	color.Green("Migration completed")
}
