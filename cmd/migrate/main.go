package main

import (
	"virtualshop/internal/config" // Configuration
	"virtualshop/internal/db"     // Database migration
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg.DSN())
}
