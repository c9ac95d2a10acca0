package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/lk16/gomoku/internal"
	"github.com/lk16/gomoku/internal/repository"
)

const migrateTimeout = 10 * time.Second

func main() {
	// Setup app
	app, cfg, services := internal.SetupApp()
	defer services.Close() //nolint:errcheck

	// Create tables used for recording searches
	if services.Postgres != nil {
		ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
		err := repository.Migrate(ctx, services.Postgres)
		cancel()

		if err != nil {
			slog.Error("Failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	// Start server
	address := cfg.ServerHost + ":" + cfg.ServerPort
	log.Fatal(app.Listen(address))
}
