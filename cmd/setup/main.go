// Command setup provisions the picogram database schema. It is a one-shot
// entrypoint for first-time installation: it connects in setup mode, which
// runs the embedded migrations, and exits.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/picogram/picogram-db/internal/config"
	"github.com/picogram/picogram-db/internal/platform/logger"
	"github.com/picogram/picogram-db/internal/platform/postgres"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "setup failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.Setup(cfg.Server)

	// Whatever the configuration says, this command exists to provision.
	dbCfg := cfg.Database
	dbCfg.Setup = true

	db := postgres.New(dbCfg, log)
	if err := db.Connect(context.Background()); err != nil {
		return err
	}
	defer func() { _ = db.Disconnect() }()

	log.Info("database setup complete")
	return nil
}
