package main

import (
	"errors"
	"flag"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"

	"github.com/kethil/tempursarihubstore-sub000/internal/config"
	"github.com/kethil/tempursarihubstore-sub000/internal/logger"
)

func main() {
	down := flag.Bool("down", false, "Roll back the most recent migration instead of migrating up")
	source := flag.String("source", "file://migrations", "Migration source URL")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	logger.Infow("Connecting to database", "host", cfg.Postgres.Host)

	m, err := migrate.New(*source, cfg.Postgres.GetMigrationDSN())
	if err != nil {
		logger.Fatalw("Failed to initialise migrations", "error", err)
	}
	defer m.Close()

	logger.Info("Running database migrations...")

	if *down {
		err = m.Steps(-1)
	} else {
		err = m.Up()
	}

	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("No pending migrations")
			return
		}
		logger.Fatalw("Migration failed", "error", err)
	}

	logger.Info("Migration completed successfully")
}
