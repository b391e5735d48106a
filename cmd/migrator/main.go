package main

import (
	"flag"
	"log/slog"
	"os"
	"strings"

	"splitwise-platform/internal/infrastructure/config"
	"splitwise-platform/internal/infrastructure/logger"
	"splitwise-platform/internal/infrastructure/migrator"
)

func main() {
	var dsn, migrationsPath, migrationsTable string
	var down bool

	flag.StringVar(&dsn, "dsn", "", "postgres DSN; defaults to the user-service database config")
	flag.StringVar(&migrationsPath, "migrations-path", "", "path to migrations; defaults to database.migrations_path")
	flag.StringVar(&migrationsTable, "migrations-table", "schema_migrations", "name of migrations table")
	flag.BoolVar(&down, "down", false, "roll back all migrations")
	flag.Parse()

	cfg := config.MustLoad(config.UserService)
	log := logger.New(cfg.Env)

	if dsn == "" {
		dsn = cfg.Database.DSN()
	}
	if migrationsPath == "" {
		migrationsPath = cfg.Database.MigrationsPath
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	dsn += sep + "x-migrations-table=" + migrationsTable

	m, err := migrator.NewMigrator(migrationsPath, dsn, log)
	if err != nil {
		log.Error("Failed to open migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Warn("Failed to close migrator", slog.String("error", err.Error()))
		}
	}()

	if down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil {
		log.Error("Migration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	version, dirty, err := m.Version()
	if err != nil {
		log.Error("Failed to read schema version", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log.Info("Schema version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
}
