//go:build integration

package integration

import (
	"context"
	"path/filepath"
	"runtime"

	"splitwise-platform/internal/infrastructure/logger"
	"splitwise-platform/internal/infrastructure/migrator"
)

func ApplyMigrations(_ context.Context, dsn string) error {
	_, thisFile, _, _ := runtime.Caller(0)
	migrationsPath := filepath.Clean(filepath.Join(filepath.Dir(thisFile), "../../..", "migrations"))

	m, err := migrator.NewMigrator(migrationsPath, dsn, logger.New("test"))
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()
	return m.Up()
}
