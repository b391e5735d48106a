package migrator

import (
	"errors"
	"fmt"
	"path/filepath"

	ports "splitwise-platform/internal/domain/ports/output"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

type Migrator struct {
	m   *migrate.Migrate
	log ports.Logger
}

// NewMigrator opens the file source at path against the postgres database at dsn.
func NewMigrator(path, dsn string, log ports.Logger) (*Migrator, error) {
	const op = "migrator.NewMigrator"

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	m, err := migrate.New("file://"+filepath.ToSlash(abs), dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Migrator{m: m, log: log}, nil
}

func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			mg.log.Info("no migrations to apply")
			return nil
		}
		return fmt.Errorf("migrator.Up: %w", err)
	}
	mg.log.Info("migrations applied successfully")
	return nil
}

func (mg *Migrator) Down() error {
	if err := mg.m.Down(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			mg.log.Info("no migrations to roll back")
			return nil
		}
		return fmt.Errorf("migrator.Down: %w", err)
	}
	mg.log.Info("migrations rolled back")
	return nil
}

// Version reports the current schema version; zero with dirty=false when nothing is applied.
func (mg *Migrator) Version() (uint, bool, error) {
	v, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}
