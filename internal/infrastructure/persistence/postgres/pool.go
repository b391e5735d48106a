package postgres

import (
	"context"
	"fmt"
	"time"

	ports "splitwise-platform/internal/domain/ports/output"
	"splitwise-platform/internal/infrastructure/retry"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	connectAttempts = 5
	connectDelay    = 500 * time.Millisecond
)

// NewPool creates a pool and waits until the database answers a ping.
func NewPool(ctx context.Context, dsn string, maxConns int32, log ports.Logger) (*pgxpool.Pool, error) {
	const op = "postgres.NewPool"

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: parse config: %w", op, err)
	}
	if maxConns > 0 {
		poolConfig.MaxConns = maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	err = retry.DoWithRetry(ctx, connectAttempts, connectDelay, func(ctx context.Context) error {
		if err := pool.Ping(ctx); err != nil {
			log.Warn("postgres not ready", "err", err)
			return err
		}
		return nil
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: ping: %w", op, err)
	}
	return pool, nil
}
