package discovery

import (
	"context"
	"sync"
	"time"

	"splitwise-platform/internal/domain/models"
	"splitwise-platform/internal/infrastructure/logger"
)

type ApplicationsFetcher interface {
	Applications(ctx context.Context) ([]*models.Application, error)
}

// Cache holds the last registry snapshot so lookups never hit the network.
type Cache struct {
	fetcher  ApplicationsFetcher
	interval time.Duration
	log      *logger.Logger

	mu   sync.RWMutex
	apps map[string][]*models.Instance
}

func NewCache(fetcher ApplicationsFetcher, interval time.Duration, log *logger.Logger) *Cache {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Cache{
		fetcher:  fetcher,
		interval: interval,
		log:      log,
		apps:     make(map[string][]*models.Instance),
	}
}

// Refresh replaces the snapshot. On error the previous snapshot is kept.
func (c *Cache) Refresh(ctx context.Context) error {
	apps, err := c.fetcher.Applications(ctx)
	if err != nil {
		return err
	}
	next := make(map[string][]*models.Instance, len(apps))
	for _, a := range apps {
		next[models.NormalizeAppName(a.Name)] = a.Instances
	}
	c.mu.Lock()
	c.apps = next
	c.mu.Unlock()
	return nil
}

// Run refreshes immediately and then on every interval until ctx is done.
func (c *Cache) Run(ctx context.Context) {
	if err := c.Refresh(ctx); err != nil {
		c.log.Warn("registry fetch failed", "err", err)
	}
	t := time.NewTicker(c.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := c.Refresh(ctx); err != nil && ctx.Err() == nil {
				c.log.Warn("registry fetch failed", "err", err)
			}
		}
	}
}

// Instances returns copies of the UP instances of app.
func (c *Cache) Instances(app string) []*models.Instance {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var res []*models.Instance
	for _, inst := range c.apps[models.NormalizeAppName(app)] {
		if inst.Status == models.StatusUp {
			res = append(res, inst.Clone())
		}
	}
	return res
}
