package worker

import (
	"context"
	"time"

	input "splitwise-platform/internal/domain/ports/input"
	"splitwise-platform/internal/infrastructure/logger"
	"splitwise-platform/internal/infrastructure/metrics"
)

// EvictionWorker periodically drops registry instances whose lease has expired.
type EvictionWorker struct {
	registry input.RegistryInputPort
	log      *logger.Logger
	interval time.Duration
	now      func() time.Time
}

func NewEvictionWorker(registry input.RegistryInputPort, log *logger.Logger, interval time.Duration) *EvictionWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &EvictionWorker{registry: registry, log: log, interval: interval, now: time.Now}
}

// Run blocks until ctx is canceled.
func (w *EvictionWorker) Run(ctx context.Context) {
	w.log.Info("eviction worker started", "interval", w.interval)
	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("eviction worker stopped")
			return
		case <-t.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single eviction pass and refreshes the instance gauge.
func (w *EvictionWorker) RunOnce(ctx context.Context) int {
	evicted, err := w.registry.EvictExpired(ctx, w.now())
	if err != nil {
		w.log.Error("eviction pass failed", "err", err)
	}
	if len(evicted) > 0 {
		w.log.Info("eviction pass finished", "evicted", len(evicted))
	}

	apps, err := w.registry.ListApplications(ctx)
	if err != nil {
		w.log.Warn("count registry instances failed", "err", err)
		return len(evicted)
	}
	total := 0
	for _, a := range apps {
		total += len(a.Instances)
	}
	metrics.SetRegistryInstances(total)
	return len(evicted)
}
