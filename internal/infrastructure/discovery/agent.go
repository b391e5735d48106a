package discovery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"splitwise-platform/internal/domain/models"
	"splitwise-platform/internal/infrastructure/logger"
	"splitwise-platform/internal/infrastructure/retry"
	"splitwise-platform/internal/utils"
)

const (
	registerAttempts  = 6
	registerBaseDelay = 500 * time.Millisecond
	cancelTimeout     = 5 * time.Second
)

// Registrar is the subset of Client the agent needs.
type Registrar interface {
	Register(ctx context.Context, inst *models.Instance) error
	Renew(ctx context.Context, app, id string) error
	Cancel(ctx context.Context, app, id string) error
}

// Agent keeps one instance registered for the lifetime of a service.
type Agent struct {
	registrar Registrar
	instance  *models.Instance
	interval  time.Duration
	log       *logger.Logger
}

func NewAgent(registrar Registrar, inst *models.Instance, heartbeat time.Duration, log *logger.Logger) *Agent {
	in := inst.Clone()
	in.App = models.NormalizeAppName(in.App)
	if in.InstanceID == "" {
		host := in.HostName
		if host == "" {
			host = in.IPAddr
		}
		in.InstanceID = utils.NewInstanceID(host, in.App, in.Port)
	}
	if heartbeat <= 0 {
		heartbeat = 30 * time.Second
	}
	return &Agent{
		registrar: registrar,
		instance:  in,
		interval:  heartbeat,
		log:       &logger.Logger{Logger: log.Logger.With("app", in.App, "instance_id", in.InstanceID)},
	}
}

func (a *Agent) InstanceID() string { return a.instance.InstanceID }

// Run registers the instance, sends heartbeats until ctx is done and then cancels the lease.
// It returns an error only when the initial registration keeps failing.
func (a *Agent) Run(ctx context.Context) error {
	err := retry.DoWithRetry(ctx, registerAttempts, registerBaseDelay, func(ctx context.Context) error {
		if err := a.registrar.Register(ctx, a.instance); err != nil {
			a.log.Warn("registration attempt failed", "err", err)
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("register %s: %w", a.instance.App, err)
	}
	a.log.Info("registered with discovery")

	t := time.NewTicker(a.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			a.cancel()
			return nil
		case <-t.C:
			a.heartbeat(ctx)
		}
	}
}

func (a *Agent) heartbeat(ctx context.Context) {
	err := a.registrar.Renew(ctx, a.instance.App, a.instance.InstanceID)
	switch {
	case err == nil:
		a.log.Debug("heartbeat sent")
	case errors.Is(err, utils.ErrInstanceNotFound):
		a.log.Warn("lease unknown to registry, re-registering")
		if err := a.registrar.Register(ctx, a.instance); err != nil {
			a.log.Error("re-registration failed", "err", err)
		}
	case ctx.Err() != nil:
	default:
		a.log.Warn("heartbeat failed", "err", err)
	}
}

func (a *Agent) cancel() {
	ctx, cancel := context.WithTimeout(context.Background(), cancelTimeout)
	defer cancel()
	if err := a.registrar.Cancel(ctx, a.instance.App, a.instance.InstanceID); err != nil {
		a.log.Warn("lease cancel failed", "err", err)
		return
	}
	a.log.Info("deregistered from discovery")
}
