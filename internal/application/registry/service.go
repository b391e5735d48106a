package registry

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"splitwise-platform/internal/domain/models"
	"splitwise-platform/internal/domain/ports/input"
	ports "splitwise-platform/internal/domain/ports/output"
	"splitwise-platform/internal/domain/ports/output/registry"
	"splitwise-platform/internal/utils"
)

const defaultLease = 90 * time.Second

type Config struct {
	LeaseDuration    time.Duration
	SelfPreservation bool
	// RenewalThreshold is the share of instances expected to keep renewing;
	// with self-preservation on, eviction pauses when fewer do.
	RenewalThreshold float64
}

type Service struct {
	store registry.InstanceStore
	log   ports.Logger
	cfg   Config
	now   func() time.Time
}

func NewService(store registry.InstanceStore, log ports.Logger, cfg Config) input.RegistryInputPort {
	return NewServiceWithClock(store, log, cfg, time.Now)
}

func NewServiceWithClock(store registry.InstanceStore, log ports.Logger, cfg Config, now func() time.Time) *Service {
	if cfg.LeaseDuration <= 0 {
		cfg.LeaseDuration = defaultLease
	}
	return &Service{store: store, log: log, cfg: cfg, now: now}
}

func (s *Service) Register(ctx context.Context, inst *models.Instance) (*models.Instance, error) {
	if inst == nil {
		return nil, utils.NewBadRequest("instance is required")
	}
	in := inst.Clone()
	in.App = models.NormalizeAppName(in.App)
	in.HostName = strings.TrimSpace(in.HostName)
	in.IPAddr = strings.TrimSpace(in.IPAddr)

	if in.App == "" {
		return nil, utils.NewBadRequest("app name is required")
	}
	if in.HostName == "" && in.IPAddr == "" {
		return nil, utils.NewBadRequest("host name or ip address is required")
	}
	if in.Port <= 0 || in.Port > 65535 {
		return nil, utils.NewBadRequest("port must be between 1 and 65535")
	}
	in.Status = models.InstanceStatus(strings.ToUpper(strings.TrimSpace(string(in.Status))))
	if in.Status == "" {
		in.Status = models.StatusUp
	}
	if !in.Status.Valid() {
		return nil, utils.NewBadRequest("invalid status: %q", in.Status)
	}
	if in.LeaseDuration <= 0 {
		in.LeaseDuration = s.cfg.LeaseDuration
	}
	if in.InstanceID == "" {
		host := in.HostName
		if host == "" {
			host = in.IPAddr
		}
		in.InstanceID = utils.NewInstanceID(host, in.App, in.Port)
	}

	now := s.now()
	in.RegisteredAt = now
	if existing, err := s.store.Get(ctx, in.App, in.InstanceID); err == nil {
		in.RegisteredAt = existing.RegisteredAt
	}
	in.LastRenewedAt = now

	if err := s.store.Put(ctx, in); err != nil {
		s.log.Error("Register store failed", "app", in.App, "instance_id", in.InstanceID, "err", err)
		return nil, err
	}
	s.log.Info("instance registered", "app", in.App, "instance_id", in.InstanceID, "status", in.Status)
	return in, nil
}

func (s *Service) Renew(ctx context.Context, app, id string) (*models.Instance, error) {
	app = models.NormalizeAppName(app)
	now := s.now()
	inst, err := s.store.Update(ctx, app, id, func(i *models.Instance) {
		i.LastRenewedAt = now
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug("lease renewed", "app", app, "instance_id", id)
	return inst, nil
}

func (s *Service) Cancel(ctx context.Context, app, id string) error {
	app = models.NormalizeAppName(app)
	if err := s.store.Delete(ctx, app, id); err != nil {
		return err
	}
	s.log.Info("instance cancelled", "app", app, "instance_id", id)
	return nil
}

func (s *Service) UpdateStatus(ctx context.Context, app, id string, status models.InstanceStatus) (*models.Instance, error) {
	status = models.InstanceStatus(strings.ToUpper(string(status)))
	if !status.Valid() {
		return nil, utils.NewBadRequest("invalid status: %q", status)
	}
	app = models.NormalizeAppName(app)
	inst, err := s.store.Update(ctx, app, id, func(i *models.Instance) {
		i.Status = status
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("instance status changed", "app", app, "instance_id", id, "status", status)
	return inst, nil
}

func (s *Service) GetInstance(ctx context.Context, app, id string) (*models.Instance, error) {
	return s.store.Get(ctx, models.NormalizeAppName(app), id)
}

func (s *Service) GetApplication(ctx context.Context, app string) (*models.Application, error) {
	app = models.NormalizeAppName(app)
	list, err := s.store.ListByApp(ctx, app)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, utils.ErrAppNotFound
	}
	return &models.Application{Name: app, Instances: list}, nil
}

func (s *Service) ListApplications(ctx context.Context) ([]*models.Application, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	byApp := make(map[string]*models.Application)
	for _, inst := range all {
		a, ok := byApp[inst.App]
		if !ok {
			a = &models.Application{Name: inst.App}
			byApp[inst.App] = a
		}
		a.Instances = append(a.Instances, inst)
	}
	res := make([]*models.Application, 0, len(byApp))
	for _, a := range byApp {
		res = append(res, a)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res, nil
}

// EvictExpired removes instances whose lease ran out before now.
func (s *Service) EvictExpired(ctx context.Context, now time.Time) ([]*models.Instance, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	var expired []*models.Instance
	for _, inst := range all {
		if inst.Expired(now) {
			expired = append(expired, inst)
		}
	}
	if len(expired) == 0 {
		return nil, nil
	}

	if s.cfg.SelfPreservation {
		renewing := float64(len(all)-len(expired)) / float64(len(all))
		if renewing < s.cfg.RenewalThreshold {
			s.log.Warn("self-preservation active, skipping eviction",
				"expired", len(expired), "total", len(all), "renewing_ratio", renewing)
			return nil, nil
		}
	}

	evicted := make([]*models.Instance, 0, len(expired))
	for _, inst := range expired {
		// A heartbeat may have landed since the snapshot; re-check on the stored value.
		ok, err := s.store.DeleteIf(ctx, inst.App, inst.InstanceID, func(cur *models.Instance) bool {
			return cur.Expired(now)
		})
		if err != nil {
			if errors.Is(err, utils.ErrInstanceNotFound) {
				continue
			}
			return evicted, err
		}
		if !ok {
			s.log.Debug("instance renewed before eviction", "app", inst.App, "instance_id", inst.InstanceID)
			continue
		}
		s.log.Info("instance evicted", "app", inst.App, "instance_id", inst.InstanceID,
			"last_renewed_at", inst.LastRenewedAt)
		evicted = append(evicted, inst)
	}
	return evicted, nil
}
