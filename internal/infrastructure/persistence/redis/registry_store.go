package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"splitwise-platform/internal/domain/models"
	ports "splitwise-platform/internal/domain/ports/output"
	"splitwise-platform/internal/domain/ports/output/registry"
	"splitwise-platform/internal/utils"

	"github.com/redis/go-redis/v9"
)

const maxWatchRetries = 10

// RegistryStore shares registry state between discovery server replicas.
// Layout: <prefix>:apps is a set of app names, <prefix>:app:<APP> is a hash
// of instance id to JSON record.
type RegistryStore struct {
	client *redis.Client
	prefix string
	log    ports.Logger
}

func NewRegistryStore(client *redis.Client, prefix string, log ports.Logger) registry.InstanceStore {
	if prefix == "" {
		prefix = "registry"
	}
	return &RegistryStore{client: client, prefix: prefix, log: log}
}

// Connect creates a client and verifies it with a ping.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return client, nil
}

type record struct {
	InstanceID    string            `json:"instance_id"`
	App           string            `json:"app"`
	HostName      string            `json:"host_name"`
	IPAddr        string            `json:"ip_addr,omitempty"`
	Port          int               `json:"port"`
	Status        string            `json:"status"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	LeaseMillis   int64             `json:"lease_ms"`
	RegisteredAt  time.Time         `json:"registered_at"`
	LastRenewedAt time.Time         `json:"last_renewed_at"`
}

func encode(inst *models.Instance) ([]byte, error) {
	return json.Marshal(record{
		InstanceID:    inst.InstanceID,
		App:           inst.App,
		HostName:      inst.HostName,
		IPAddr:        inst.IPAddr,
		Port:          inst.Port,
		Status:        string(inst.Status),
		Metadata:      inst.Metadata,
		LeaseMillis:   inst.LeaseDuration.Milliseconds(),
		RegisteredAt:  inst.RegisteredAt,
		LastRenewedAt: inst.LastRenewedAt,
	})
}

func decode(raw string) (*models.Instance, error) {
	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, err
	}
	return &models.Instance{
		InstanceID:    rec.InstanceID,
		App:           rec.App,
		HostName:      rec.HostName,
		IPAddr:        rec.IPAddr,
		Port:          rec.Port,
		Status:        models.InstanceStatus(rec.Status),
		Metadata:      rec.Metadata,
		LeaseDuration: time.Duration(rec.LeaseMillis) * time.Millisecond,
		RegisteredAt:  rec.RegisteredAt,
		LastRenewedAt: rec.LastRenewedAt,
	}, nil
}

func (s *RegistryStore) appsKey() string { return s.prefix + ":apps" }

func (s *RegistryStore) appKey(app string) string { return s.prefix + ":app:" + app }

func (s *RegistryStore) Put(ctx context.Context, inst *models.Instance) error {
	const op = "redis.RegistryStore.Put"

	data, err := encode(inst)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, s.appKey(inst.App), inst.InstanceID, data)
		pipe.SAdd(ctx, s.appsKey(), inst.App)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *RegistryStore) Get(ctx context.Context, app, id string) (*models.Instance, error) {
	const op = "redis.RegistryStore.Get"

	raw, err := s.client.HGet(ctx, s.appKey(app), id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, utils.ErrInstanceNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	inst, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return inst, nil
}

// Update reads, modifies and writes the record under WATCH, retrying when a
// concurrent writer touched the same app hash.
func (s *RegistryStore) Update(ctx context.Context, app, id string, fn func(inst *models.Instance)) (*models.Instance, error) {
	const op = "redis.RegistryStore.Update"
	key := s.appKey(app)

	var result *models.Instance
	txf := func(tx *redis.Tx) error {
		raw, err := tx.HGet(ctx, key, id).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return utils.ErrInstanceNotFound
			}
			return err
		}
		inst, err := decode(raw)
		if err != nil {
			return err
		}
		fn(inst)
		data, err := encode(inst)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, id, data)
			return nil
		})
		if err == nil {
			result = inst
		}
		return err
	}

	for i := 0; i < maxWatchRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		switch {
		case err == nil:
			return result, nil
		case errors.Is(err, redis.TxFailedErr):
			s.log.Debug("registry update conflict, retrying", "app", app, "instance_id", id, "attempt", i+1)
			continue
		case errors.Is(err, utils.ErrInstanceNotFound):
			return nil, err
		default:
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	return nil, fmt.Errorf("%s: %w", op, redis.TxFailedErr)
}

func (s *RegistryStore) Delete(ctx context.Context, app, id string) error {
	_, err := s.DeleteIf(ctx, app, id, func(*models.Instance) bool { return true })
	return err
}

// DeleteIf removes the record and, when it was the last one, the app index
// entry in a single MULTI under WATCH on the app hash. A Put racing with it
// aborts the transaction and the check runs again on fresh state.
func (s *RegistryStore) DeleteIf(ctx context.Context, app, id string, cond func(inst *models.Instance) bool) (bool, error) {
	const op = "redis.RegistryStore.DeleteIf"
	key := s.appKey(app)

	var deleted bool
	txf := func(tx *redis.Tx) error {
		deleted = false
		raw, err := tx.HGet(ctx, key, id).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return utils.ErrInstanceNotFound
			}
			return err
		}
		inst, err := decode(raw)
		if err != nil {
			return err
		}
		if !cond(inst) {
			return nil
		}
		left, err := tx.HLen(ctx, key).Result()
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HDel(ctx, key, id)
			if left <= 1 {
				pipe.SRem(ctx, s.appsKey(), app)
			}
			return nil
		})
		if err == nil {
			deleted = true
		}
		return err
	}

	for i := 0; i < maxWatchRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		switch {
		case err == nil:
			return deleted, nil
		case errors.Is(err, redis.TxFailedErr):
			s.log.Debug("registry delete conflict, retrying", "app", app, "instance_id", id, "attempt", i+1)
			continue
		case errors.Is(err, utils.ErrInstanceNotFound):
			return false, err
		default:
			return false, fmt.Errorf("%s: %w", op, err)
		}
	}
	return false, fmt.Errorf("%s: %w", op, redis.TxFailedErr)
}

func (s *RegistryStore) List(ctx context.Context) ([]*models.Instance, error) {
	const op = "redis.RegistryStore.List"

	apps, err := s.client.SMembers(ctx, s.appsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	sort.Strings(apps)

	res := make([]*models.Instance, 0)
	for _, app := range apps {
		list, err := s.ListByApp(ctx, app)
		if err != nil {
			return nil, err
		}
		res = append(res, list...)
	}
	return res, nil
}

func (s *RegistryStore) ListByApp(ctx context.Context, app string) ([]*models.Instance, error) {
	const op = "redis.RegistryStore.ListByApp"

	entries, err := s.client.HGetAll(ctx, s.appKey(app)).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	res := make([]*models.Instance, 0, len(entries))
	for id, raw := range entries {
		inst, err := decode(raw)
		if err != nil {
			s.log.Warn("skipping undecodable registry record", "app", app, "instance_id", id, "err", err)
			continue
		}
		res = append(res, inst)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].InstanceID < res[j].InstanceID })
	return res, nil
}
