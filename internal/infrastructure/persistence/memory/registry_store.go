package memory

import (
	"context"
	"sort"
	"sync"

	"splitwise-platform/internal/domain/models"
	"splitwise-platform/internal/domain/ports/output/registry"
	"splitwise-platform/internal/utils"
)

// RegistryStore keeps instances in process memory. Values are cloned on the
// way in and out so callers never share state with the store.
type RegistryStore struct {
	mu   sync.RWMutex
	apps map[string]map[string]*models.Instance
}

func NewRegistryStore() registry.InstanceStore {
	return &RegistryStore{apps: make(map[string]map[string]*models.Instance)}
}

func (s *RegistryStore) Put(_ context.Context, inst *models.Instance) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID, ok := s.apps[inst.App]
	if !ok {
		byID = make(map[string]*models.Instance)
		s.apps[inst.App] = byID
	}
	byID[inst.InstanceID] = inst.Clone()
	return nil
}

func (s *RegistryStore) Get(_ context.Context, app, id string) (*models.Instance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inst, ok := s.apps[app][id]
	if !ok {
		return nil, utils.ErrInstanceNotFound
	}
	return inst.Clone(), nil
}

func (s *RegistryStore) Update(_ context.Context, app, id string, fn func(inst *models.Instance)) (*models.Instance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inst, ok := s.apps[app][id]
	if !ok {
		return nil, utils.ErrInstanceNotFound
	}
	fn(inst)
	return inst.Clone(), nil
}

func (s *RegistryStore) Delete(ctx context.Context, app, id string) error {
	_, err := s.DeleteIf(ctx, app, id, func(*models.Instance) bool { return true })
	return err
}

func (s *RegistryStore) DeleteIf(_ context.Context, app, id string, cond func(inst *models.Instance) bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := s.apps[app]
	inst, ok := byID[id]
	if !ok {
		return false, utils.ErrInstanceNotFound
	}
	if !cond(inst.Clone()) {
		return false, nil
	}
	delete(byID, id)
	if len(byID) == 0 {
		delete(s.apps, app)
	}
	return true, nil
}

func (s *RegistryStore) List(_ context.Context) ([]*models.Instance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*models.Instance, 0)
	for _, byID := range s.apps {
		for _, inst := range byID {
			res = append(res, inst.Clone())
		}
	}
	sortInstances(res)
	return res, nil
}

func (s *RegistryStore) ListByApp(_ context.Context, app string) ([]*models.Instance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byID := s.apps[app]
	res := make([]*models.Instance, 0, len(byID))
	for _, inst := range byID {
		res = append(res, inst.Clone())
	}
	sortInstances(res)
	return res, nil
}

func sortInstances(list []*models.Instance) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].App != list[j].App {
			return list[i].App < list[j].App
		}
		return list[i].InstanceID < list[j].InstanceID
	})
}
