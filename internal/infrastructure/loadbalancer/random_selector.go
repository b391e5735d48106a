package loadbalancer

import (
	"math/rand/v2"
	"sync"

	"splitwise-platform/internal/domain/models"
	"splitwise-platform/internal/domain/services"
)

var _ services.InstanceSelector = (*RandomInstanceSelector)(nil)

type RandomInstanceSelector struct {
	rnd *rand.Rand
	mu  sync.Mutex
}

func NewRandomInstanceSelector() services.InstanceSelector {
	return NewRandomInstanceSelectorWithRand(nil)
}

func NewRandomInstanceSelectorWithRand(r *rand.Rand) services.InstanceSelector {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &RandomInstanceSelector{rnd: r}
}

// Select returns up to count distinct candidates in random order.
func (s *RandomInstanceSelector) Select(candidates []*models.Instance, count int) []*models.Instance {
	if count <= 0 || len(candidates) == 0 {
		return nil
	}

	shuffled := append([]*models.Instance(nil), candidates...)
	if len(shuffled) > 1 {
		s.mu.Lock()
		s.rnd.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		s.mu.Unlock()
	}

	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}
