package loadbalancer

import (
	"math/rand/v2"
	"testing"

	"splitwise-platform/internal/domain/models"

	"github.com/stretchr/testify/require"
)

func instances(ids ...string) []*models.Instance {
	res := make([]*models.Instance, 0, len(ids))
	for _, id := range ids {
		res = append(res, &models.Instance{InstanceID: id})
	}
	return res
}

func TestRandomInstanceSelector_Select(t *testing.T) {
	candidates := instances("i-1", "i-2", "i-3", "i-4")

	tests := []struct {
		name       string
		candidates []*models.Instance
		count      int
		seed       uint64
		expectLen  int
	}{
		{"select one", candidates, 1, 1, 1},
		{"select subset", candidates, 3, 5, 3},
		{"count greater than candidates", candidates[:2], 5, 42, 2},
		{"zero count returns nil", candidates, 0, 99, 0},
		{"no candidates", nil, 2, 7, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selector := NewRandomInstanceSelectorWithRand(rand.New(rand.NewPCG(tt.seed, tt.seed>>1|1)))
			result := selector.Select(tt.candidates, tt.count)

			if tt.expectLen == 0 {
				require.Nil(t, result)
				return
			}
			require.Len(t, result, tt.expectLen)
			seen := make(map[string]struct{}, len(result))
			for _, inst := range result {
				_, dup := seen[inst.InstanceID]
				require.False(t, dup, "duplicate instance returned")
				seen[inst.InstanceID] = struct{}{}
				require.Contains(t, tt.candidates, inst)
			}
		})
	}
}

func TestRandomInstanceSelector_DoesNotReorderInput(t *testing.T) {
	candidates := instances("a", "b", "c")
	NewRandomInstanceSelector().Select(candidates, 3)
	require.Equal(t, "a", candidates[0].InstanceID)
	require.Equal(t, "c", candidates[2].InstanceID)
}

func TestRandomInstanceSelector_SpreadsLoad(t *testing.T) {
	selector := NewRandomInstanceSelectorWithRand(rand.New(rand.NewPCG(3, 7)))
	candidates := instances("a", "b")
	hits := map[string]int{}
	for i := 0; i < 200; i++ {
		hits[selector.Select(candidates, 1)[0].InstanceID]++
	}
	require.Greater(t, hits["a"], 0)
	require.Greater(t, hits["b"], 0)
}
