// internal/pkg/idgen/idgen_test.go
package idgen

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextIsStrictlyIncreasing(t *testing.T) {
	t.Parallel()
	g := New()

	prev := g.Next()
	for i := 0; i < 1000; i++ {
		next := g.Next()
		require.Greater(t, next, prev)
		prev = next
	}
}

func TestNextIsUniqueUnderConcurrency(t *testing.T) {
	t.Parallel()
	g := New()

	const workers = 8
	const perWorker = 500

	var mu sync.Mutex
	seen := make(map[int64]struct{}, workers*perWorker)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids := make([]int64, 0, perWorker)
			for j := 0; j < perWorker; j++ {
				ids = append(ids, g.Next())
			}
			mu.Lock()
			for _, id := range ids {
				seen[id] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, seen, workers*perWorker)
}
