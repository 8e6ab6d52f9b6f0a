package wordspace

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestShardedMapLoadOrStoreConcurrentSingleWinner(t *testing.T) {
	sm := newShardedMap[int]()
	var g errgroup.Group
	results := make([]int, 32)
	for i := 0; i < 32; i++ {
		i := i
		g.Go(func() error {
			v, _ := sm.LoadOrStore("key", i)
			results[i] = v
			return nil
		})
	}
	require.NoError(t, g.Wait())

	first := results[0]
	for _, r := range results {
		require.Equal(t, first, r)
	}
}

func TestShardedMapLenAndContains(t *testing.T) {
	sm := newShardedMap[int]()
	for i := 0; i < 10; i++ {
		sm.Store(fmt.Sprintf("k%d", i), i)
	}
	require.Equal(t, 10, sm.Len())
	require.True(t, sm.Contains("k5"))
	require.False(t, sm.Contains("k99"))
}
