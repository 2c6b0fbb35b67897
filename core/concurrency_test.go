// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/critpath/core"
)

// TestConcurrentAddRemoveEdge mixes AddEdge, RemoveEdge and readers
// to verify no races or panics occur under concurrent modification.
func TestConcurrentAddRemoveEdge(t *testing.T) {
	g := core.NewGraph()
	const n = 100
	for v := 0; v <= n; v++ {
		g.AddVertex(v)
	}

	var wg sync.WaitGroup
	wg.Add(3 * n)
	for i := 1; i <= n; i++ {
		go func(id int) {
			defer wg.Done()
			_ = g.AddEdge(0, id, int64(id), id)
		}(i)
		go func(id int) {
			defer wg.Done()
			g.RemoveEdge(id)
		}(i)
		go func() {
			defer wg.Done()
			_, _ = g.Arcs(0)
			_ = g.Clone()
		}()
	}
	wg.Wait()

	// whatever survived, the two views must agree
	arcs, err := g.Arcs(0)
	require.NoError(t, err)
	require.Len(t, arcs, g.EdgeCount())
	for _, a := range arcs {
		e, err := g.FindEdge(a.EdgeID)
		require.NoError(t, err)
		require.Equal(t, a.To, e.V)
	}
}
