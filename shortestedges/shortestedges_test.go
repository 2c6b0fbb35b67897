package shortestedges_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/critpath/core"
	"github.com/katalvlaran/critpath/dijkstra"
	"github.com/katalvlaran/critpath/shortestedges"
)

// buildGraph declares vertices lo..hi and adds edges with IDs 1..len(edges).
func buildGraph(t *testing.T, lo, hi int, edges [][3]int64) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for v := lo; v <= hi; v++ {
		g.AddVertex(v)
	}
	for i, e := range edges {
		require.NoError(t, g.AddEdge(int(e[0]), int(e[1]), e[2], i+1))
	}

	return g
}

// scenarioA: unique shortest path 1—2—3—4 of length 3; the 1—3 shortcut (5) is longer.
var scenarioA = [][3]int64{{1, 2, 1}, {2, 3, 1}, {1, 3, 5}, {3, 4, 1}}

func TestBetween(t *testing.T) {
	cases := []struct {
		name  string
		lo    int
		hi    int
		edges [][3]int64
		a, b  int
		want  []int
	}{
		{
			name:  "unique path",
			lo:    1,
			hi:    4,
			edges: scenarioA,
			a:     1, b: 4,
			want: []int{1, 2, 4},
		},
		{
			name:  "two equal routes",
			lo:    1,
			hi:    4,
			edges: append(append([][3]int64{}, scenarioA...), [3]int64{1, 4, 3}),
			a:     1, b: 4,
			want: []int{1, 2, 4, 5},
		},
		{
			name:  "edges stored against travel direction",
			lo:    1,
			hi:    4,
			edges: [][3]int64{{2, 1, 1}, {3, 2, 1}, {4, 3, 1}},
			a:     1, b: 4,
			want: []int{1, 2, 3},
		},
		{
			name:  "disconnected target",
			lo:    1,
			hi:    5,
			edges: scenarioA,
			a:     1, b: 5,
			want: []int{},
		},
		{
			name:  "same endpoints",
			lo:    1,
			hi:    4,
			edges: scenarioA,
			a:     2, b: 2,
			want: []int{},
		},
		{
			name:  "zero-based ids",
			lo:    0,
			hi:    3,
			edges: [][3]int64{{0, 1, 2}, {1, 3, 2}, {0, 2, 1}, {2, 3, 3}, {1, 2, 9}},
			a:     0, b: 3,
			want: []int{1, 2, 3, 4},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := buildGraph(t, tc.lo, tc.hi, tc.edges)
			got, err := shortestedges.Between(context.Background(), g, tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBetween_UnknownVertex(t *testing.T) {
	g := buildGraph(t, 1, 4, scenarioA)
	_, err := shortestedges.Between(context.Background(), g, 1, 40)
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestBetween_SymmetricInEndpoints(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		edges := make([][3]int64, 0, 40)
		for i := 0; i < 40; i++ {
			edges = append(edges, [3]int64{int64(r.Intn(15)), int64(r.Intn(15)), int64(1 + r.Intn(4))})
		}
		g := buildGraph(t, 0, 14, edges)

		ab, err := shortestedges.Between(context.Background(), g, 0, 14)
		require.NoError(t, err)
		ba, err := shortestedges.Between(context.Background(), g, 14, 0)
		require.NoError(t, err)
		require.Equal(t, ab, ba, "round %d", round)
	}
}

func TestOrient_FirstOrientationWins(t *testing.T) {
	// 1—2(1), 1—3(1), 2—3(0), 2—4(1), 3—4(1): the zero-weight edge 2—3 matches both ways.
	g := buildGraph(t, 1, 4, [][3]int64{{1, 2, 1}, {1, 3, 1}, {2, 3, 0}, {2, 4, 1}, {3, 4, 1}})
	distA, err := dijkstra.Dijkstra(g, 1)
	require.NoError(t, err)
	distB, err := dijkstra.Dijkstra(g, 4)
	require.NoError(t, err)

	from, to, ok := shortestedges.Orient(2, 3, 0, distA, distB, distA[4])
	require.True(t, ok)
	assert.Equal(t, [2]int{2, 3}, [2]int{from, to})

	from, to, ok = shortestedges.Orient(3, 2, 0, distA, distB, distA[4])
	require.True(t, ok)
	assert.Equal(t, [2]int{3, 2}, [2]int{from, to})

	// Reverse orientation is found when the stored order is against travel.
	from, to, ok = shortestedges.Orient(4, 3, 1, distA, distB, distA[4])
	require.True(t, ok)
	assert.Equal(t, [2]int{3, 4}, [2]int{from, to})

	_, _, ok = shortestedges.Orient(2, 4, 1, distA, distB, dijkstra.Infinity)
	assert.False(t, ok)
}

func TestClassify_MatchesBetween(t *testing.T) {
	g := buildGraph(t, 1, 4, scenarioA)
	distA, err := dijkstra.Dijkstra(g, 1)
	require.NoError(t, err)
	distB, err := dijkstra.Dijkstra(g, 4)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 4}, shortestedges.Classify(g, distA, distB, 4))
}

func TestClassify_SkipsSelfLoops(t *testing.T) {
	// 1—2(1), 2—3(1), and a zero-weight loop on 2 that any walk could add for free.
	g := buildGraph(t, 1, 3, [][3]int64{{1, 2, 1}, {2, 3, 1}, {2, 2, 0}})

	ids, err := shortestedges.Between(context.Background(), g, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids)
}

func TestTight(t *testing.T) {
	g := buildGraph(t, 1, 3, [][3]int64{{1, 2, 1}, {2, 3, 1}, {2, 2, 0}})
	distA, err := dijkstra.Dijkstra(g, 1)
	require.NoError(t, err)
	distB, err := dijkstra.Dijkstra(g, 3)
	require.NoError(t, err)

	assert.True(t, shortestedges.Tight(1, 2, 1, distA, distB, 2))
	assert.False(t, shortestedges.Tight(2, 1, 1, distA, distB, 2), "against travel")
	assert.False(t, shortestedges.Tight(2, 2, 0, distA, distB, 2), "self-loop")
	assert.False(t, shortestedges.Tight(1, 2, 1, distA, distB, dijkstra.Infinity))
	assert.False(t, shortestedges.Tight(1, 9, 1, distA, distB, 2), "unknown vertex")
}
