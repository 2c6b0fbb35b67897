// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/critpath/core"
	"github.com/katalvlaran/critpath/dijkstra"
)

// ExampleDijkstra demonstrates computing shortest distances on a small graph.
// Complexity: O((V+E) log V) because we push/pop up to 2E entries and finalize each vertex once.
func ExampleDijkstra() {
	// 1) Declare vertices 1..4.
	g := core.NewGraph()
	for v := 1; v <= 4; v++ {
		g.AddVertex(v)
	}
	// 2) Edges (u, v, weight, id).
	_ = g.AddEdge(1, 2, 1, 1)
	_ = g.AddEdge(2, 3, 1, 2)
	_ = g.AddEdge(1, 3, 5, 3)
	_ = g.AddEdge(3, 4, 1, 4)

	// 3) Distances from vertex 1.
	dist, err := dijkstra.Dijkstra(g, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) The direct 1—3 edge (5) loses to 1—2—3 (2).
	fmt.Printf("dist[3]=%d, dist[4]=%d\n", dist[3], dist[4])
	// Output: dist[3]=2, dist[4]=3
}

// ExampleDistances_Reachable shows the Infinity convention for unreachable vertices.
func ExampleDistances_Reachable() {
	g := core.NewGraph()
	g.AddVertex(0)
	g.AddVertex(1)
	g.AddVertex(2)
	_ = g.AddEdge(0, 1, 7, 1)

	dist, _ := dijkstra.Dijkstra(g, 0)
	fmt.Println(dist.Reachable(1), dist.Reachable(2), dist[2] == dijkstra.Infinity)
	// Output: true false true
}
