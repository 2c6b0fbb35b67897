// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: BuildGraph orchestrator and the Constructor type.
// Determinism: same options, seed and constructor order give identical graphs,
// including edge IDs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/critpath/core"
)

// Constructor applies a deterministic graph mutation using the resolved builderConfig.
// Constructors validate parameters first and return sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg *builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration from bopts,
// and applies all constructors in order. The first constructor error is returned
// immediately, wrapped together with ErrConstructFailed.
//
// Complexity: O(len(bopts)) plus the sum of the constructors' costs.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
		}
	}

	return g, nil
}

// addVertices inserts the vertices at indices 0..n-1.
func addVertices(g *core.Graph, cfg *builderConfig, n int) {
	for i := 0; i < n; i++ {
		g.AddVertex(cfg.vertex(i))
	}
}

// addEdge connects the vertices at indices i and j with the next edge ID and a weight
// drawn from cfg.weightFn.
func addEdge(g *core.Graph, cfg *builderConfig, method string, i, j int) error {
	u, v := cfg.vertex(i), cfg.vertex(j)
	w := cfg.weightFn(cfg.rng)
	if w < 0 {
		return fmt.Errorf("%s: weight %d for %d—%d: %w", method, w, u, v, ErrInvalidWeight)
	}
	id := cfg.nextEdgeID()
	if err := g.AddEdge(u, v, w, id); err != nil {
		return fmt.Errorf("%s: AddEdge(%d—%d, w=%d, id=%d): %w", method, u, v, w, id, err)
	}

	return nil
}
