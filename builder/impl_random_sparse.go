// SPDX-License-Identifier: MIT
//
// File: impl_random_sparse.go
// Role: RandomSparse(n, p) constructor.
// Model: Erdős–Rényi-like; each unordered pair {i, j} with i < j is included
// independently with probability p.
// Contract:
//   - n ≥ 1 (ErrTooFewVertices), 0 ≤ p ≤ 1 (ErrInvalidProbability).
//   - An RNG is required when 0 < p < 1 (ErrNeedRandSource).
// Determinism: trials run i ascending, then j ascending; a fixed seed gives a fixed graph.
// Complexity: O(n²) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/critpath/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random graph over n vertices with
// independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		// 1) Validate parameters before touching g.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Vertices 0..n-1.
		addVertices(g, cfg, n)

		// 3) One Bernoulli trial per unordered pair.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !include(cfg, p) {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// include decides one trial; p ∈ {0, 1} needs no RNG.
func include(cfg *builderConfig, p float64) bool {
	switch {
	case p == probMin:
		return false
	case p == probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
