// SPDX-License-Identifier: MIT
//
// File: impl_ladder.go
// Role: DiamondLadder(k) constructor.
// Model: k diamonds chained on a spine. Diamond i joins spine index s = 3i to s+3
// through s+1 and through s+2:
//
//	      s+1
//	     /   \
//	  s         s+3
//	     \   /
//	      s+2
//
// With equal weights there are exactly 2^k shortest paths from index 0 to index 3k,
// and no edge is on all of them.
// Contract: k ≥ 1; per diamond the edges s—s+1, s+1—s+3, s—s+2, s+2—s+3 in that order.
// Complexity: O(k).

package builder

import (
	"fmt"

	"github.com/katalvlaran/critpath/core"
)

const (
	methodDiamondLadder = "DiamondLadder"
	minDiamonds         = 1
)

// DiamondLadder returns a Constructor that chains k diamonds over 3k+1 vertices.
func DiamondLadder(k int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if k < minDiamonds {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodDiamondLadder, k, minDiamonds, ErrTooFewVertices)
		}
		addVertices(g, cfg, 3*k+1)
		for i := 0; i < k; i++ {
			s := 3 * i
			for _, e := range [][2]int{{s, s + 1}, {s + 1, s + 3}, {s, s + 2}, {s + 2, s + 3}} {
				if err := addEdge(g, cfg, methodDiamondLadder, e[0], e[1]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
