// SPDX-License-Identifier: MIT
//
// File: impl_grid.go
// Role: Grid(rows, cols) and Complete(n) constructors.
// Contract:
//   - Grid: rows, cols ≥ 1; cell (r, c) is index r*cols + c. For each cell in row-major
//     order the right neighbour edge is emitted before the bottom one.
//   - Complete: n ≥ 1; edges i—j for i < j in lexicographic order.
// Complexity: Grid O(rows*cols); Complete O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/critpath/core"
)

const (
	methodGrid       = "Grid"
	methodComplete   = "Complete"
	minGridDim       = 1
	minCompleteNodes = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighbourhood grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		addVertices(g, cfg, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				idx := r*cols + c
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, idx, idx+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, idx, idx+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
