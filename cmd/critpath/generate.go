package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/critpath/builder"
	"github.com/katalvlaran/critpath/graphio"
)

type generateFlags struct {
	n, rows, cols, k int
	p                float64
	seed             int64
	minW, maxW       int64
	base             int
	spine            bool
}

func newGenerateCmd() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate <path|cycle|grid|complete|ladder|random>",
		Short: "Write a generated graph in the input format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			con, err := shape(args[0], f)
			if err != nil {
				return err
			}
			if f.minW < 0 || f.maxW < f.minW {
				return fmt.Errorf("generate: need 0 ≤ min-weight ≤ max-weight, got %d..%d", f.minW, f.maxW)
			}
			if f.maxW-f.minW == math.MaxInt64 {
				return fmt.Errorf("generate: weight range %d..%d is too wide", f.minW, f.maxW)
			}
			if f.base != 0 && f.base != 1 {
				return fmt.Errorf("%w: %d", graphio.ErrInvalidVertexBase, f.base)
			}

			opts := []builder.BuilderOption{
				builder.WithSeed(f.seed),
				builder.WithVertexBase(f.base),
				builder.WithWeightFn(builder.UniformWeightFn(f.minW, f.maxW)),
			}
			cons := []builder.Constructor{con}
			if f.spine && args[0] == "random" {
				cons = append([]builder.Constructor{builder.Path(f.n)}, cons...)
			}
			g, err := builder.BuildGraph(opts, cons...)
			if err != nil {
				return err
			}

			return graphio.WriteGraph(cmd.OutOrStdout(), g, f.base)
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&f.n, "n", "n", 10, "vertex count (path, cycle, complete, random)")
	fs.IntVar(&f.rows, "rows", 3, "grid rows")
	fs.IntVar(&f.cols, "cols", 3, "grid columns")
	fs.IntVarP(&f.k, "k", "k", 3, "diamonds in a ladder")
	fs.Float64VarP(&f.p, "p", "p", 0.2, "edge probability (random)")
	fs.Int64Var(&f.seed, "seed", 1, "RNG seed")
	fs.Int64Var(&f.minW, "min-weight", 1, "smallest edge weight")
	fs.Int64Var(&f.maxW, "max-weight", 1, "largest edge weight")
	fs.IntVar(&f.base, "base", 0, "ID of the first vertex (0 or 1)")
	fs.BoolVar(&f.spine, "spine", true, "random: add a spanning path 0—1—…—(n-1) first")

	return cmd
}

func shape(name string, f generateFlags) (builder.Constructor, error) {
	switch name {
	case "path":
		return builder.Path(f.n), nil
	case "cycle":
		return builder.Cycle(f.n), nil
	case "grid":
		return builder.Grid(f.rows, f.cols), nil
	case "complete":
		return builder.Complete(f.n), nil
	case "ladder":
		return builder.DiamondLadder(f.k), nil
	case "random":
		return builder.RandomSparse(f.n, f.p), nil
	default:
		return nil, fmt.Errorf("generate: unknown shape %q", name)
	}
}
