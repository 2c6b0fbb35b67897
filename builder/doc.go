// Package builder constructs deterministic core.Graph fixtures: paths, cycles,
// grids, complete graphs, diamond ladders and seeded random graphs.
//
// Constructors compose inside BuildGraph and share vertex IDs by index, so a random
// overlay can be laid on top of a spanning path. Edge IDs are assigned 1, 2, 3, ...
// across all constructors in call order.
//
// Configuration primitives:
//
//   - BuilderOption: functional option mutating builderConfig.
//   - WithVertexBase: ID of the vertex at index 0 (default 0).
//   - WithSeed / WithRand: RNG for RandomSparse and random weights.
//   - WithWeightFn: edge weight policy (default ConstantWeightFn(1)).
//
// Option constructors panic on meaningless input; constructors return sentinel
// errors and never panic.
package builder
