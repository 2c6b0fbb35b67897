// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options and the resolved builderConfig.
// Contract:
//   - Option constructors validate and panic on meaningless inputs.
//   - Later options override earlier ones.
//   - No globals; everything flows through builderConfig.

package builder

import "math/rand"

// BuilderOption customizes builderConfig before any constructor runs.
type BuilderOption func(*builderConfig)

// builderConfig is shared by every constructor of one BuildGraph call.
type builderConfig struct {
	// base is the vertex ID of index 0.
	base int
	// rng drives RandomSparse and random weights; nil means no randomness.
	rng *rand.Rand
	// weightFn yields each edge weight in emission order.
	weightFn WeightFn
	// lastEdgeID is the most recently assigned edge ID.
	lastEdgeID int
}

func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{
		base:     0,
		rng:      nil,
		weightFn: ConstantWeightFn(DefaultEdgeWeight),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

func (c *builderConfig) vertex(i int) int { return c.base + i }

func (c *builderConfig) nextEdgeID() int {
	c.lastEdgeID++
	return c.lastEdgeID
}

// WithVertexBase sets the ID of the vertex at index 0. Panics if base < 0.
func WithVertexBase(base int) BuilderOption {
	if base < 0 {
		panic("builder: WithVertexBase(base<0)")
	}
	return func(c *builderConfig) {
		c.base = base
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
