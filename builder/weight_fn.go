package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every edge when no WeightFn is configured.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn returns a WeightFn that always yields value. Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max] inclusive.
// Panics if min < 0, max < min, or the range holds more than math.MaxInt64 values
// (min = 0, max = math.MaxInt64). With a nil rng it yields min.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	if max-min == math.MaxInt64 {
		panic(fmt.Sprintf("UniformWeightFn: range %d..%d is too wide", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}

// SequenceWeightFn cycles through weights in order, ignoring the rng. Panics if
// weights is empty or holds a negative value.
func SequenceWeightFn(weights ...int64) WeightFn {
	if len(weights) == 0 {
		panic("SequenceWeightFn: no weights")
	}
	for _, w := range weights {
		if w < 0 {
			panic(fmt.Sprintf("SequenceWeightFn: weight must be ≥ 0, got %d", w))
		}
	}
	ws := append([]int64(nil), weights...)
	next := 0

	return func(_ *rand.Rand) int64 {
		w := ws[next%len(ws)]
		next++
		return w
	}
}
