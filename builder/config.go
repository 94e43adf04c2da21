package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates the knobs used by constructors. It is passed by
// value so constructors cannot leak changes to each other.
type builderConfig struct {
	// idFn maps a vertex index to its ID.
	idFn IDFn
	// rng drives stochastic constructors and weights; nil means no randomness.
	rng *rand.Rand
	// weightFn draws edge weights; consulted only for weighted graphs.
	weightFn WeightFn
}

// newBuilderConfig starts from decimal IDs, no RNG and unit weights, then
// applies opts in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// IDFn maps a vertex index to a vertex ID.
type IDFn func(idx int) string

// DefaultIDFn renders "0", "1", "2", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn renders "A".."Z" and panics outside [0,25].
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic("builder: SymbolIDFn index out of [0,25]: " + strconv.Itoa(idx))
	}
	return string(rune('A' + idx))
}

// SymbolNumberIDFn renders prefix+index, e.g. "v0", "v1".
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// WeightFn draws one edge weight. rng may be nil.
type WeightFn func(rng *rand.Rand) float64

// DefaultEdgeWeight is the weight produced by DefaultWeightFn.
const DefaultEdgeWeight float64 = 1

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 { return DefaultEdgeWeight }

// ConstantWeightFn always returns value; panics on a negative value.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic("builder: ConstantWeightFn requires value ≥ 0")
	}
	return func(_ *rand.Rand) float64 { return value }
}

// UniformIntWeightFn draws integers in [min, max]; with a nil rng it returns min.
// Integer weights keep sums exact, which golden tests rely on.
func UniformIntWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic("builder: UniformIntWeightFn requires 0 ≤ min ≤ max")
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return float64(min)
		}
		return float64(min + rng.Intn(max-min+1))
	}
}
