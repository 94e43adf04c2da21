package matching

import "errors"

// Sentinel errors for the matching package.
var (
	// ErrOddVertexCount indicates that a perfect matching was requested on an odd number of vertices.
	ErrOddVertexCount = errors.New("matching: odd number of vertices")

	// ErrBadSize indicates a negative vertex count.
	ErrBadSize = errors.New("matching: negative vertex count")

	// ErrNilCost indicates that no cost function was supplied.
	ErrNilCost = errors.New("matching: cost function is nil")

	// ErrBadCost indicates a NaN or infinite pair cost.
	ErrBadCost = errors.New("matching: cost must be finite")

	// ErrNotPerfect indicates that the solver left a vertex unmatched.
	// On a complete graph with an even vertex count this cannot happen.
	ErrNotPerfect = errors.New("matching: result is not a perfect matching")
)

// unmatched marks a vertex without a mate.
const unmatched = -1

// Pair is one matched couple of vertex indices, I < J.
type Pair struct {
	I, J int
}

// CostFunc returns the symmetric cost of matching vertex i with vertex j.
type CostFunc func(i, j int) float64

// Total sums cost over pairs.
func Total(pairs []Pair, cost CostFunc) float64 {
	var sum float64
	for _, p := range pairs {
		sum += cost(p.I, p.J)
	}

	return sum
}
