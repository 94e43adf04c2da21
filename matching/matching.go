package matching

import (
	"fmt"
	"math"
	"sort"
)

// MinWeightPerfect returns a minimum-cost perfect matching of the complete
// graph on vertices 0..n-1, where cost(i, j) is the price of pairing i with j.
//
// Cases:
//   - n == 0: no pairs, nil error;
//   - n == 2: the single pair {0, 1};
//   - odd n: ErrOddVertexCount;
//   - otherwise the blossom solver runs on weights (maxCost + 1 - cost), which
//     makes every maximum-cardinality, maximum-weight matching a perfect
//     matching of minimum total cost.
//
// The result is sorted by Pair.I. cost must be symmetric and finite.
//
// Complexity: O(n³) time, O(n²) memory.
func MinWeightPerfect(n int, cost CostFunc) ([]Pair, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("%w: %d", ErrBadSize, n)
	case n%2 != 0:
		return nil, fmt.Errorf("%w: %d", ErrOddVertexCount, n)
	case n == 0:
		return nil, nil
	case cost == nil:
		return nil, ErrNilCost
	}

	edges := make([]wedge, 0, n*(n-1)/2)
	maxCost := math.Inf(-1)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			c := cost(i, j)
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return nil, fmt.Errorf("%w: cost(%d,%d)=%v", ErrBadCost, i, j, c)
			}
			edges = append(edges, wedge{i: i, j: j, w: c})
			if c > maxCost {
				maxCost = c
			}
		}
	}
	if n == 2 {
		return []Pair{{I: 0, J: 1}}, nil
	}

	for k := range edges {
		edges[k].w = maxCost + 1 - edges[k].w
	}
	mate := maxWeightMatching(n, edges, true)

	pairs := make([]Pair, 0, n/2)
	for v, u := range mate {
		if u == unmatched {
			return nil, fmt.Errorf("%w: vertex %d", ErrNotPerfect, v)
		}
		if v < u {
			pairs = append(pairs, Pair{I: v, J: u})
		}
	}
	sort.Slice(pairs, func(a, b int) bool { return pairs[a].I < pairs[b].I })

	return pairs, nil
}

// FromMatrix adapts a square distance matrix to a CostFunc.
func FromMatrix(d [][]float64) CostFunc {
	return func(i, j int) float64 { return d[i][j] }
}
