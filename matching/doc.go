// Package matching computes exact minimum-cost perfect matchings on complete
// graphs with an even number of vertices.
//
// The postman pipeline pairs up odd-degree vertices so that the sum of the
// shortest-path distances between partners is minimal; duplicating those
// paths makes every degree even at the least possible extra cost. A greedy
// pairing is not optimal, so the solver here is Edmonds' blossom algorithm
// with dual variables, O(n³) in the number of vertices.
//
// Usage:
//
//	pairs, err := matching.MinWeightPerfect(len(odd), func(i, j int) float64 {
//		return table.Dist(i, j)
//	})
//
// Vertices are plain indices 0..n-1; callers keep their own index→ID mapping.
package matching
