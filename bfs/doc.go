// Package bfs provides breadth-first search over a core.Graph,
// returning hop-count distances, parent links and the visit order.
//
// It is the unweighted mode of the postman shortest-path engine: edge weights
// are ignored, so the search runs on weighted graphs as well and reports the
// fewest-edges path.
//
// Result:
//
//   - Order:      visit sequence
//   - Depth:      vertex → distance (edges) from start
//   - Parent:     vertex → predecessor in the BFS tree
//   - ParentEdge: vertex → edge instance used to reach it (distinguishes parallel edges)
//
// Determinism
//
//	core.Neighbors returns incident edges in creation order and BFS enqueues
//	neighbors in that order, so ties between equal-length paths are broken by
//	traversal order and the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) plus the per-vertex neighbor sort.
//   - Memory: O(V) for queue, visited set and result maps.
package bfs
