// Package dijkstra provides Dijkstra's shortest-path algorithm on weighted
// undirected core.Graph values with non-negative float64 edge weights.
//
// Overview:
//
//   - Computes the minimum-cost path from a single source to every reachable
//     vertex in O((V + E) log V) using a lazy-decrease-key min-heap.
//   - Records, per vertex, both the predecessor vertex and the edge instance used,
//     so paths through multigraphs can be replayed edge by edge.
//   - Is the weighted mode of the postman shortest-path engine.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource, ErrNilGraph, ErrUnweightedGraph, ErrVertexNotFound:
//     argument validation, checked in that order.
//   - ErrInvalidWeight: any negative, NaN or infinite weight, detected by an O(E)
//     pre-scan before the search starts and wrapped with the offending edge.
//   - ErrBadMaxDistance: panic from WithMaxDistance on a negative cap.
//   - ErrNoPath: PathTo/EdgePathTo on an unreached vertex.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, _ := res.PathTo("C")
//
// Thread safety:
//
//   - Dijkstra only reads g; concurrent runs on an unchanging graph are safe.
package dijkstra
