// Package core provides the undirected Graph used by every postman algorithm,
// both as the caller-supplied simple graph and as the working multigraph.
//
// The Graph G = (V,E) supports:
//
//   - Weighted vs. unweighted edges (WithWeighted). Unweighted edges cost DefaultWeight.
//   - Parallel edges / multigraphs (WithMultiEdges). Every edge instance has its own
//     ID ("e1", "e2", ...) so parallel copies stay distinguishable.
//   - Constant-time adjacency via nested maps:
//     adjacencyList[u][v][edgeID] = struct{}{}, mirrored for v -> u.
//   - O(1) Degree lookup from a maintained degree table.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Determinism:
//
//	Vertices(), NeighborIDs() and Components() return sorted IDs;
//	Edges(), Neighbors() and EdgesBetween() return edges in creation order.
//
// Views:
//
//	InducedSubgraph(g, keep)  — copy restricted to a vertex set (component views).
//	MultigraphView(g)         — copy that accepts parallel edges, IDs preserved.
//	g.Clone()                 — deep copy.
//
// Errors:
//
//	ErrNilGraph            - graph pointer is nil.
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - weight other than 0/1 on an unweighted graph.
//	ErrLoopNotAllowed      - self-loop.
//	ErrMultiEdgeNotAllowed - parallel edge on a simple graph.
//
// Quick ASCII example:
//
//	A───B
//	│   │
//	D───C
//
//	g := core.NewGraph(core.WithWeighted())
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "C", 1)
//	g.AddEdge("C", "D", 1)
//	g.AddEdge("D", "A", 1)
package core
