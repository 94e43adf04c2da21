// File: view.go
// Role: Non-mutating graph views (copying topology with altered properties).
// Determinism:
//   - Preserves vertex IDs, edge IDs and creation order.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance with no aliasing.

package core

import "sync/atomic"

// Clone returns a deep copy of g with the same flags, vertices and edges.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return copyGraph(g, nil, g.Multigraph())
}

// InducedSubgraph returns a new Graph holding only vertices v where keep[v] is true,
// and every edge whose endpoints are both kept. The input graph is not mutated.
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	return copyGraph(g, keep, g.Multigraph())
}

// MultigraphView returns a copy of g that permits parallel edges.
// Edge IDs are preserved and the ID counter is carried over, so edges added to
// the view never collide with IDs of g.
// Complexity: O(V + E).
func MultigraphView(g *Graph) *Graph {
	return copyGraph(g, nil, true)
}

// copyGraph copies g, optionally restricted to keep (nil keeps everything).
func copyGraph(g *Graph, keep map[string]bool, multi bool) *Graph {
	opts := make([]GraphOption, 0, 2)
	if g.Weighted() {
		opts = append(opts, WithWeighted())
	}
	if multi {
		opts = append(opts, WithMultiEdges())
	}
	out := NewGraph(opts...)

	g.muVert.RLock()
	for id := range g.vertices {
		if keep != nil && !keep[id] {
			continue
		}
		out.vertices[id] = struct{}{}
		out.degree[id] = 0
		out.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	// Snapshot the counter under the same lock as the edge catalog.
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	for eid, e := range g.edges {
		if keep != nil && (!keep[e.From] || !keep[e.To]) {
			continue
		}
		out.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight, seq: e.seq}
		ensureAdjacency(out, e.From, e.To)
		ensureAdjacency(out, e.To, e.From)
		out.adjacencyList[e.From][e.To][eid] = struct{}{}
		out.adjacencyList[e.To][e.From][eid] = struct{}{}
		out.degree[e.From]++
		out.degree[e.To]++
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}
