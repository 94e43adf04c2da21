// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs) and adjacency helpers.
// Determinism:
//   - Neighbors() returns incident edges in creation order.
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - Helpers are called only under muEdgeAdj write lock by mutating code.

package core

import "sort"

// Neighbors returns every edge instance incident to id, in creation order.
// Parallel edges appear once per instance.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d) where d = Degree(id).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, g.degree[id])
	for _, bucket := range g.adjacencyList[id] {
		for eid := range bucket {
			out = append(out, g.edges[eid])
		}
	}
	g.muEdgeAdj.RUnlock()
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the distinct vertices adjacent to id, sorted ascending.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	out := make([]string, 0, len(g.adjacencyList[id]))
	for nbr, bucket := range g.adjacencyList[id] {
		if len(bucket) > 0 {
			out = append(out, nbr)
		}
	}
	g.muEdgeAdj.RUnlock()
	sort.Strings(out)

	return out, nil
}

// ensureAdjacency allocates the from -> to bucket if missing.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency unlinks eid from the from -> to bucket and prunes it when empty.
func removeAdjacency(g *Graph, from, to, eid string) {
	bucket := g.adjacencyList[from][to]
	if bucket == nil {
		return
	}
	delete(bucket, eid)
	if len(bucket) == 0 {
		delete(g.adjacencyList[from], to)
	}
}
