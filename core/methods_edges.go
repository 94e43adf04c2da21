// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/EdgeCount,
//       TotalWeight, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in creation order (numeric part of Edge.ID ascending).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muVert + muEdgeAdj write locks (degree table lives under muVert).
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new undirected edge and returns its ID.
// Missing endpoints are created.
//
// Steps:
//  1. Validate IDs, loops and weight policy.
//  2. Ensure endpoints via AddVertex.
//  3. Under locks, check the simple-graph constraint, allocate the ID, link both
//     adjacency directions and bump both degrees.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed.
//   - ErrBadWeight if the graph is unweighted and weight is neither 0 nor DefaultWeight.
//   - ErrMultiEdgeNotAllowed if the graph is simple and u–v already exists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	if !g.Weighted() {
		if weight != 0 && weight != DefaultWeight {
			return "", ErrBadWeight
		}
		weight = DefaultWeight
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacencyList[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid, seq := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight, seq: seq}
	ensureAdjacency(g, from, to)
	ensureAdjacency(g, to, from)
	g.adjacencyList[from][to][eid] = struct{}{}
	g.adjacencyList[to][from][eid] = struct{}{}
	g.degree[from]++
	g.degree[to]++

	return eid, nil
}

// RemoveEdge deletes one edge instance.
//
// Errors:
//   - ErrEdgeNotFound if eid is unknown.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e.From, e.To, eid)
	removeAdjacency(g, e.To, e.From, eid)
	g.degree[e.From]--
	g.degree[e.To]--

	return nil
}

// HasEdge reports whether at least one edge joins from and to.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// GetEdge returns the edge with the given ID.
// The returned pointer is live catalog state; treat it as read-only.
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgesBetween returns every edge instance joining u and v in creation order.
// Returns nil when none exists.
func (g *Graph) EdgesBetween(u, v string) []*Edge {
	g.muEdgeAdj.RLock()
	bucket := g.adjacencyList[u][v]
	if len(bucket) == 0 {
		g.muEdgeAdj.RUnlock()
		return nil
	}
	out := make([]*Edge, 0, len(bucket))
	for eid := range bucket {
		out = append(out, g.edges[eid])
	}
	g.muEdgeAdj.RUnlock()
	sortEdges(out)

	return out
}

// Edges returns all edges in creation order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.muEdgeAdj.RUnlock()
	sortEdges(out)

	return out
}

// EdgeCount returns the number of edge instances.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// TotalWeight returns the sum of all edge weights.
// Summation follows creation order so the result is reproducible bit for bit.
func (g *Graph) TotalWeight() float64 {
	var sum float64
	for _, e := range g.Edges() {
		sum += e.Weight
	}

	return sum
}

// sortEdges orders edges by creation sequence.
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}

// nextEdgeID reserves the next sequence number and renders it as "e<n>".
// Must be called under muEdgeAdj write lock.
func nextEdgeID(g *Graph) (string, uint64) {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf), n
}
