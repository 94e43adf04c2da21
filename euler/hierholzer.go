// SPDX-License-Identifier: MIT

package euler

import (
	"fmt"

	"github.com/katalvlaran/postman/core"
)

// frame is one stack entry: the vertex reached and the edge used to reach it.
type frame struct {
	vertex string
	edgeID string
}

// Find returns an Eulerian circuit of g starting and ending at start.
// An empty start selects the smallest vertex ID with at least one edge.
//
// Every edge instance is traversed exactly once, so parallel edges of a
// multigraph appear individually in EdgeIDs. At each vertex the unused edge
// with the lowest creation sequence is taken first, which makes the result
// deterministic.
//
// Errors:
//   - ErrNilGraph, ErrNoEdges;
//   - ErrStartNotFound if start is unknown;
//   - ErrOddDegree if any vertex has odd degree;
//   - ErrDisconnected if start is isolated or some edge is unreachable from it.
//
// Complexity: O(V + E log E); O(E) after the per-vertex neighbour sort.
func Find(g *core.Graph, start string) (*Circuit, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	total := g.EdgeCount()
	if total == 0 {
		return nil, ErrNoEdges
	}
	if odd := g.OddVertices(); len(odd) > 0 {
		return nil, fmt.Errorf("%w: %q (and %d more)", ErrOddDegree, odd[0], len(odd)-1)
	}

	if start == "" {
		for _, v := range g.Vertices() {
			if d, _ := g.Degree(v); d > 0 {
				start = v
				break
			}
		}
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	if d, _ := g.Degree(start); d == 0 {
		return nil, fmt.Errorf("%w: start %q is isolated", ErrDisconnected, start)
	}

	h := &hierholzer{
		g:      g,
		incid:  make(map[string][]*core.Edge),
		cursor: make(map[string]int),
		used:   make(map[string]bool, total),
	}
	c, err := h.run(start)
	if err != nil {
		return nil, err
	}
	if c.Len() != total {
		return nil, fmt.Errorf("%w: circuit covers %d of %d edges", ErrDisconnected, c.Len(), total)
	}

	return c, nil
}

// hierholzer keeps the per-run state: incident edges, a cursor per vertex
// that only moves forward, and the set of consumed edge IDs.
type hierholzer struct {
	g      *core.Graph
	incid  map[string][]*core.Edge
	cursor map[string]int
	used   map[string]bool
}

// next returns the next unused edge at v, or nil.
func (h *hierholzer) next(v string) (*core.Edge, error) {
	list, ok := h.incid[v]
	if !ok {
		var err error
		if list, err = h.g.Neighbors(v); err != nil {
			return nil, err
		}
		h.incid[v] = list
	}
	i := h.cursor[v]
	for i < len(list) && h.used[list[i].ID] {
		i++
	}
	h.cursor[v] = i
	if i == len(list) {
		return nil, nil
	}

	return list[i], nil
}

func (h *hierholzer) run(start string) (*Circuit, error) {
	stack := []frame{{vertex: start}}
	var popped []frame

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		e, err := h.next(top.vertex)
		if err != nil {
			return nil, err
		}
		if e == nil {
			// dead end: emit and backtrack
			popped = append(popped, top)
			stack = stack[:len(stack)-1]
			continue
		}
		h.used[e.ID] = true
		stack = append(stack, frame{vertex: e.Other(top.vertex), edgeID: e.ID})
	}

	// popped is the circuit in reverse; popped[i].edgeID joins popped[i] and popped[i+1].
	c := &Circuit{
		Vertices: make([]string, len(popped)),
		EdgeIDs:  make([]string, 0, len(popped)-1),
	}
	for i := range popped {
		f := popped[len(popped)-1-i]
		c.Vertices[i] = f.vertex
		if i > 0 {
			c.EdgeIDs = append(c.EdgeIDs, f.edgeID)
		}
	}

	return c, nil
}

// Verify checks that c is a closed walk in g that uses every edge instance
// exactly once. It returns nil or an error wrapping ErrBadCircuit.
//
// Complexity: O(E).
func Verify(g *core.Graph, c *Circuit) error {
	if g == nil {
		return ErrNilGraph
	}
	if c == nil || len(c.Vertices) != len(c.EdgeIDs)+1 {
		return fmt.Errorf("%w: malformed circuit", ErrBadCircuit)
	}
	if c.Vertices[0] != c.Vertices[len(c.Vertices)-1] {
		return fmt.Errorf("%w: not closed (%q … %q)", ErrBadCircuit, c.Vertices[0], c.Vertices[len(c.Vertices)-1])
	}
	if n := g.EdgeCount(); n != len(c.EdgeIDs) {
		return fmt.Errorf("%w: %d traversals for %d edges", ErrBadCircuit, len(c.EdgeIDs), n)
	}

	seen := make(map[string]bool, len(c.EdgeIDs))
	for i, eid := range c.EdgeIDs {
		e, err := g.GetEdge(eid)
		if err != nil {
			return fmt.Errorf("%w: step %d: %v", ErrBadCircuit, i, err)
		}
		if seen[eid] {
			return fmt.Errorf("%w: edge %s used twice", ErrBadCircuit, eid)
		}
		seen[eid] = true
		u, v := c.Vertices[i], c.Vertices[i+1]
		if !(e.From == u && e.To == v) && !(e.From == v && e.To == u) {
			return fmt.Errorf("%w: edge %s does not join %q and %q", ErrBadCircuit, eid, u, v)
		}
	}

	return nil
}
