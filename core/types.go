// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge and Graph declarations, sentinel errors, options and NewGraph.
// Policy:
//   - Undirected only. Self-loops are always rejected.
//   - Simple graphs by default; WithMultiEdges() enables parallel edge instances.
//   - Unweighted graphs store DefaultWeight on every edge.

package core

import (
	"errors"
	"sync"
)

// DefaultWeight is the cost carried by every edge of an unweighted graph.
const DefaultWeight float64 = 1

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates that a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a weight other than 0 or DefaultWeight was given to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted on a simple graph.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is one undirected edge instance.
//
// In a multigraph several edges may share the same endpoints; ID tells them apart.
type Edge struct {
	// ID uniquely identifies this edge instance in its Graph ("e1", "e2", ...).
	ID string

	// From and To are the endpoint vertex IDs in insertion order.
	From string
	To   string

	// Weight is the traversal cost. DefaultWeight on unweighted graphs.
	Weight float64

	// seq is the numeric part of ID, used for deterministic ordering.
	seq uint64
}

// Other returns the endpoint of e opposite to v.
// If v is not an endpoint, From is returned.
func (e *Edge) Other(v string) string {
	if e.From == v {
		return e.To
	}

	return e.From
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted allows arbitrary edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same pair of vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is an undirected in-memory graph.
//
// muVert protects vertices and degree; muEdgeAdj protects edges and adjacencyList.
// Locks are always taken in the order muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	weighted   bool
	allowMulti bool

	nextEdgeID uint64 // atomic edge ID generator

	vertices map[string]struct{}
	degree   map[string]int   // vertex ID -> number of incident edge instances
	edges    map[string]*Edge // edge ID -> Edge

	// adjacencyList[u][v][edgeID] is mirrored for both endpoints.
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph.
// By default the graph is unweighted and simple.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]struct{}),
		degree:        make(map[string]int),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Weighted reports whether the graph was created with WithWeighted.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}
