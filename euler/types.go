package euler

import "errors"

// Sentinel errors for Eulerian circuit extraction and verification.
var (
	// ErrNilGraph indicates a nil graph.
	ErrNilGraph = errors.New("euler: graph is nil")

	// ErrNoEdges indicates that the graph has no edges to traverse.
	ErrNoEdges = errors.New("euler: graph has no edges")

	// ErrStartNotFound indicates that the requested start vertex does not exist.
	ErrStartNotFound = errors.New("euler: start vertex not found")

	// ErrOddDegree indicates a vertex of odd degree; no closed circuit exists.
	ErrOddDegree = errors.New("euler: vertex has odd degree")

	// ErrDisconnected indicates that edges lie outside the start vertex's component.
	ErrDisconnected = errors.New("euler: edges are not connected")

	// ErrBadCircuit indicates that Verify rejected a walk.
	ErrBadCircuit = errors.New("euler: invalid circuit")
)

// Circuit is a closed walk using every edge instance exactly once.
//
// Vertices[0] == Vertices[len-1]; EdgeIDs[i] joins Vertices[i] and Vertices[i+1],
// so len(Vertices) == len(EdgeIDs)+1.
type Circuit struct {
	Vertices []string
	EdgeIDs  []string
}

// Len returns the number of edge traversals.
func (c *Circuit) Len() int { return len(c.EdgeIDs) }

// Start returns the first vertex, or "" for an empty circuit.
func (c *Circuit) Start() string {
	if len(c.Vertices) == 0 {
		return ""
	}
	return c.Vertices[0]
}
