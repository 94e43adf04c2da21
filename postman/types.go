package postman

import (
	"errors"
	"fmt"
)

// Sentinel errors. Input-validation errors are returned before any search or
// matching work starts and are wrapped with the offending graph's size or edge.
var (
	// ErrNilGraph indicates a nil input graph.
	ErrNilGraph = errors.New("postman: graph is nil")

	// ErrInvalidWeight indicates a negative, NaN or infinite edge weight.
	ErrInvalidWeight = errors.New("postman: invalid edge weight")

	// ErrGraphNotWeighted indicates a weighted operation on an unweighted graph.
	ErrGraphNotWeighted = errors.New("postman: graph is not weighted")

	// ErrGraphDisconnected indicates that a single connected component was required.
	ErrGraphDisconnected = errors.New("postman: graph is disconnected")

	// ErrInvalidBudget indicates a negative or NaN cost ceiling.
	ErrInvalidBudget = errors.New("postman: invalid budget")

	// ErrInvalidOptions indicates option values rejected by validation.
	ErrInvalidOptions = errors.New("postman: invalid options")

	// ErrInternalInvariant signals a bug in the pipeline itself: broken
	// odd-vertex parity, an imperfect matching or an Euler precondition that
	// fails after augmentation. It never results from bad input.
	ErrInternalInvariant = errors.New("postman: internal invariant violated")
)

// Walk is one closed (or, for the budgeted variant, open) walk.
//
// Edges[i] is the ID of the input-graph edge joining Vertices[i] and
// Vertices[i+1]; an edge traversed twice appears twice. An empty Walk has no
// vertices and no edges.
type Walk struct {
	Vertices []string
	Edges    []string
	Cost     float64
}

// Len returns the number of edge traversals.
func (w Walk) Len() int { return len(w.Edges) }

// Steps returns the consecutive vertex pairs of the walk.
func (w Walk) Steps() [][2]string {
	if len(w.Vertices) < 2 {
		return nil
	}
	out := make([][2]string, 0, len(w.Vertices)-1)
	for i := 1; i < len(w.Vertices); i++ {
		out = append(out, [2]string{w.Vertices[i-1], w.Vertices[i]})
	}

	return out
}

// UnweightedStats summarises SolveUnweighted.
type UnweightedStats struct {
	OriginalEdges       int
	TotalTraversedEdges int
	RepeatedEdges       int
}

func (s UnweightedStats) String() string {
	return fmt.Sprintf("original_edges: %d, total_traversed_edges: %d, repeated_edges: %d",
		s.OriginalEdges, s.TotalTraversedEdges, s.RepeatedEdges)
}

// WeightedStats summarises SolveWeighted. ExtraCost is the weight of all
// duplicated edge instances, so it is exactly zero when no vertex has odd degree.
type WeightedStats struct {
	OriginalEdges int
	OriginalCost  float64
	TotalCost     float64
	ExtraCost     float64
}

func (s WeightedStats) String() string {
	return fmt.Sprintf("original_edges: %d, original_cost: %g, total_cost: %g, extra_cost: %g",
		s.OriginalEdges, s.OriginalCost, s.TotalCost, s.ExtraCost)
}

// BudgetStats summarises SolveBudgeted.
type BudgetStats struct {
	DistinctEdges int
	TotalCost     float64
	Budget        float64
}

func (s BudgetStats) String() string {
	return fmt.Sprintf("distinct_edges: %d, total_cost: %g, K: %g", s.DistinctEdges, s.TotalCost, s.Budget)
}
