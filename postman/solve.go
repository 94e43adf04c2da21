package postman

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/postman/core"
	"github.com/katalvlaran/postman/dijkstra"
	"github.com/katalvlaran/postman/shortest"
)

// SolveUnweighted returns, per connected component with at least one edge, a
// closed walk that covers every edge and repeats as few edges as possible.
//
// Distances are hop counts, so a weighted graph is accepted and its weights
// are ignored; Walk.Cost then counts traversals. Walks are ordered by
// component discovery (the component holding the smallest vertex ID first).
//
// Errors: ErrNilGraph, ErrInvalidOptions, ErrInternalInvariant.
//
// Complexity: per component O(k·(V+E) + k³) for k odd-degree vertices.
func SolveUnweighted(g *core.Graph, opts ...Option) ([]Walk, UnweightedStats, error) {
	var stats UnweightedStats
	if g == nil {
		return nil, stats, ErrNilGraph
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, stats, err
	}

	p := &pipeline{g: g, mode: shortest.Unweighted, log: o.Logger}
	results, err := p.run(o.Workers)
	if err != nil {
		return nil, stats, err
	}

	walks := make([]Walk, 0, len(results))
	stats.OriginalEdges = g.EdgeCount()
	for _, r := range results {
		walks = append(walks, r.walk)
		stats.TotalTraversedEdges += r.walk.Len()
		stats.RepeatedEdges += r.duplicated
	}

	o.Logger.Info("unweighted route inspection solved",
		zap.Int("walks", len(walks)),
		zap.Int("original_edges", stats.OriginalEdges),
		zap.Int("total_traversed_edges", stats.TotalTraversedEdges),
		zap.Int("repeated_edges", stats.RepeatedEdges),
	)

	return walks, stats, nil
}

// SolveWeighted returns, per connected component with at least one edge, a
// closed walk that covers every edge at minimum total weight.
//
// The graph must be weighted and every weight finite and non-negative; both
// are checked before any component is processed.
//
// Errors: ErrNilGraph, ErrInvalidOptions, ErrGraphNotWeighted,
// ErrInvalidWeight (also matches dijkstra.ErrInvalidWeight), ErrInternalInvariant.
//
// Complexity: per component O(k·(V+E)·log V + k³) for k odd-degree vertices.
func SolveWeighted(g *core.Graph, opts ...Option) ([]Walk, WeightedStats, error) {
	var stats WeightedStats
	if g == nil {
		return nil, stats, ErrNilGraph
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, stats, err
	}
	if err = checkWeighted(g); err != nil {
		return nil, stats, err
	}

	p := &pipeline{g: g, mode: shortest.Weighted, log: o.Logger}
	results, err := p.run(o.Workers)
	if err != nil {
		return nil, stats, err
	}

	walks := make([]Walk, 0, len(results))
	stats.OriginalEdges = g.EdgeCount()
	stats.OriginalCost = g.TotalWeight()
	for _, r := range results {
		walks = append(walks, r.walk)
		stats.ExtraCost += r.extraCost
	}
	stats.TotalCost = stats.OriginalCost + stats.ExtraCost

	o.Logger.Info("weighted route inspection solved",
		zap.Int("walks", len(walks)),
		zap.Int("original_edges", stats.OriginalEdges),
		zap.Float64("original_cost", stats.OriginalCost),
		zap.Float64("total_cost", stats.TotalCost),
		zap.Float64("extra_cost", stats.ExtraCost),
	)

	return walks, stats, nil
}

// checkWeighted rejects unweighted graphs and invalid weights.
func checkWeighted(g *core.Graph) error {
	if !g.Weighted() {
		return fmt.Errorf("%w: %d vertices, %d edges", ErrGraphNotWeighted, g.VertexCount(), g.EdgeCount())
	}
	if err := dijkstra.ValidateWeights(g); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWeight, err)
	}

	return nil
}
