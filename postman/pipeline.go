// SPDX-License-Identifier: MIT

package postman

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/postman/core"
	"github.com/katalvlaran/postman/euler"
	"github.com/katalvlaran/postman/matching"
	"github.com/katalvlaran/postman/shortest"
)

// componentResult is the outcome of one non-trivial component.
type componentResult struct {
	walk       Walk
	odd        int
	duplicated int
	extraCost  float64
}

// pipeline runs the per-component route-inspection steps over one input graph.
type pipeline struct {
	g    *core.Graph
	mode shortest.Mode
	log  *zap.Logger
}

// run processes every component and returns the non-trivial results in
// component-discovery order.
func (p *pipeline) run(workers int) ([]*componentResult, error) {
	comps := core.Components(p.g)
	results := make([]*componentResult, len(comps))
	err := forEach(workers, len(comps), func(i int) error {
		r, err := p.component(i, comps[i])
		results[i] = r
		return err
	})
	if err != nil {
		return nil, err
	}

	out := make([]*componentResult, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}

	return out, nil
}

// cost prices one traversal of e: its weight, or one hop in unweighted mode.
func (p *pipeline) cost(e *core.Edge) float64 {
	if p.mode == shortest.Unweighted {
		return 1
	}
	return e.Weight
}

// component solves one connected component. It returns nil for a component
// without edges.
//
// Steps: odd-degree set, shortest paths from every odd vertex, minimum-cost
// perfect matching, one extra parallel copy of every edge on every matched
// path (copies accumulate when paths overlap), parity check, Euler circuit.
func (p *pipeline) component(idx int, vertices []string) (*componentResult, error) {
	keep := make(map[string]bool, len(vertices))
	for _, v := range vertices {
		keep[v] = true
	}
	sub := core.InducedSubgraph(p.g, keep)
	if sub.EdgeCount() == 0 {
		return nil, nil
	}

	odd := sub.OddVertices()
	if len(odd)%2 != 0 {
		return nil, p.invariant(idx, fmt.Errorf("%d odd-degree vertices", len(odd)))
	}

	work := core.MultigraphView(sub)
	origin := make(map[string]string)
	res := &componentResult{odd: len(odd)}

	if len(odd) > 0 {
		table, err := shortest.Between(sub, odd, p.mode)
		if err != nil {
			if errors.Is(err, shortest.ErrUnreachable) {
				return nil, p.invariant(idx, err)
			}
			return nil, err
		}
		pairs, err := matching.MinWeightPerfect(table.Len(), table.Dist)
		if err != nil {
			return nil, p.invariant(idx, err)
		}
		for _, pair := range pairs {
			path, err := table.EdgePath(pair.I, pair.J)
			if err != nil {
				return nil, p.invariant(idx, err)
			}
			for _, eid := range path {
				e, err := sub.GetEdge(eid)
				if err != nil {
					return nil, p.invariant(idx, err)
				}
				dup, err := work.AddEdge(e.From, e.To, e.Weight)
				if err != nil {
					return nil, p.invariant(idx, err)
				}
				origin[dup] = eid
				res.duplicated++
				res.extraCost += p.cost(e)
			}
		}
	}

	if left := work.OddVertices(); len(left) > 0 {
		return nil, p.invariant(idx, fmt.Errorf("odd degree after augmentation at %q", left[0]))
	}
	circuit, err := euler.Find(work, "")
	if err != nil {
		return nil, p.invariant(idx, err)
	}
	if err = euler.Verify(work, circuit); err != nil {
		return nil, p.invariant(idx, err)
	}

	res.walk = Walk{
		Vertices: circuit.Vertices,
		Edges:    make([]string, len(circuit.EdgeIDs)),
	}
	for i, eid := range circuit.EdgeIDs {
		e, err := work.GetEdge(eid)
		if err != nil {
			return nil, p.invariant(idx, err)
		}
		res.walk.Cost += p.cost(e)
		if orig, ok := origin[eid]; ok {
			eid = orig
		}
		res.walk.Edges[i] = eid
	}

	p.log.Debug("component solved",
		zap.Int("component", idx),
		zap.Int("vertices", sub.VertexCount()),
		zap.Int("edges", sub.EdgeCount()),
		zap.Int("odd_vertices", len(odd)),
		zap.Int("duplicated_edges", res.duplicated),
		zap.Float64("cost", res.walk.Cost),
	)

	return res, nil
}

// invariant logs and wraps an internal failure of component idx.
func (p *pipeline) invariant(idx int, err error) error {
	p.log.Error("internal invariant violated",
		zap.Int("component", idx),
		zap.String("mode", p.mode.String()),
		zap.Error(err),
	)

	return fmt.Errorf("%w: component %d: %w", ErrInternalInvariant, idx, err)
}
