package postman

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/postman/core"
)

// SolveBudgeted greedily builds one walk that uses as many distinct edges as
// possible while its total weight stays within k.
//
// Every vertex, in ascending ID order, is tried as a start. From the current
// vertex the walk takes the lightest unused incident edge if it still fits
// under k, otherwise it stops; it never backtracks or detours towards unused
// edges elsewhere. The best trial has the most distinct edges, then the
// lowest cost, then the earliest start vertex. When no edge fits the single
// returned walk is empty.
//
// Preconditions are checked before any trial runs: the graph must be
// weighted, its weights finite and non-negative, it must form one connected
// component, and k must be non-negative (and not NaN).
//
// Errors: ErrNilGraph, ErrInvalidOptions, ErrGraphNotWeighted, ErrInvalidWeight,
// ErrGraphDisconnected, ErrInvalidBudget.
//
// Complexity: O(V·(V + E)) after an O(E log E) sort of incident edges.
func SolveBudgeted(g *core.Graph, k float64, opts ...Option) ([]Walk, BudgetStats, error) {
	stats := BudgetStats{Budget: k}
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
	if comps := core.Components(g); len(comps) != 1 {
		return nil, stats, fmt.Errorf("%w: %d components, %d vertices, %d edges",
			ErrGraphDisconnected, len(comps), g.VertexCount(), g.EdgeCount())
	}
	if err = validateBudget(k); err != nil {
		return nil, stats, err
	}

	bw, err := newBudgetWalker(g, k)
	if err != nil {
		return nil, stats, err
	}
	starts := g.Vertices()
	trials := make([]Walk, len(starts))
	err = forEach(o.Workers, len(starts), func(i int) error {
		trials[i] = bw.walk(starts[i])
		return nil
	})
	if err != nil {
		return nil, stats, err
	}

	best := 0
	for i := 1; i < len(trials); i++ {
		if better(trials[i], trials[best]) {
			best = i
			o.Logger.Debug("budget trial improved",
				zap.String("start", starts[i]),
				zap.Int("distinct_edges", trials[i].Len()),
				zap.Float64("cost", trials[i].Cost),
			)
		}
	}

	walk := trials[best]
	if walk.Len() == 0 {
		walk = Walk{}
	}
	stats.DistinctEdges = walk.Len()
	stats.TotalCost = walk.Cost

	o.Logger.Info("budgeted walk solved",
		zap.Float64("K", k),
		zap.Int("starts", len(starts)),
		zap.Int("distinct_edges", stats.DistinctEdges),
		zap.Float64("total_cost", stats.TotalCost),
	)

	return []Walk{walk}, stats, nil
}

// better orders trials: more distinct edges, then lower cost. Equal trials
// keep the earlier one.
func better(a, b Walk) bool {
	if a.Len() != b.Len() {
		return a.Len() > b.Len()
	}
	return a.Cost < b.Cost
}

// budgetWalker holds the read-only incident-edge index shared by all trials.
type budgetWalker struct {
	k float64
	// incid[v] lists v's edges by ascending weight, then creation order.
	incid map[string][]*core.Edge
}

func newBudgetWalker(g *core.Graph, k float64) (*budgetWalker, error) {
	bw := &budgetWalker{k: k, incid: make(map[string][]*core.Edge, g.VertexCount())}
	for _, v := range g.Vertices() {
		list, err := g.Neighbors(v)
		if err != nil {
			return nil, err
		}
		sort.SliceStable(list, func(i, j int) bool { return list[i].Weight < list[j].Weight })
		bw.incid[v] = list
	}

	return bw, nil
}

// walk runs one greedy trial from start. Each edge is used at most once and
// the per-vertex cursor only moves forward past used edges, so a trial costs
// O(V + E).
func (bw *budgetWalker) walk(start string) Walk {
	used := make(map[string]bool)
	cursor := make(map[string]int)
	w := Walk{Vertices: []string{start}}

	for cur := start; ; {
		list := bw.incid[cur]
		i := cursor[cur]
		for i < len(list) && used[list[i].ID] {
			i++
		}
		cursor[cur] = i
		// The lightest unused edge is the only candidate: if it does not fit, none does.
		if i == len(list) || w.Cost+list[i].Weight > bw.k {
			break
		}
		e := list[i]
		used[e.ID] = true
		w.Cost += e.Weight
		cur = e.Other(cur)
		w.Vertices = append(w.Vertices, cur)
		w.Edges = append(w.Edges, e.ID)
	}

	return w
}
