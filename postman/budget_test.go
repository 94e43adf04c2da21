package postman_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/postman/builder"
	"github.com/katalvlaran/postman/core"
	"github.com/katalvlaran/postman/postman"
)

func TestSolveBudgeted_Fixtures(t *testing.T) {
	for _, f := range loadFixtures[budgetFixture](t, "budget.yaml") {
		t.Run(f.Name, func(t *testing.T) {
			g := f.build(t, true)
			for _, workers := range []int{1, 4} {
				walks, stats, err := postman.SolveBudgeted(g, f.K, postman.WithWorkers(workers))
				require.NoError(t, err)
				require.Len(t, walks, 1)
				w := walks[0]

				assert.Equal(t, f.Expect.DistinctEdges, stats.DistinctEdges)
				assert.Equal(t, f.Expect.TotalCost, stats.TotalCost)
				assert.Equal(t, f.K, stats.Budget)
				assert.Equal(t, stats.DistinctEdges, w.Len())
				assert.Equal(t, stats.TotalCost, w.Cost)
				assert.LessOrEqual(t, w.Cost, f.K)
				if f.Expect.DistinctEdges == 0 {
					assert.Empty(t, w.Vertices)
					assert.Empty(t, w.Edges)
					continue
				}
				assert.Equal(t, f.Expect.Vertices, w.Vertices)
				assert.Equal(t, f.Expect.Edges, w.Edges)
			}
		})
	}
}

func TestSolveBudgeted_Properties(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithWeighted(), core.WithMultiEdges()},
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformIntWeight(1, 6)},
			builder.Cycle(5),
			builder.RandomSparse(5, 0.4),
		)
		require.NoError(t, err)

		total := g.TotalWeight()
		for _, k := range []float64{0, 3, 7.5, total, 2 * total} {
			walks, stats, err := postman.SolveBudgeted(g, k)
			require.NoError(t, err)
			w := walks[0]

			require.LessOrEqual(t, stats.TotalCost, k)
			require.LessOrEqual(t, stats.DistinctEdges, g.EdgeCount())
			if k == 0 {
				require.Zero(t, stats.DistinctEdges)
				require.Zero(t, stats.TotalCost)
			}

			seen := make(map[string]bool)
			var cost float64
			for i, eid := range w.Edges {
				require.False(t, seen[eid], "edge %s reused", eid)
				seen[eid] = true
				e, err := g.GetEdge(eid)
				require.NoError(t, err)
				require.Equal(t, w.Vertices[i+1], e.Other(w.Vertices[i]))
				cost += e.Weight
			}
			require.Equal(t, stats.TotalCost, cost)
		}
	}
}

func TestSolveBudgeted_Errors(t *testing.T) {
	_, _, err := postman.SolveBudgeted(nil, 1)
	require.ErrorIs(t, err, postman.ErrNilGraph)

	plain := core.NewGraph()
	_, _ = plain.AddEdge("A", "B", 0)
	_, _, err = postman.SolveBudgeted(plain, 1)
	require.ErrorIs(t, err, postman.ErrGraphNotWeighted)

	split := core.NewGraph(core.WithWeighted())
	_, _ = split.AddEdge("A", "B", 1)
	_, _ = split.AddEdge("X", "Y", 1)
	obs, logs := observer.New(zapcore.DebugLevel)
	_, _, err = postman.SolveBudgeted(split, 5, postman.WithLogger(zap.New(obs)))
	require.ErrorIs(t, err, postman.ErrGraphDisconnected)
	require.Zero(t, logs.Len())

	_, _, err = postman.SolveBudgeted(core.NewGraph(core.WithWeighted()), 5)
	require.ErrorIs(t, err, postman.ErrGraphDisconnected)

	neg := core.NewGraph(core.WithWeighted())
	_, _ = neg.AddEdge("A", "B", -1)
	_, _, err = postman.SolveBudgeted(neg, 5)
	require.ErrorIs(t, err, postman.ErrInvalidWeight)

	ok := core.NewGraph(core.WithWeighted())
	_, _ = ok.AddEdge("A", "B", 1)
	for _, k := range []float64{-1, math.NaN()} {
		_, _, err = postman.SolveBudgeted(ok, k)
		require.ErrorIs(t, err, postman.ErrInvalidBudget)
	}

	_, _, err = postman.SolveBudgeted(ok, 1, postman.WithWorkers(-3))
	require.ErrorIs(t, err, postman.ErrInvalidOptions)
}

func TestSolveBudgeted_NoBacktracking(t *testing.T) {
	// Starting at A the walk stops at B in front of the 9-edge even though
	// the cheap edge C-D is unused. No trial detours to reach it.
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 9)
	_, _ = g.AddEdge("C", "D", 1)

	walks, stats, err := postman.SolveBudgeted(g, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.DistinctEdges)
	assert.Equal(t, []string{"A", "B"}, walks[0].Vertices)
}
