package postman_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/postman/core"
	"github.com/katalvlaran/postman/matching"
	"github.com/katalvlaran/postman/postman"
	"github.com/katalvlaran/postman/shortest"
)

type edgeFixture struct {
	U string  `yaml:"u"`
	V string  `yaml:"v"`
	W float64 `yaml:"w"`
}

type graphFixture struct {
	Name     string        `yaml:"name"`
	Vertices []string      `yaml:"vertices"`
	Edges    []edgeFixture `yaml:"edges"`
}

// build inserts vertices, then edges in listed order. An unweighted build
// drops the weights.
func (f graphFixture) build(t *testing.T, weighted bool) *core.Graph {
	t.Helper()
	var g *core.Graph
	if weighted {
		g = core.NewGraph(core.WithWeighted())
	} else {
		g = core.NewGraph()
	}
	for _, v := range f.Vertices {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range f.Edges {
		w := e.W
		if !weighted {
			w = 0
		}
		_, err := g.AddEdge(e.U, e.V, w)
		require.NoError(t, err)
	}

	return g
}

type pipelineFixture struct {
	graphFixture `yaml:",inline"`
	Unweighted   struct {
		Walks               int `yaml:"walks"`
		OriginalEdges       int `yaml:"original_edges"`
		TotalTraversedEdges int `yaml:"total_traversed_edges"`
		RepeatedEdges       int `yaml:"repeated_edges"`
	} `yaml:"unweighted"`
	Weighted struct {
		Walks         int     `yaml:"walks"`
		OriginalEdges int     `yaml:"original_edges"`
		OriginalCost  float64 `yaml:"original_cost"`
		TotalCost     float64 `yaml:"total_cost"`
		ExtraCost     float64 `yaml:"extra_cost"`
	} `yaml:"weighted"`
}

type budgetFixture struct {
	graphFixture `yaml:",inline"`
	K            float64 `yaml:"k"`
	Expect       struct {
		DistinctEdges int      `yaml:"distinct_edges"`
		TotalCost     float64  `yaml:"total_cost"`
		Vertices      []string `yaml:"vertices"`
		Edges         []string `yaml:"edges"`
	} `yaml:"expect"`
}

func loadFixtures[T any](t *testing.T, name string) []T {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	var out []T
	require.NoError(t, yaml.Unmarshal(data, &out))
	require.NotEmpty(t, out, "no fixtures in %s", name)

	return out
}

// requireCovering checks that every walk is closed and consistent with g and
// that together the walks traverse every edge of g at least once.
func requireCovering(t *testing.T, g *core.Graph, walks []postman.Walk) {
	t.Helper()
	counts := make(map[string]int)
	for _, w := range walks {
		require.Len(t, w.Vertices, len(w.Edges)+1)
		require.Equal(t, w.Vertices[0], w.Vertices[len(w.Vertices)-1], "walk must be closed")
		for i, eid := range w.Edges {
			e, err := g.GetEdge(eid)
			require.NoError(t, err)
			u, v := w.Vertices[i], w.Vertices[i+1]
			require.True(t, (e.From == u && e.To == v) || (e.From == v && e.To == u),
				"edge %s does not join %s and %s", eid, u, v)
			counts[eid]++
		}
	}
	for _, e := range g.Edges() {
		require.GreaterOrEqual(t, counts[e.ID], 1, "edge %s not covered", e.ID)
	}
}

// optimalExtra sums, over all components, the cost of a brute-force optimal
// pairing of the odd-degree vertices.
func optimalExtra(t *testing.T, g *core.Graph, mode shortest.Mode) float64 {
	t.Helper()
	var total float64
	for _, comp := range core.Components(g) {
		keep := make(map[string]bool, len(comp))
		for _, v := range comp {
			keep[v] = true
		}
		sub := core.InducedSubgraph(g, keep)
		odd := sub.OddVertices()
		if len(odd) == 0 {
			continue
		}
		table, err := shortest.Between(sub, odd, mode)
		require.NoError(t, err)
		total += bruteMinPerfect(len(odd), table.Dist)
	}

	return total
}

func bruteMinPerfect(n int, cost matching.CostFunc) float64 {
	full := 1<<n - 1
	memo := make(map[int]float64)
	var solve func(mask int) float64
	solve = func(mask int) float64 {
		if mask == full {
			return 0
		}
		if v, ok := memo[mask]; ok {
			return v
		}
		i := 0
		for mask&(1<<i) != 0 {
			i++
		}
		best := math.Inf(1)
		for j := i + 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				best = math.Min(best, cost(i, j)+solve(mask|1<<i|1<<j))
			}
		}
		memo[mask] = best
		return best
	}

	return solve(0)
}
