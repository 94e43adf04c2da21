package euler_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/postman/core"
	"github.com/katalvlaran/postman/euler"
)

func build(t *testing.T, multi bool, pairs ...[2]string) *core.Graph {
	t.Helper()
	var opts []core.GraphOption
	if multi {
		opts = append(opts, core.WithMultiEdges())
	}
	g := core.NewGraph(opts...)
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}
	return g
}

func TestFind_Square(t *testing.T) {
	g := build(t, false, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "A"})

	c, err := euler.Find(g, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "A"}, c.Vertices)
	assert.Equal(t, []string{"e1", "e2", "e3", "e4"}, c.EdgeIDs)
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, "A", c.Start())
	require.NoError(t, euler.Verify(g, c))

	c, err = euler.Find(g, "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A", "D", "C"}, c.Vertices)
	require.NoError(t, euler.Verify(g, c))
}

func TestFind_SplicesSubtour(t *testing.T) {
	// Triangle A-B-C plus a second triangle B-D-E hanging off B.
	g := build(t, false,
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"},
		[2]string{"B", "D"}, [2]string{"D", "E"}, [2]string{"E", "B"},
	)

	c, err := euler.Find(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "E", "B", "C", "A"}, c.Vertices)
	assert.Equal(t, []string{"e1", "e4", "e5", "e6", "e2", "e3"}, c.EdgeIDs)
	require.NoError(t, euler.Verify(g, c))
}

func TestFind_ParallelEdges(t *testing.T) {
	g := build(t, true, [2]string{"A", "B"}, [2]string{"A", "B"})

	c, err := euler.Find(g, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "A"}, c.Vertices)
	assert.Equal(t, []string{"e1", "e2"}, c.EdgeIDs)
}

func TestFind_Errors(t *testing.T) {
	_, err := euler.Find(nil, "")
	require.ErrorIs(t, err, euler.ErrNilGraph)

	empty := core.NewGraph()
	require.NoError(t, empty.AddVertex("A"))
	_, err = euler.Find(empty, "")
	require.ErrorIs(t, err, euler.ErrNoEdges)

	path := build(t, false, [2]string{"A", "B"}, [2]string{"B", "C"})
	_, err = euler.Find(path, "")
	require.ErrorIs(t, err, euler.ErrOddDegree)

	twoTriangles := build(t, false,
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"},
		[2]string{"X", "Y"}, [2]string{"Y", "Z"}, [2]string{"Z", "X"},
	)
	_, err = euler.Find(twoTriangles, "")
	require.ErrorIs(t, err, euler.ErrDisconnected)

	_, err = euler.Find(twoTriangles, "Q")
	require.ErrorIs(t, err, euler.ErrStartNotFound)

	require.NoError(t, twoTriangles.AddVertex("I"))
	_, err = euler.Find(twoTriangles, "I")
	require.ErrorIs(t, err, euler.ErrDisconnected)
}

func TestVerify_RejectsBadWalks(t *testing.T) {
	g := build(t, false, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"})
	good, err := euler.Find(g, "")
	require.NoError(t, err)

	cases := map[string]*euler.Circuit{
		"nil":       nil,
		"malformed": {Vertices: []string{"A"}, EdgeIDs: []string{"e1"}},
		"open":      {Vertices: []string{"A", "B", "C", "B"}, EdgeIDs: []string{"e1", "e2", "e2"}},
		"short":     {Vertices: []string{"A", "B", "A"}, EdgeIDs: []string{"e1", "e1"}},
		"repeat":    {Vertices: []string{"A", "B", "A", "B"}, EdgeIDs: []string{"e1", "e1", "e1"}},
		"wrong":     {Vertices: []string{"A", "C", "B", "A"}, EdgeIDs: []string{"e1", "e2", "e3"}},
		"unknown":   {Vertices: []string{"A", "B", "C", "A"}, EdgeIDs: []string{"e1", "e2", "e9"}},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, euler.Verify(g, c), euler.ErrBadCircuit)
		})
	}
	require.NoError(t, euler.Verify(g, good))
}

func TestFind_RandomEulerianMultigraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for iter := 0; iter < 50; iter++ {
		// A random closed walk always yields a connected graph with even degrees.
		n := 3 + rng.Intn(6)
		g := core.NewGraph(core.WithMultiEdges())
		cur, steps := 0, 4+rng.Intn(20)
		for step := 0; step < steps; step++ {
			nxt := rng.Intn(n)
			if nxt == cur {
				nxt = (cur + 1) % n
			}
			_, err := g.AddEdge(fmt.Sprint("v", cur), fmt.Sprint("v", nxt), 0)
			require.NoError(t, err)
			cur = nxt
		}
		if cur != 0 {
			_, err := g.AddEdge(fmt.Sprint("v", cur), "v0", 0)
			require.NoError(t, err)
		}

		c, err := euler.Find(g, "v0")
		require.NoError(t, err, "iter %d", iter)
		require.NoError(t, euler.Verify(g, c), "iter %d", iter)

		again, err := euler.Find(g, "v0")
		require.NoError(t, err)
		assert.Equal(t, c, again)
	}
}
