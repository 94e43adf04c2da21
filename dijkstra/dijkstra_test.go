// Package dijkstra_test validates argument checks, weight validation, distances,
// path reconstruction and multigraph edge selection.
package dijkstra_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/postman/core"
	"github.com/katalvlaran/postman/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation Tests
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	if _, err := dijkstra.Dijkstra(g); !errors.Is(err, dijkstra.ErrEmptySource) {
		t.Fatalf("Expected ErrEmptySource, got %v", err)
	}
}

func TestDijkstra_NilGraph(t *testing.T) {
	if _, err := dijkstra.Dijkstra(nil, dijkstra.Source("X")); !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("Expected ErrNilGraph, got %v", err)
	}
}

func TestDijkstra_UnweightedGraph(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	if _, err := dijkstra.Dijkstra(g, dijkstra.Source("A")); !errors.Is(err, dijkstra.ErrUnweightedGraph) {
		t.Fatalf("Expected ErrUnweightedGraph, got %v", err)
	}
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	if _, err := dijkstra.Dijkstra(g, dijkstra.Source("X")); !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Fatalf("Expected ErrVertexNotFound, got %v", err)
	}
}

func TestDijkstra_InvalidWeights(t *testing.T) {
	for name, w := range map[string]float64{
		"negative": -5,
		"nan":      math.NaN(),
		"inf":      math.Inf(1),
	} {
		t.Run(name, func(t *testing.T) {
			g := core.NewGraph(core.WithWeighted())
			g.AddEdge("A", "B", 1)
			g.AddEdge("B", "C", w)
			_, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
			if !errors.Is(err, dijkstra.ErrInvalidWeight) {
				t.Fatalf("Expected ErrInvalidWeight, got %v", err)
			}
		})
	}
}

func TestWithMaxDistance_PanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative MaxDistance")
		}
	}()
	dijkstra.WithMaxDistance(-1)
}

// ------------------------------------------------------------------------
// 2. Basic Functionality
// ------------------------------------------------------------------------

func TestDijkstra_Triangle(t *testing.T) {
	// A—B(1), B—C(2), A—C(5)
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 5)

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist["A"] != 0 || res.Dist["B"] != 1 || res.Dist["C"] != 3 {
		t.Errorf("Unexpected distances: %v", res.Dist)
	}
	path, err := res.PathTo("C")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(C) = %v; want %v", path, want)
	}
	edges, err := res.EdgePathTo("C")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"e1", "e2"}; !reflect.DeepEqual(edges, want) {
		t.Errorf("EdgePathTo(C) = %v; want %v", edges, want)
	}
}

func TestDijkstra_FractionalWeights(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", 0.25)
	g.AddEdge("B", "C", 0.5)
	g.AddEdge("A", "C", 1)

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Dist["C"]; math.Abs(got-0.75) > 1e-12 {
		t.Errorf("dist[C] = %g; want 0.75", got)
	}
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", 1)
	g.AddEdge("X", "Y", 1)

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(res.Dist["X"], 1) || res.Reached("X") {
		t.Errorf("X should be unreachable, dist=%g", res.Dist["X"])
	}
	if _, err := res.PathTo("X"); !errors.Is(err, dijkstra.ErrNoPath) {
		t.Errorf("PathTo(X): want ErrNoPath, got %v", err)
	}
	if _, err := res.EdgePathTo("X"); !errors.Is(err, dijkstra.ErrNoPath) {
		t.Errorf("EdgePathTo(X): want ErrNoPath, got %v", err)
	}
}

func TestDijkstra_MaxDistance(t *testing.T) {
	// Chain A—B—C—D with unit weights.
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("C", "D", 1)

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(2))
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist["C"] != 2 {
		t.Errorf("dist[C] = %g; want 2", res.Dist["C"])
	}
	if res.Reached("D") {
		t.Errorf("D should be beyond MaxDistance, dist=%g", res.Dist["D"])
	}
}

func TestDijkstra_MultigraphPicksCheapestInstance(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	g.AddEdge("A", "B", 4)
	cheap, _ := g.AddEdge("A", "B", 2)
	g.AddEdge("A", "B", 2)

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist["B"] != 2 {
		t.Errorf("dist[B] = %g; want 2", res.Dist["B"])
	}
	if res.PrevEdge["B"] != cheap {
		t.Errorf("PrevEdge[B] = %s; want %s", res.PrevEdge["B"], cheap)
	}
}

func TestDijkstra_ZeroWeightEdges(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist["C"] != 0 {
		t.Errorf("dist[C] = %g; want 0", res.Dist["C"])
	}
	path, _ := res.PathTo("C")
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(C) = %v; want %v", path, want)
	}
}
