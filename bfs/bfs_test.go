package bfs_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/postman/bfs"
	"github.com/katalvlaran/postman/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	g.AddVertex("A")
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("A")
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	path, err := res.PathTo("A")
	if err != nil || !reflect.DeepEqual(path, []string{"A"}) {
		t.Errorf("PathTo(A) = %v, %v; want [A]", path, err)
	}
	edges, err := res.EdgePathTo("A")
	if err != nil || len(edges) != 0 {
		t.Errorf("EdgePathTo(A) = %v, %v; want empty", edges, err)
	}
}

// TestBFS_CycleDepths covers a 4-cycle and checks depths.
func TestBFS_CycleDepths(t *testing.T) {
	// A–B–C–D–A
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)
	g.AddEdge("C", "D", 0)
	g.AddEdge("D", "A", 0)

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}
	if !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	// A–B is created before D–A, so C is reached through B.
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

// TestBFS_IgnoresWeights ensures hop count wins over a cheaper multi-hop route.
func TestBFS_IgnoresWeights(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("A", "C", 100)

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if res.Depth["C"] != 1 {
		t.Errorf("Depth[C] = %d; want 1", res.Depth["C"])
	}
}

// TestBFS_UnreachableAndMaxDepth checks PathTo failures.
func TestBFS_UnreachableAndMaxDepth(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)
	g.AddEdge("X", "Y", 0)

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(1))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := res.PathTo("C"); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo(C) beyond MaxDepth: want ErrNoPath, got %v", err)
	}
	if _, err := res.EdgePathTo("X"); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("EdgePathTo(X) other component: want ErrNoPath, got %v", err)
	}
}

// TestBFS_HookErrorAndFilter covers OnVisit aborts and neighbor filtering.
func TestBFS_HookErrorAndFilter(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	g.AddEdge("A", "C", 0)

	stop := errors.New("stop")
	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("want hook error, got %v", err)
	}

	res, err := bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "C" }))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}
