// Package shortest is the single-source shortest-path engine used by the
// postman pipeline. It hides whether distances are hop counts (bfs) or
// weighted costs (dijkstra) behind one Tree type, and builds the pairwise
// Table over a set of terminal vertices that feeds the matching step.
package shortest

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/postman/bfs"
	"github.com/katalvlaran/postman/core"
	"github.com/katalvlaran/postman/dijkstra"
)

// Mode selects how edge costs are measured.
type Mode int

const (
	// Unweighted measures distance in edges (breadth-first search).
	Unweighted Mode = iota

	// Weighted measures distance as the sum of edge weights (Dijkstra).
	Weighted
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Unweighted:
		return "unweighted"
	case Weighted:
		return "weighted"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil graph.
	ErrNilGraph = errors.New("shortest: graph is nil")

	// ErrUnknownMode indicates a Mode value other than Unweighted or Weighted.
	ErrUnknownMode = errors.New("shortest: unknown mode")

	// ErrUnreachable indicates that a requested vertex is not reachable from the source.
	ErrUnreachable = errors.New("shortest: vertex unreachable")
)

// Tree holds distances and one shortest path from Source to every reachable vertex.
type Tree struct {
	Source string
	Mode   Mode

	dist     map[string]float64
	prev     map[string]string
	prevEdge map[string]string
}

// Distance returns the distance from Source to v, or +Inf when v is unreachable.
func (t *Tree) Distance(v string) float64 {
	if d, ok := t.dist[v]; ok {
		return d
	}

	return math.Inf(1)
}

// Reachable reports whether v has a finite distance from Source.
func (t *Tree) Reachable(v string) bool {
	return !math.IsInf(t.Distance(v), 1)
}

// Path returns the vertex sequence Source → v.
func (t *Tree) Path(v string) ([]string, error) {
	if !t.Reachable(v) {
		return nil, fmt.Errorf("%w: %q from %q", ErrUnreachable, v, t.Source)
	}
	path := []string{v}
	for cur := v; cur != t.Source; {
		cur = t.prev[cur]
		path = append(path, cur)
	}
	reverse(path)

	return path, nil
}

// EdgePath returns the edge instance IDs along Path(v), in walking order.
func (t *Tree) EdgePath(v string) ([]string, error) {
	if !t.Reachable(v) {
		return nil, fmt.Errorf("%w: %q from %q", ErrUnreachable, v, t.Source)
	}
	var edges []string
	for cur := v; cur != t.Source; cur = t.prev[cur] {
		edges = append(edges, t.prevEdge[cur])
	}
	reverse(edges)

	return edges, nil
}

// From computes the shortest-path tree rooted at source.
//
// Unweighted mode runs BFS and ignores weights; ties are broken by traversal
// order. Weighted mode runs Dijkstra and therefore requires a weighted graph
// with finite non-negative weights (dijkstra.ErrInvalidWeight otherwise).
//
// Complexity: O(V + E) unweighted, O((V + E) log V) weighted.
func From(g *core.Graph, source string, mode Mode) (*Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	switch mode {
	case Unweighted:
		res, err := bfs.BFS(g, source)
		if err != nil {
			return nil, fmt.Errorf("shortest: bfs from %q: %w", source, err)
		}
		t := &Tree{
			Source:   source,
			Mode:     mode,
			dist:     make(map[string]float64, len(res.Depth)),
			prev:     res.Parent,
			prevEdge: res.ParentEdge,
		}
		for v, d := range res.Depth {
			t.dist[v] = float64(d)
		}
		return t, nil

	case Weighted:
		res, err := dijkstra.Dijkstra(g, dijkstra.Source(source))
		if err != nil {
			return nil, fmt.Errorf("shortest: dijkstra from %q: %w", source, err)
		}
		return &Tree{
			Source:   source,
			Mode:     mode,
			dist:     res.Dist,
			prev:     res.Prev,
			prevEdge: res.PrevEdge,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
