package shortest

import (
	"fmt"

	"github.com/katalvlaran/postman/core"
)

// Table holds pairwise shortest distances and paths among a fixed list of terminals.
//
// Entries are indexed by terminal position. For i < j the distance and path are
// those found by the search rooted at terminal i; (j, i) mirrors (i, j), so the
// distance matrix is exactly symmetric.
type Table struct {
	Terminals []string
	Mode      Mode

	dist  [][]float64
	trees []*Tree
}

// Between runs From once per terminal and keeps only terminal-to-terminal entries.
//
// Errors:
//   - anything From returns;
//   - ErrUnreachable if some pair of terminals is disconnected.
//
// Complexity: k searches, k = len(terminals), plus O(k²) for the matrix.
func Between(g *core.Graph, terminals []string, mode Mode) (*Table, error) {
	k := len(terminals)
	t := &Table{
		Terminals: append([]string(nil), terminals...),
		Mode:      mode,
		dist:      make([][]float64, k),
		trees:     make([]*Tree, k),
	}
	for i, src := range terminals {
		tree, err := From(g, src, mode)
		if err != nil {
			return nil, err
		}
		t.trees[i] = tree
		t.dist[i] = make([]float64, k)
	}

	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if !t.trees[i].Reachable(terminals[j]) {
				return nil, fmt.Errorf("%w: %q from %q", ErrUnreachable, terminals[j], terminals[i])
			}
			d := t.trees[i].Distance(terminals[j])
			t.dist[i][j] = d
			t.dist[j][i] = d
		}
	}

	return t, nil
}

// Len returns the number of terminals.
func (t *Table) Len() int { return len(t.Terminals) }

// Dist returns the shortest distance between terminals i and j.
func (t *Table) Dist(i, j int) float64 { return t.dist[i][j] }

// Path returns the vertex path from terminal i to terminal j.
func (t *Table) Path(i, j int) ([]string, error) {
	if i > j {
		p, err := t.trees[j].Path(t.Terminals[i])
		if err != nil {
			return nil, err
		}
		reverse(p)
		return p, nil
	}

	return t.trees[i].Path(t.Terminals[j])
}

// EdgePath returns the edge instance IDs from terminal i to terminal j.
func (t *Table) EdgePath(i, j int) ([]string, error) {
	if i > j {
		p, err := t.trees[j].EdgePath(t.Terminals[i])
		if err != nil {
			return nil, err
		}
		reverse(p)
		return p, nil
	}

	return t.trees[i].EdgePath(t.Terminals[j])
}
