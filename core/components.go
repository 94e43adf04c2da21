// File: components.go
// Role: Connected-component partition and connectivity queries.
// Determinism:
//   - Components are discovered by scanning vertices in ascending ID order;
//     each component's vertex list is sorted ascending.

package core

import "sort"

// Components partitions g into its connected components.
//
// Components are returned in discovery order: the component holding the smallest
// vertex ID first, then the component holding the smallest ID not yet assigned,
// and so on. Isolated vertices form singleton components.
//
// Complexity: O(V log V + E).
func Components(g *Graph) [][]string {
	if g == nil {
		return nil
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	order := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		order = append(order, id)
	}
	sort.Strings(order)

	seen := make(map[string]bool, len(order))
	var comps [][]string
	for _, root := range order {
		if seen[root] {
			continue
		}
		seen[root] = true
		comp := []string{root}
		for head := 0; head < len(comp); head++ {
			for nbr, bucket := range g.adjacencyList[comp[head]] {
				if len(bucket) == 0 || seen[nbr] {
					continue
				}
				seen[nbr] = true
				comp = append(comp, nbr)
			}
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps
}

// IsConnected reports whether g has exactly one connected component.
// The empty graph is not connected.
func IsConnected(g *Graph) bool {
	return len(Components(g)) == 1
}
