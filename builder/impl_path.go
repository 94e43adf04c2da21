package builder

import (
	"fmt"

	"github.com/katalvlaran/postman/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds P_n: edges 0–1, 1–2, ..., (n-2)–(n-1) in that order. n ≥ 2.
// The two endpoints are the only odd-degree vertices.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodPath, g, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodPath, g, cfg, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
