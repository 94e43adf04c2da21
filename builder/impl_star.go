package builder

import (
	"fmt"

	"github.com/katalvlaran/postman/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
	// StarCenterID is the fixed ID of the hub vertex.
	StarCenterID = "Center"
)

// Star builds a hub "Center" joined to leaves idFn(0..n-2). n ≥ 2 counts the hub.
// Every leaf has degree 1, a worst case for odd-vertex pairing.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(StarCenterID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, StarCenterID, err)
		}
		if err := addVertices(methodStar, g, cfg, n-1); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(methodStar, g, cfg, StarCenterID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
