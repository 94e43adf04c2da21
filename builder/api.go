// SPDX-License-Identifier: MIT
// Package: postman/builder
//
// api.go - public entry point and the Constructor contract.
//
// Determinism: same graph options, builder options, seed and constructor
// order produce identical graphs, including edge IDs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/postman/core"
)

// Constructor applies one deterministic mutation to g using the resolved config.
// Constructors validate their parameters first and return sentinel errors.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves bopts and applies cons
// in order. Constructor errors are wrapped as "BuildGraph: %w".
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts cfg.idFn(0..n-1).
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}
	return nil
}

// addEdge inserts u–v, drawing a weight from cfg only when g is weighted.
func addEdge(method string, g *core.Graph, cfg builderConfig, u, v string) error {
	var w float64
	if g.Weighted() {
		w = cfg.weightFn(cfg.rng)
	}
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s–%s, w=%g): %w", method, u, v, w, err)
	}
	return nil
}
