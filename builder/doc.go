// Package builder produces deterministic graph fixtures for tests, examples
// and benchmarks of the route-inspection packages.
//
// BuildGraph creates a core.Graph and applies Constructors in order:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithWeighted()},
//		[]builder.BuilderOption{builder.WithSeed(1), builder.WithUniformIntWeight(1, 9)},
//		builder.Grid(3, 4),
//	)
//
// Constructors: Path, Cycle, Star, Complete, Grid, RandomSparse. Weights are
// drawn only when the graph is weighted; unweighted graphs receive the core
// default. Composing several constructors on one graph is allowed as long as
// their vertex IDs do not produce a duplicate edge on a simple graph.
package builder
