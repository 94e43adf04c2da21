// Package postman solves three route-inspection (Chinese Postman) variants on
// undirected graphs built with package core.
//
//   - SolveUnweighted: per component, a closed walk covering every edge with the
//     fewest repeated edges.
//   - SolveWeighted: per component, a closed walk covering every edge at minimum
//     total weight.
//   - SolveBudgeted: one greedy walk maximising distinct edges with total weight
//     at most K.
//
// The first two share one pipeline per connected component: collect the
// odd-degree vertices, compute shortest paths between them (package shortest),
// pair them with an exact minimum-cost perfect matching (package matching),
// add one parallel copy of every edge on each matched path to a multigraph
// view, and read off an Eulerian circuit (package euler). Components without
// edges produce no walk. Walks refer to the caller's edge IDs, so duplicated
// traversals show up as repeated IDs.
//
// The budgeted variant is a heuristic: it tries every start vertex and at each
// step takes the lightest unused incident edge that still fits, with no
// backtracking.
//
// Options:
//
//	postman.WithLogger(logger)  // *zap.Logger, default no-op
//	postman.WithWorkers(4)      // bounded parallelism over components / start vertices
//
// Output is identical for every worker count.
package postman
