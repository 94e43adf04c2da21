// Package euler extracts Eulerian circuits from undirected (multi)graphs using
// Hierholzer's algorithm.
//
// The walk is tracked by edge instance ID rather than by vertex pair, so a
// multigraph with k parallel copies of {u,v} yields k distinct traversals.
// Preconditions are checked up front: every degree must be even and all edges
// must be reachable from the start vertex.
//
//	c, err := euler.Find(g, "")
//	if err != nil { ... }
//	fmt.Println(c.Vertices, c.EdgeIDs)
//
// Verify re-checks any circuit against its graph in linear time.
package euler
