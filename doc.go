// Package postman solves route inspection (the Chinese Postman Problem) on
// undirected graphs.
//
// A closed walk that traverses every edge at least once exists in every
// connected component; the question is how little it can repeat. The
// subpackages build up to three solvers:
//
//	core/      Graph, Vertex, Edge with stable edge IDs and parallel-edge support
//	bfs/       hop-count shortest-path trees
//	dijkstra/  weighted shortest-path trees and weight validation
//	shortest/  all-pairs distance tables between terminal vertices
//	matching/  minimum-cost perfect matching (Edmonds' blossom algorithm)
//	euler/     Hierholzer's Euler circuit over edge instances
//	postman/   SolveUnweighted, SolveWeighted, SolveBudgeted
//	builder/   deterministic topologies for tests and examples
//
// Quick ASCII example:
//
//	A───B───C
//
// has odd vertices A and C. Pairing them duplicates A–B and B–C, so the
// cheapest covering walk is A B C B A.
//
//	go get github.com/katalvlaran/postman
package postman
