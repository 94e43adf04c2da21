package matching

// MaxWeightForTest exposes the general blossom solver to the external tests.
// Each edge is {i, j, weight}.
func MaxWeightForTest(n int, edges [][3]int, maxCard bool) []int {
	we := make([]wedge, len(edges))
	for k, e := range edges {
		we[k] = wedge{i: e[0], j: e[1], w: float64(e[2])}
	}

	return maxWeightMatching(n, we, maxCard)
}
