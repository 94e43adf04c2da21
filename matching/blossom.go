// SPDX-License-Identifier: MIT

package matching

// blossom.go implements Edmonds' weighted matching with blossom shrinking and
// dual variables (the primal-dual method of Galil, "Efficient algorithms for
// finding maximum matching in graphs", 1986). One stage grows alternating
// trees from every free vertex until it augments or proves no augmenting path
// exists, so there are at most n/2 + 1 stages of O(n²) work each on a dense
// graph: O(n³) overall.
//
// Conventions:
//   - edge k joins edges[k].i and edges[k].j;
//   - endpoint p = 2k or 2k+1 names one end of edge k, p^1 is the other end;
//   - vertices are 0..n-1, non-trivial blossoms are n..2n-1;
//   - label 0 = free, 1 = S (outer), 2 = T (inner); bit 4 marks a scan.

// wedge is one weighted edge of the matching graph.
type wedge struct {
	i, j int
	w    float64
}

type matcher struct {
	n        int
	edges    []wedge
	maxCard  bool
	endpoint []int
	// neighbend[v] lists the remote endpoints of edges incident to v.
	neighbend [][]int

	mate     []int // remote endpoint of v's matched edge, or -1
	label    []int
	labelend []int // endpoint through which the label was reached

	inblossom     []int // top-level blossom containing each vertex
	blossomparent []int
	blossomchilds [][]int
	blossombase   []int
	blossomendps  [][]int

	bestedge         []int   // least-slack edge to an S-blossom
	blossombestedges [][]int // nil means "not computed"
	unusedblossoms   []int

	dualvar   []float64
	allowedge []bool
	queue     []int
}

// maxWeightMatching returns mate[v] (a vertex index or -1) for a maximum
// weight matching. With maxCard set the matching is first of maximum
// cardinality and then of maximum weight among those.
func maxWeightMatching(n int, edges []wedge, maxCard bool) []int {
	if len(edges) == 0 || n == 0 {
		mate := make([]int, n)
		for v := range mate {
			mate[v] = unmatched
		}
		return mate
	}

	m := newMatcher(n, edges, maxCard)
	for stage := 0; stage < n; stage++ {
		if !m.stage() {
			break
		}
	}

	for v := 0; v < n; v++ {
		if m.mate[v] >= 0 {
			m.mate[v] = m.endpoint[m.mate[v]]
		}
	}

	return m.mate
}

func newMatcher(n int, edges []wedge, maxCard bool) *matcher {
	var maxWeight float64
	for _, e := range edges {
		if e.w > maxWeight {
			maxWeight = e.w
		}
	}

	m := &matcher{
		n:                n,
		edges:            edges,
		maxCard:          maxCard,
		endpoint:         make([]int, 2*len(edges)),
		neighbend:        make([][]int, n),
		mate:             filled(n, unmatched),
		label:            make([]int, 2*n),
		labelend:         filled(2*n, -1),
		inblossom:        make([]int, n),
		blossomparent:    filled(2*n, -1),
		blossomchilds:    make([][]int, 2*n),
		blossombase:      filled(2*n, -1),
		blossomendps:     make([][]int, 2*n),
		bestedge:         filled(2*n, -1),
		blossombestedges: make([][]int, 2*n),
		unusedblossoms:   make([]int, 0, n),
		dualvar:          make([]float64, 2*n),
		allowedge:        make([]bool, len(edges)),
	}
	for k, e := range edges {
		m.endpoint[2*k] = e.i
		m.endpoint[2*k+1] = e.j
		m.neighbend[e.i] = append(m.neighbend[e.i], 2*k+1)
		m.neighbend[e.j] = append(m.neighbend[e.j], 2*k)
	}
	for v := 0; v < n; v++ {
		m.inblossom[v] = v
		m.blossombase[v] = v
		m.dualvar[v] = maxWeight
	}
	for b := n; b < 2*n; b++ {
		m.unusedblossoms = append(m.unusedblossoms, b)
	}

	return m
}

// stage runs one augmentation stage and reports whether it augmented.
func (m *matcher) stage() bool {
	n := m.n
	for i := range m.label {
		m.label[i] = 0
		m.bestedge[i] = -1
	}
	for b := n; b < 2*n; b++ {
		m.blossombestedges[b] = nil
	}
	for k := range m.allowedge {
		m.allowedge[k] = false
	}
	m.queue = m.queue[:0]

	for v := 0; v < n; v++ {
		if m.mate[v] == unmatched && m.label[m.inblossom[v]] == 0 {
			m.assignLabel(v, 1, -1)
		}
	}

	augmented := false
	for {
		for len(m.queue) > 0 && !augmented {
			v := m.queue[len(m.queue)-1]
			m.queue = m.queue[:len(m.queue)-1]
			augmented = m.scanVertex(v)
		}
		if augmented {
			break
		}
		if !m.adjustDuals() {
			break
		}
	}

	if augmented {
		for b := n; b < 2*n; b++ {
			if m.blossomparent[b] == -1 && m.blossombase[b] >= 0 &&
				m.label[b] == 1 && m.dualvar[b] == 0 {
				m.expandBlossom(b, true)
			}
		}
	}

	return augmented
}

// scanVertex explores the edges of S-vertex v and reports an augmentation.
func (m *matcher) scanVertex(v int) bool {
	for _, p := range m.neighbend[v] {
		k := p / 2
		w := m.endpoint[p]
		if m.inblossom[v] == m.inblossom[w] {
			continue
		}

		var kslack float64
		if !m.allowedge[k] {
			kslack = m.slack(k)
			if kslack <= 0 {
				m.allowedge[k] = true
			}
		}

		switch {
		case m.allowedge[k]:
			switch {
			case m.label[m.inblossom[w]] == 0:
				m.assignLabel(w, 2, p^1)
			case m.label[m.inblossom[w]] == 1:
				if base := m.scanBlossom(v, w); base >= 0 {
					m.addBlossom(base, k)
				} else {
					m.augmentMatching(k)
					return true
				}
			case m.label[w] == 0:
				// w sits inside a T-blossom but has not been reached yet.
				m.label[w] = 2
				m.labelend[w] = p ^ 1
			}
		case m.label[m.inblossom[w]] == 1:
			b := m.inblossom[v]
			if m.bestedge[b] == -1 || kslack < m.slack(m.bestedge[b]) {
				m.bestedge[b] = k
			}
		case m.label[w] == 0:
			if m.bestedge[w] == -1 || kslack < m.slack(m.bestedge[w]) {
				m.bestedge[w] = k
			}
		}
	}

	return false
}

// adjustDuals performs one dual update. It returns false when the stage is
// over without an augmenting path.
func (m *matcher) adjustDuals() bool {
	n := m.n
	deltaType := -1
	var delta float64
	deltaEdge, deltaBlossom := -1, -1

	if !m.maxCard {
		deltaType = 1
		delta = minFloat(m.dualvar[:n])
	}
	for v := 0; v < n; v++ {
		if m.label[m.inblossom[v]] == 0 && m.bestedge[v] != -1 {
			if d := m.slack(m.bestedge[v]); deltaType == -1 || d < delta {
				delta, deltaType, deltaEdge = d, 2, m.bestedge[v]
			}
		}
	}
	for b := 0; b < 2*n; b++ {
		if m.blossomparent[b] == -1 && m.label[b] == 1 && m.bestedge[b] != -1 {
			if d := m.slack(m.bestedge[b]) / 2; deltaType == -1 || d < delta {
				delta, deltaType, deltaEdge = d, 3, m.bestedge[b]
			}
		}
	}
	for b := n; b < 2*n; b++ {
		if m.blossombase[b] >= 0 && m.blossomparent[b] == -1 && m.label[b] == 2 &&
			(deltaType == -1 || m.dualvar[b] < delta) {
			delta, deltaType, deltaBlossom = m.dualvar[b], 4, b
		}
	}
	if deltaType == -1 {
		// Only reachable with maxCard: no further progress is possible.
		deltaType = 1
		delta = minFloat(m.dualvar[:n])
		if delta < 0 {
			delta = 0
		}
	}

	for v := 0; v < n; v++ {
		switch m.label[m.inblossom[v]] {
		case 1:
			m.dualvar[v] -= delta
		case 2:
			m.dualvar[v] += delta
		}
	}
	for b := n; b < 2*n; b++ {
		if m.blossombase[b] >= 0 && m.blossomparent[b] == -1 {
			switch m.label[b] {
			case 1:
				m.dualvar[b] += delta
			case 2:
				m.dualvar[b] -= delta
			}
		}
	}

	switch deltaType {
	case 1:
		return false
	case 2:
		m.allowedge[deltaEdge] = true
		i, j := m.edges[deltaEdge].i, m.edges[deltaEdge].j
		if m.label[m.inblossom[i]] == 0 {
			i = j
		}
		m.queue = append(m.queue, i)
	case 3:
		m.allowedge[deltaEdge] = true
		m.queue = append(m.queue, m.edges[deltaEdge].i)
	case 4:
		m.expandBlossom(deltaBlossom, false)
	}

	return true
}

func (m *matcher) slack(k int) float64 {
	e := m.edges[k]
	return m.dualvar[e.i] + m.dualvar[e.j] - 2*e.w
}

// leaves appends every vertex contained in blossom b to out.
func (m *matcher) leaves(b int, out []int) []int {
	if b < m.n {
		return append(out, b)
	}
	for _, t := range m.blossomchilds[b] {
		if t < m.n {
			out = append(out, t)
		} else {
			out = m.leaves(t, out)
		}
	}

	return out
}

// assignLabel labels w and its top-level blossom with t, reached through
// endpoint p. A T-label immediately S-labels the mate of the blossom base.
func (m *matcher) assignLabel(w, t, p int) {
	b := m.inblossom[w]
	m.label[w], m.label[b] = t, t
	m.labelend[w], m.labelend[b] = p, p
	m.bestedge[w], m.bestedge[b] = -1, -1
	switch t {
	case 1:
		m.queue = m.leaves(b, m.queue)
	case 2:
		base := m.blossombase[b]
		m.assignLabel(m.endpoint[m.mate[base]], 1, m.mate[base]^1)
	}
}

// scanBlossom traces back from v and w to find a common ancestor. It returns
// the base of the new blossom, or -1 if the trees are disjoint (augmenting path).
func (m *matcher) scanBlossom(v, w int) int {
	var path []int
	base := -1
	for v != -1 || w != -1 {
		b := m.inblossom[v]
		if m.label[b]&4 != 0 {
			base = m.blossombase[b]
			break
		}
		path = append(path, b)
		m.label[b] = 5
		if m.labelend[b] == -1 {
			v = -1
		} else {
			v = m.endpoint[m.labelend[b]]
			b = m.inblossom[v]
			v = m.endpoint[m.labelend[b]]
		}
		if w != -1 {
			v, w = w, v
		}
	}
	for _, b := range path {
		m.label[b] = 1
	}

	return base
}

// addBlossom shrinks the odd cycle closed by edge k into a new S-blossom.
func (m *matcher) addBlossom(base, k int) {
	v, w := m.edges[k].i, m.edges[k].j
	bb := m.inblossom[base]
	bv := m.inblossom[v]
	bw := m.inblossom[w]

	b := m.unusedblossoms[len(m.unusedblossoms)-1]
	m.unusedblossoms = m.unusedblossoms[:len(m.unusedblossoms)-1]
	m.blossombase[b] = base
	m.blossomparent[b] = -1
	m.blossomparent[bb] = b

	var path, endps []int
	for bv != bb {
		m.blossomparent[bv] = b
		path = append(path, bv)
		endps = append(endps, m.labelend[bv])
		v = m.endpoint[m.labelend[bv]]
		bv = m.inblossom[v]
	}
	path = append(path, bb)
	reverseInts(path)
	reverseInts(endps)
	endps = append(endps, 2*k)
	for bw != bb {
		m.blossomparent[bw] = b
		path = append(path, bw)
		endps = append(endps, m.labelend[bw]^1)
		w = m.endpoint[m.labelend[bw]]
		bw = m.inblossom[w]
	}
	m.blossomchilds[b] = path
	m.blossomendps[b] = endps

	m.label[b] = 1
	m.labelend[b] = m.labelend[bb]
	m.dualvar[b] = 0
	for _, leaf := range m.leaves(b, nil) {
		if m.label[m.inblossom[leaf]] == 2 {
			// Former T-vertices become S-vertices and must be scanned.
			m.queue = append(m.queue, leaf)
		}
		m.inblossom[leaf] = b
	}

	bestedgeto := filled(2*m.n, -1)
	for _, sub := range path {
		var nblists [][]int
		if m.blossombestedges[sub] == nil {
			for _, leaf := range m.leaves(sub, nil) {
				nb := make([]int, len(m.neighbend[leaf]))
				for i, p := range m.neighbend[leaf] {
					nb[i] = p / 2
				}
				nblists = append(nblists, nb)
			}
		} else {
			nblists = [][]int{m.blossombestedges[sub]}
		}
		for _, nblist := range nblists {
			for _, ek := range nblist {
				j := m.edges[ek].j
				if m.inblossom[j] == b {
					j = m.edges[ek].i
				}
				bj := m.inblossom[j]
				if bj != b && m.label[bj] == 1 &&
					(bestedgeto[bj] == -1 || m.slack(ek) < m.slack(bestedgeto[bj])) {
					bestedgeto[bj] = ek
				}
			}
		}
		m.blossombestedges[sub] = nil
		m.bestedge[sub] = -1
	}

	best := make([]int, 0)
	for _, ek := range bestedgeto {
		if ek != -1 {
			best = append(best, ek)
		}
	}
	m.blossombestedges[b] = best
	m.bestedge[b] = -1
	for _, ek := range best {
		if m.bestedge[b] == -1 || m.slack(ek) < m.slack(m.bestedge[b]) {
			m.bestedge[b] = ek
		}
	}
}

// expandBlossom dissolves top-level blossom b. During a stage (endStage false)
// a T-blossom's children are relabelled so the alternating tree stays valid.
func (m *matcher) expandBlossom(b int, endStage bool) {
	for _, s := range m.blossomchilds[b] {
		m.blossomparent[s] = -1
		switch {
		case s < m.n:
			m.inblossom[s] = s
		case endStage && m.dualvar[s] == 0:
			m.expandBlossom(s, endStage)
		default:
			for _, leaf := range m.leaves(s, nil) {
				m.inblossom[leaf] = s
			}
		}
	}

	if !endStage && m.label[b] == 2 {
		childs := m.blossomchilds[b]
		endps := m.blossomendps[b]
		entry := m.inblossom[m.endpoint[m.labelend[b]^1]]
		j := indexOf(childs, entry)
		jstep, trick := -1, 1
		if j&1 != 0 {
			j -= len(childs)
			jstep, trick = 1, 0
		}

		p := m.labelend[b]
		for j != 0 {
			m.label[m.endpoint[p^1]] = 0
			m.label[m.endpoint[at(endps, j-trick)^trick^1]] = 0
			m.assignLabel(m.endpoint[p^1], 2, p)
			m.allowedge[at(endps, j-trick)/2] = true
			j += jstep
			p = at(endps, j-trick) ^ trick
			m.allowedge[p/2] = true
			j += jstep
		}

		bv := at(childs, j)
		m.label[m.endpoint[p^1]], m.label[bv] = 2, 2
		m.labelend[m.endpoint[p^1]], m.labelend[bv] = p, p
		m.bestedge[bv] = -1
		j += jstep

		for at(childs, j) != entry {
			bv = at(childs, j)
			if m.label[bv] == 1 {
				j += jstep
				continue
			}
			v := -1
			for _, leaf := range m.leaves(bv, nil) {
				if m.label[leaf] != 0 {
					v = leaf
					break
				}
			}
			if v != -1 {
				m.label[v] = 0
				m.label[m.endpoint[m.mate[m.blossombase[bv]]]] = 0
				m.assignLabel(v, 2, m.labelend[v])
			}
			j += jstep
		}
	}

	m.label[b], m.labelend[b] = -1, -1
	m.blossomchilds[b], m.blossomendps[b] = nil, nil
	m.blossombase[b] = -1
	m.blossombestedges[b] = nil
	m.bestedge[b] = -1
	m.unusedblossoms = append(m.unusedblossoms, b)
}

// augmentBlossom swaps matched and unmatched edges inside b along the even
// path from vertex v to the base, making v the new base.
func (m *matcher) augmentBlossom(b, v int) {
	t := v
	for m.blossomparent[t] != b {
		t = m.blossomparent[t]
	}
	if t >= m.n {
		m.augmentBlossom(t, v)
	}

	childs := m.blossomchilds[b]
	endps := m.blossomendps[b]
	i := indexOf(childs, t)
	j := i
	jstep, trick := -1, 1
	if i&1 != 0 {
		j -= len(childs)
		jstep, trick = 1, 0
	}
	for j != 0 {
		j += jstep
		t = at(childs, j)
		p := at(endps, j-trick) ^ trick
		if t >= m.n {
			m.augmentBlossom(t, m.endpoint[p])
		}
		j += jstep
		t = at(childs, j)
		if t >= m.n {
			m.augmentBlossom(t, m.endpoint[p^1])
		}
		m.mate[m.endpoint[p]] = p ^ 1
		m.mate[m.endpoint[p^1]] = p
	}

	m.blossomchilds[b] = rotate(childs, i)
	m.blossomendps[b] = rotate(endps, i)
	m.blossombase[b] = m.blossombase[m.blossomchilds[b][0]]
}

// augmentMatching flips the augmenting path through edge k.
func (m *matcher) augmentMatching(k int) {
	e := m.edges[k]
	for _, start := range [2][2]int{{e.i, 2*k + 1}, {e.j, 2 * k}} {
		s, p := start[0], start[1]
		for {
			bs := m.inblossom[s]
			if bs >= m.n {
				m.augmentBlossom(bs, s)
			}
			m.mate[s] = p
			if m.labelend[bs] == -1 {
				break
			}
			t := m.endpoint[m.labelend[bs]]
			bt := m.inblossom[t]
			s = m.endpoint[m.labelend[bt]]
			j := m.endpoint[m.labelend[bt]^1]
			if bt >= m.n {
				m.augmentBlossom(bt, j)
			}
			m.mate[j] = m.labelend[bt]
			p = m.labelend[bt] ^ 1
		}
	}
}

func filled(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func minFloat(s []float64) float64 {
	lo := s[0]
	for _, x := range s[1:] {
		if x < lo {
			lo = x
		}
	}
	return lo
}

func indexOf(s []int, x int) int {
	for i, y := range s {
		if y == x {
			return i
		}
	}
	return -1
}

// at indexes s with wrap-around for negative i.
func at(s []int, i int) int {
	if i < 0 {
		i += len(s)
	}
	return s[i]
}

func rotate(s []int, i int) []int {
	out := make([]int, 0, len(s))
	out = append(out, s[i:]...)
	return append(out, s[:i]...)
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
