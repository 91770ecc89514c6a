package dlx

// ChooseColumn walks right from the root exactly once over the live
// column ring and returns the column with the minimum stored size
// (fewest remaining rows). Ties are broken by the first such column
// encountered, i.e. the leftmost minimum. This is Knuth's S-heuristic:
// the search stays correct for any choice of a live column, but picking
// the smallest keeps branching — and therefore runtime — in check.
func (m *Matrix) ChooseColumn() int32 {
	chosen := m.right[root]
	minSize := m.size(chosen)
	for c := m.right[chosen]; c != root; c = m.right[c] {
		if s := m.size(c); s < minSize {
			chosen, minSize = c, s
		}
	}
	return chosen
}

// ExactCover enumerates every exact cover of the matrix. Each solution is
// a slice of external row ids (the y value shared by every cell of the
// selected row), in the order the rows were selected during descent.
// Solutions are returned in the deterministic order fixed by ChooseColumn's
// tie-break and each chosen column's top-to-bottom row order.
//
// The matrix is guaranteed to be structurally identical on return to its
// state before the call: every Cover performed during the search is
// matched by an Uncover before ExactCover returns.
func (m *Matrix) ExactCover() [][]int32 {
	var solutions [][]int32
	m.ExactCoverFunc(func(solution []int32) bool {
		cp := append([]int32(nil), solution...)
		solutions = append(solutions, cp)
		return true
	})
	return solutions
}

// ExactCoverFunc runs the same search as ExactCover but calls yield with
// each solution as soon as it is found, instead of collecting every
// solution up front. Each call receives a newly allocated slice of
// external row ids. Returning false from yield stops the search early (e.g. to
// find only the first solution, or the first N); returning true continues
// enumerating.
//
// This is the designed extension point for a caller that wants to bound
// the search (first-solution, solution-count cap, or an externally
// observed cancellation) without the core itself depending on any timer
// or context primitive.
func (m *Matrix) ExactCoverFunc(yield func(solution []int32) bool) {
	partial := make([]int32, 0, 64)
	m.search(&partial, yield)
}

func (m *Matrix) search(partial *[]int32, yield func([]int32) bool) bool {
	if m.right[root] == root {
		// No live columns: every constraint is covered by the rows
		// selected so far. Emit a copy of the partial solution.
		rowIDs := make([]int32, len(*partial))
		for i, cellID := range *partial {
			rowIDs[i] = m.y[cellID]
		}
		return yield(rowIDs)
	}

	c := m.ChooseColumn()
	m.Cover(c)

	keepGoing := true
	for r := m.down[c]; r != c; r = m.down[r] {
		*partial = append(*partial, r)

		for j := m.right[r]; j != r; j = m.right[j] {
			m.Cover(m.column[j])
		}

		keepGoing = m.search(partial, yield)

		for j := m.left[r]; j != r; j = m.left[j] {
			m.Uncover(m.column[j])
		}

		*partial = (*partial)[:len(*partial)-1]

		if !keepGoing {
			break
		}
	}

	m.Uncover(c)
	return keepGoing
}
