package dlx

// Cover removes column c and every row that intersects it from the live
// matrix. After Cover, c no longer appears in the live-column ring, and
// every row that had a cell in c has had every *other* cell removed from
// the live column rings — those rows are gone from the subproblem.
func (m *Matrix) Cover(c int32) {
	m.assertLiveColumn(c)
	m.unlinkLeftRight(c)

	for r := m.down[c]; r != c; r = m.down[r] {
		for j := m.right[r]; j != r; j = m.right[j] {
			m.unlinkUpDown(j)
		}
	}
}

// Uncover is the exact inverse of Cover. It must traverse in the reverse
// of the directions Cover used — up instead of down, left instead of
// right — which is what restores the LIFO discipline relinkUpDown and
// relinkLeftRight depend on.
func (m *Matrix) Uncover(c int32) {
	for r := m.up[c]; r != c; r = m.up[r] {
		for j := m.left[r]; j != r; j = m.left[j] {
			m.relinkUpDown(j)
		}
	}

	m.relinkLeftRight(c)
}
