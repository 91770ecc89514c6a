package dlx

// AddCell records a single truthy (x, y) entry of the dense problem: row y
// touches column x. Columns are created lazily in first-seen order and
// appended to the right end of the live-column ring (immediately to the
// left of the root), so a left-to-right walk from the root visits columns
// in insertion order.
//
// A new cell is always spliced into its row ring immediately to the left
// of the row's first cell — i.e. at the tail of the circular row — and
// into its column ring immediately above the header, i.e. at the bottom
// of the circular column. Both splices preserve insertion order under a
// down-ring / right-ring walk, which is what makes construction
// deterministic.
//
// Calling AddCell twice with the same (x, y) is undefined at this layer;
// callers that might produce duplicates must dedupe before calling in.
func (m *Matrix) AddCell(x, y int32) int32 {
	col := m.column(x)

	start, hasStart := m.rowStart[y]
	var left, right int32
	if hasStart {
		// Splice into the row ring immediately to the left of the
		// existing row start (tail of the circular row).
		left, right = m.left[start], start
	} else {
		// First cell of this row: self-referential row ring.
		left, right = selfRef, selfRef
	}

	id := m.addNode(left, m.up[col], right, col, col, y)
	m.y[col]-- // one more live row in this column

	if !hasStart {
		m.rowStart[y] = id
	}

	return id
}

// column returns the header node id for external coordinate x, creating
// and appending it to the live-column ring if it doesn't exist yet. A
// freshly created header has size 0 (y = -1) and a self-referential
// up/down ring until rows are added.
func (m *Matrix) column(x int32) int32 {
	if id, ok := m.colByX[x]; ok {
		return id
	}

	id := m.addNode(m.left[root], selfRef, root, selfRef, x, -1)
	m.colByX[x] = id
	return id
}

// FromBoolRows constructs a Matrix from a dense boolean matrix given in
// row-major order: column x is created iff at least one row has it, and
// rows are numbered 0..len(rows)-1 in the given order, which is preserved
// as the mapping from row-ring identity to external row id.
func FromBoolRows(rows [][]bool) *Matrix {
	m := New()
	for y, row := range rows {
		for x, v := range row {
			if v {
				m.AddCell(int32(x), int32(y))
			}
		}
	}
	return m
}

// FromRows constructs a Matrix from a sparse row set: rows[y] lists the
// column indices that row y touches, in the order they should be spliced
// into the row ring.
func FromRows(rows [][]int) *Matrix {
	m := New()
	for y, cols := range rows {
		for _, x := range cols {
			m.AddCell(int32(x), int32(y))
		}
	}
	return m
}
