//go:build dlxdebug

package dlx

import "fmt"

// assertLiveColumn panics if c is not currently present in the live
// column ring, i.e. if the caller is trying to Cover an already-covered
// column — a programmer-error precondition violation per the core's
// error-handling design. Only compiled in with the dlxdebug build tag;
// release builds skip the check entirely and trust the precondition.
func (m *Matrix) assertLiveColumn(c int32) {
	for col := m.right[root]; col != root; col = m.right[col] {
		if col == c {
			return
		}
	}
	panic(fmt.Sprintf("dlx: column %d is not live (double cover or uncover without matching cover)", c))
}
