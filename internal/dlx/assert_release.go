//go:build !dlxdebug

package dlx

// assertLiveColumn is a no-op in release builds; the precondition is
// documented, not enforced, per the core's error-handling design.
func (m *Matrix) assertLiveColumn(c int32) {}
