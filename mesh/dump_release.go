//go:build gbrelease

package mesh

// Dump is a no-op in release builds.
func (m *Mesh[E, V, F]) Dump() string { return "" }
