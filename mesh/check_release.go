//go:build gbrelease

package mesh

// Check is a no-op in release builds: the invariant walk is diagnostic
// overhead a shipped build shouldn't pay for.
func (m *Mesh[E, V, F]) Check() error { return nil }
