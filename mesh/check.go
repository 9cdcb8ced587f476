//go:build !gbrelease

package mesh

// Check walks every live edge, face and vertex and verifies the
// structural invariants Splice and the Euler operators are supposed to
// maintain, returning the first violation found as a *CheckError. It is
// a diagnostic for tests and debug builds, not part of the steady-state
// API — compiled out entirely under the gbrelease build tag.
func (m *Mesh[E, V, F]) Check() error {
	if err := m.checkEdges(); err != nil {
		return err
	}
	if err := m.checkFaces(); err != nil {
		return err
	}
	if err := m.checkVertices(); err != nil {
		return err
	}
	return nil
}

func (m *Mesh[E, V, F]) checkEdgeShape(e EdgeID) error {
	s := m.edges.Sym(e)
	if s == e {
		return checkErrorf("sym-involution", "sym(%d) == %d", e, e)
	}
	if m.edges.Sym(s) != e {
		return checkErrorf("sym-involution", "sym(sym(%d)) != %d", e, e)
	}
	if m.edges.Sym(m.edges.Onext(lnext(m.edges, e))) != e {
		return checkErrorf("onext-lnext-duality", "sym(onext(lnext(%d))) != %d", e, e)
	}
	if lnext(m.edges, m.edges.Sym(m.edges.Onext(e))) != e {
		return checkErrorf("onext-lnext-duality", "lnext(sym(onext(%d))) != %d", e, e)
	}
	return nil
}

func (m *Mesh[E, V, F]) checkEdges() error {
	it := m.EdgeIter()
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		if err := m.checkEdgeShape(e); err != nil {
			return err
		}
		if m.edges.Org(e) == NilVertex {
			return checkErrorf("edge-org", "edge %d has no origin", e)
		}
		if m.Dst(e) == NilVertex {
			return checkErrorf("edge-org", "edge %d has no destination", e)
		}
	}
	return nil
}

func (m *Mesh[E, V, F]) checkFaces() error {
	fit := m.FaceIter()
	for f, ok := fit.Next(); ok; f, ok = fit.Next() {
		head := m.faces.edge(f)
		e := head
		for {
			if err := m.checkEdgeShape(e); err != nil {
				return err
			}
			if m.edges.LFace(e) != f {
				return checkErrorf("lface-consistency", "edge %d has lface %d, want %d", e, m.edges.LFace(e), f)
			}
			e = lnext(m.edges, e)
			if e == head {
				break
			}
		}
	}
	return nil
}

func (m *Mesh[E, V, F]) checkVertices() error {
	vit := m.VertexIter()
	for v, ok := vit.Next(); ok; v, ok = vit.Next() {
		head := m.vertices.edge(v)
		e := head
		for {
			if err := m.checkEdgeShape(e); err != nil {
				return err
			}
			if m.edges.Org(e) != v {
				return checkErrorf("org-consistency", "edge %d has org %d, want %d", e, m.edges.Org(e), v)
			}
			e = m.edges.Onext(e)
			if e == head {
				break
			}
		}
	}
	return nil
}
