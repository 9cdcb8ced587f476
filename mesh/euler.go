package mesh

// MakeEdge creates an isolated edge: two new vertices (org, dst), one new
// face (the left face is initially also the right face — both sides of
// the dangling edge lie in the same face until the caller splits it).
// The edge's origin orbit is {e}; its twin's is {sym(e)}.
//
// Allocation is all-or-nothing: if any sub-allocation fails, every handle
// accumulated so far is killed, in reverse order, before ErrOutOfMemory
// is returned.
func (m *Mesh[E, V, F]) MakeEdge() (EdgeID, error) {
	org, err := m.vertices.make()
	if err != nil {
		return NilEdge, err
	}
	dst, err := m.vertices.make()
	if err != nil {
		m.vertices.kill(org)
		return NilEdge, err
	}
	face, err := m.faces.make()
	if err != nil {
		m.vertices.kill(dst)
		m.vertices.kill(org)
		return NilEdge, err
	}
	e, err := m.edges.make()
	if err != nil {
		m.faces.kill(face)
		m.vertices.kill(dst)
		m.vertices.kill(org)
		return NilEdge, err
	}

	s := m.edges.Sym(e)
	m.edges.setOrg(e, org)
	m.edges.setLFace(e, face)
	m.edges.setOrg(s, dst)
	m.edges.setLFace(s, face)

	m.vertices.setEdge(org, e)
	m.vertices.setEdge(dst, s)
	m.faces.setEdge(face, e)

	return e, nil
}

// MakeLoopEdge creates a self-loop: one new vertex v, two new faces
// (lface, rface), one self-loop edge with Org(e) == Org(sym(e)) == v.
// ccw selects the loop's rotational orientation, per EdgePool.makeLoop.
func (m *Mesh[E, V, F]) MakeLoopEdge(ccw bool) (EdgeID, error) {
	v, err := m.vertices.make()
	if err != nil {
		return NilEdge, err
	}
	lf, err := m.faces.make()
	if err != nil {
		m.vertices.kill(v)
		return NilEdge, err
	}
	rf, err := m.faces.make()
	if err != nil {
		m.faces.kill(lf)
		m.vertices.kill(v)
		return NilEdge, err
	}
	e, err := m.edges.makeLoop(ccw)
	if err != nil {
		m.faces.kill(rf)
		m.faces.kill(lf)
		m.vertices.kill(v)
		return NilEdge, err
	}

	s := m.edges.Sym(e)
	m.edges.setOrg(e, v)
	m.edges.setOrg(s, v)
	m.edges.setLFace(e, lf)
	m.edges.setLFace(s, rf)

	m.vertices.setEdge(v, e)
	m.faces.setEdge(lf, e)
	m.faces.setEdge(rf, s)

	return e, nil
}

// MakeVertexEdge splits vertex v by inserting a new edge between the
// sectors of v's origin orbit bounded by lface and rface (which may be
// equal if v is a cut-vertex). Precondition: v has an outgoing edge
// incident to each of lface, rface.
//
// Built from: locate the two boundary edges in v's orbit (orbitEdge),
// allocate a new vertex and a CW self-loop, splice the loop in at each
// boundary edge, then repoint Org along the orbit that became the new
// vertex's.
func (m *Mesh[E, V, F]) MakeVertexEdge(v VertexID, lface, rface FaceID) (VertexID, EdgeID, error) {
	if !m.vertices.live(v) || !m.faces.live(lface) || !m.faces.live(rface) {
		return NilVertex, NilEdge, ErrInvalidHandle
	}

	repEdge := m.vertices.edge(v)
	eLF := orbitEdge(m.edges, repEdge, lface)
	if eLF == NilEdge {
		return NilVertex, NilEdge, ErrInvalidTopology
	}
	eRF := orbitEdge(m.edges, repEdge, rface)
	if eRF == NilEdge {
		return NilVertex, NilEdge, ErrInvalidTopology
	}

	vNew, err := m.vertices.make()
	if err != nil {
		return NilVertex, NilEdge, err
	}
	eNew, err := m.edges.makeLoop(false) // CW: onext(eNew) = sym(eNew)
	if err != nil {
		m.vertices.kill(vNew)
		return NilVertex, NilEdge, err
	}
	sNew := m.edges.Sym(eNew)

	spliceEdges(m.edges, eLF, eNew)
	spliceEdges(m.edges, eRF, sNew)

	m.edges.setOrg(eNew, v)
	m.edges.setLFace(eNew, lface)
	m.edges.setLFace(sNew, rface)

	// The splice above pulled sNew's orbit out of v's; repoint Org along
	// it to the new vertex to restore origin consistency.
	orbitOrgSet(m.edges, sNew, vNew)

	m.vertices.setEdge(v, eNew)
	m.vertices.setEdge(vNew, sNew)

	return vNew, eNew, nil
}

// KillVertexEdge is the inverse of MakeVertexEdge: it merges Dst(e) back
// into Org(e) and removes e. e must be an edge whose removal rejoins two
// distinct sectors of one vertex's orbit — not, for instance, a bare
// self-loop that has already been collapsed to a single edge.
//
// Derivation: after MakeVertexEdge(v, lf, rf) produces e, algebra on the
// two splices it performed shows Oprev(e) == the rface-side boundary edge
// and Oprev(Sym(e)) == the lface-side one — the same two edges
// MakeVertexEdge spliced against, recoverable without having to record
// them. When lf == rf both splices used one edge and Dst(e) is left with
// Sym(e) as its only outgoing edge, so Oprev(Sym(e)) is Sym(e) itself and
// Oprev(e) stands for both. Splicing those same pairs again (spliceEdges
// is self-inverse) exactly undoes the split.
func (m *Mesh[E, V, F]) KillVertexEdge(e EdgeID) error {
	if !m.edges.live(e) {
		return ErrInvalidHandle
	}
	s := m.edges.Sym(e)
	v := m.edges.Org(e)
	vNew := m.edges.Org(s)
	if v == vNew {
		return ErrInvalidTopology
	}

	eRF := m.edges.Oprev(e)
	eLF := m.edges.Oprev(s)
	if eRF == e {
		return ErrInvalidTopology
	}
	if eLF == s {
		eLF = eRF
	}
	lf, rf := m.edges.LFace(e), m.edges.LFace(s)

	spliceEdges(m.edges, eRF, s)
	spliceEdges(m.edges, eLF, e)

	orbitOrgSet(m.edges, eLF, v)

	m.vertices.setEdge(v, eLF)
	m.faces.setEdge(lf, eLF)
	m.faces.setEdge(rf, eRF)
	m.edges.kill(e)
	m.vertices.kill(vNew)

	return nil
}

// MakeFaceEdge splits face by inserting a new edge between two of its
// boundary vertices, org and dst. The dual of MakeVertexEdge, built from
// Guibas & Stolfi's Connect operator: splice plus an Lnext/Lprev
// traversal, requiring no rot (gbox orients edges consistently and never
// flips).
func (m *Mesh[E, V, F]) MakeFaceEdge(face FaceID, org, dst VertexID) (FaceID, EdgeID, error) {
	if !m.faces.live(face) || !m.vertices.live(org) || !m.vertices.live(dst) {
		return NilFace, NilEdge, ErrInvalidHandle
	}

	repEdge := m.faces.edge(face)
	eOrg := orbitFaceVertex(m.edges, repEdge, org)
	if eOrg == NilEdge {
		return NilFace, NilEdge, ErrInvalidTopology
	}
	eDst := orbitFaceVertex(m.edges, repEdge, dst)
	if eDst == NilEdge {
		return NilFace, NilEdge, ErrInvalidTopology
	}
	if eOrg == eDst {
		return NilFace, NilEdge, ErrInvalidTopology
	}

	a := lprev(m.edges, eOrg) // Dst(a) == org
	b := eDst                 // Org(b) == dst

	eNew, err := m.edges.make()
	if err != nil {
		return NilFace, NilEdge, err
	}
	fNew, err := m.faces.make()
	if err != nil {
		m.edges.kill(eNew)
		return NilFace, NilEdge, err
	}
	sNew := m.edges.Sym(eNew)

	la := lnext(m.edges, a)
	spliceEdges(m.edges, eNew, la)
	spliceEdges(m.edges, sNew, b)

	m.edges.setOrg(eNew, org)
	m.edges.setOrg(sNew, dst)
	m.edges.setLFace(eNew, face)
	m.edges.setLFace(sNew, fNew)

	// The splices above split face's boundary in two; sNew's side is the
	// new face, so repoint LFace along it (mirrors orbitOrgSet in
	// MakeVertexEdge — this is the owner-field rewrite the source's
	// commented-out orbit_lface_set was missing).
	orbitLFaceSet(m.edges, sNew, fNew)

	m.faces.setEdge(face, eNew)
	m.faces.setEdge(fNew, sNew)

	return fNew, eNew, nil
}

// KillFaceEdge is the inverse of MakeFaceEdge: it merges the face to e's
// right back into the face to its left and removes e. e must be an edge
// whose removal rejoins two distinct sectors of one face's boundary.
//
// Dual of KillVertexEdge's derivation: the two edges Connect spliced
// against are recovered as Oprev(e) and Oprev(Sym(e)), and splicing those
// same pairs again undoes the split.
func (m *Mesh[E, V, F]) KillFaceEdge(e EdgeID) error {
	if !m.edges.live(e) {
		return ErrInvalidHandle
	}
	s := m.edges.Sym(e)
	face := m.edges.LFace(e)
	fNew := m.edges.LFace(s)
	if face == fNew {
		return ErrInvalidTopology
	}

	la := m.edges.Oprev(e)
	b := m.edges.Oprev(s)
	if la == e || b == s || (la == s && b == e) {
		return ErrInvalidTopology
	}
	// For a loop with Sym(e) directly before e around their shared
	// vertex, e's predecessor once Sym(e) is gone is Oprev(Sym(e)).
	if la == s {
		la = b
	}

	spliceEdges(m.edges, s, b)
	spliceEdges(m.edges, e, la)

	orbitLFaceSet(m.edges, la, face)

	m.faces.setEdge(face, la)
	m.vertices.setEdge(m.edges.Org(la), la)
	if b != e {
		m.vertices.setEdge(m.edges.Org(b), b)
	}
	m.edges.kill(e)
	m.faces.kill(fNew)

	return nil
}
