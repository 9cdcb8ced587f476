package mesh

// Mesh is a planar subdivision built from three peer element pools —
// edges, vertices, faces — combined by Splice and the Euler operators.
// Mesh owns its pools exclusively; each pool owns its elements. Mesh is
// not safe for concurrent mutation: pin one Mesh to one goroutine.
//
// E, V and F are the opaque payload types for edges, vertices and faces
// respectively; a caller with no use for one can instantiate it as
// struct{} or any.
type Mesh[E, V, F any] struct {
	edges    *EdgePool[E]
	vertices *VertexPool[V]
	faces    *FacePool[F]
}

// Init constructs an empty mesh. Each descriptor configures the copy,
// destroy and format hooks for that element kind's opaque payload.
func Init[E, V, F any](edgeDesc Descriptor[E], faceDesc Descriptor[F], vertexDesc Descriptor[V]) *Mesh[E, V, F] {
	return &Mesh[E, V, F]{
		edges:    newEdgePool(edgeDesc),
		vertices: newVertexPool(vertexDesc),
		faces:    newFacePool(faceDesc),
	}
}

// Exit destroys the mesh, running every live payload's destroy hook
// exactly once. The mesh must not be used afterward.
func (m *Mesh[E, V, F]) Exit() { m.Clear() }

// Clear destroys every element but leaves the mesh usable and empty.
func (m *Mesh[E, V, F]) Clear() {
	m.edges.clear()
	m.vertices.clear()
	m.faces.clear()
}

// --- navigation -------------------------------------------------------

// Sym returns e's twin. sym(sym(e)) == e and sym(e) != e always hold.
func (m *Mesh[E, V, F]) Sym(e EdgeID) EdgeID { return m.edges.Sym(e) }

// Onext returns the next half-edge counter-clockwise around Org(e).
func (m *Mesh[E, V, F]) Onext(e EdgeID) EdgeID { return m.edges.Onext(e) }

// Oprev returns the previous half-edge counter-clockwise around Org(e).
func (m *Mesh[E, V, F]) Oprev(e EdgeID) EdgeID { return m.edges.Oprev(e) }

// Lnext returns the next half-edge counter-clockwise around LFace(e).
func (m *Mesh[E, V, F]) Lnext(e EdgeID) EdgeID { return lnext(m.edges, e) }

// Lprev returns the previous half-edge counter-clockwise around LFace(e).
func (m *Mesh[E, V, F]) Lprev(e EdgeID) EdgeID { return lprev(m.edges, e) }

// Org returns e's origin vertex.
func (m *Mesh[E, V, F]) Org(e EdgeID) VertexID { return m.edges.Org(e) }

// Dst returns e's destination vertex: Org(Sym(e)).
func (m *Mesh[E, V, F]) Dst(e EdgeID) VertexID { return m.edges.Org(m.edges.Sym(e)) }

// LFace returns the face to e's left when walking from Org(e) to Dst(e).
func (m *Mesh[E, V, F]) LFace(e EdgeID) FaceID { return m.edges.LFace(e) }

// RFace returns the face to e's right: LFace(Sym(e)).
func (m *Mesh[E, V, F]) RFace(e EdgeID) FaceID { return m.edges.LFace(m.edges.Sym(e)) }

// VertexEdge returns v's representative outgoing half-edge.
func (m *Mesh[E, V, F]) VertexEdge(v VertexID) EdgeID { return m.vertices.edge(v) }

// FaceEdge returns f's representative bounding half-edge.
func (m *Mesh[E, V, F]) FaceEdge(f FaceID) EdgeID { return m.faces.edge(f) }

// --- liveness -----------------------------------------------------------

// EdgeLive reports whether e refers to a live half-edge.
func (m *Mesh[E, V, F]) EdgeLive(e EdgeID) bool { return m.edges.live(e) }

// VertexLive reports whether v refers to a live vertex.
func (m *Mesh[E, V, F]) VertexLive(v VertexID) bool { return m.vertices.live(v) }

// FaceLive reports whether f refers to a live face.
func (m *Mesh[E, V, F]) FaceLive(f FaceID) bool { return m.faces.live(f) }

// --- payload access -----------------------------------------------------

// EdgeData returns e's opaque payload.
func (m *Mesh[E, V, F]) EdgeData(e EdgeID) E { return m.edges.Data(e) }

// SetEdgeData overwrites e's opaque payload.
func (m *Mesh[E, V, F]) SetEdgeData(e EdgeID, v E) { m.edges.SetData(e, v) }

// VertexData returns v's opaque payload.
func (m *Mesh[E, V, F]) VertexData(v VertexID) V { return m.vertices.Data(v) }

// SetVertexData overwrites v's opaque payload.
func (m *Mesh[E, V, F]) SetVertexData(v VertexID, val V) { m.vertices.SetData(v, val) }

// FaceData returns f's opaque payload.
func (m *Mesh[E, V, F]) FaceData(f FaceID) F { return m.faces.Data(f) }

// SetFaceData overwrites f's opaque payload.
func (m *Mesh[E, V, F]) SetFaceData(f FaceID, val F) { m.faces.SetData(f, val) }

// --- counts --------------------------------------------------------------

// EdgeCount returns the number of live half-edges (twice the number of
// topological edges).
func (m *Mesh[E, V, F]) EdgeCount() int { return m.edges.count() }

// VertexCount returns the number of live vertices.
func (m *Mesh[E, V, F]) VertexCount() int { return m.vertices.count() }

// FaceCount returns the number of live faces.
func (m *Mesh[E, V, F]) FaceCount() int { return m.faces.count() }

// EulerCharacteristic returns V - E + F, counting each topological edge
// (i.e. each half-edge pair) once.
func (m *Mesh[E, V, F]) EulerCharacteristic() int {
	return m.vertices.count() - m.edges.count()/2 + m.faces.count()
}

// --- iterators -----------------------------------------------------------

// EdgeIter yields every live half-edge, in unspecified order. Mutating
// the mesh while an iterator from it is in use has unspecified effect.
type EdgeIter struct {
	ids []EdgeID
	pos int
}

// Next returns the next edge and true, or NilEdge and false when
// exhausted.
func (it *EdgeIter) Next() (EdgeID, bool) {
	if it.pos >= len(it.ids) {
		return NilEdge, false
	}
	id := it.ids[it.pos]
	it.pos++
	return id, true
}

// EdgeIter returns an iterator over every live half-edge.
func (m *Mesh[E, V, F]) EdgeIter() *EdgeIter {
	ids := make([]EdgeID, 0, m.edges.count())
	m.edges.each(func(e EdgeID) { ids = append(ids, e) })
	return &EdgeIter{ids: ids}
}

// VertexIter yields every live vertex, in unspecified order.
type VertexIter struct {
	ids []VertexID
	pos int
}

// Next returns the next vertex and true, or NilVertex and false when
// exhausted.
func (it *VertexIter) Next() (VertexID, bool) {
	if it.pos >= len(it.ids) {
		return NilVertex, false
	}
	id := it.ids[it.pos]
	it.pos++
	return id, true
}

// VertexIter returns an iterator over every live vertex.
func (m *Mesh[E, V, F]) VertexIter() *VertexIter {
	ids := make([]VertexID, 0, m.vertices.count())
	m.vertices.each(func(v VertexID) { ids = append(ids, v) })
	return &VertexIter{ids: ids}
}

// FaceIter yields every live face, in unspecified order.
type FaceIter struct {
	ids []FaceID
	pos int
}

// Next returns the next face and true, or NilFace and false when
// exhausted.
func (it *FaceIter) Next() (FaceID, bool) {
	if it.pos >= len(it.ids) {
		return NilFace, false
	}
	id := it.ids[it.pos]
	it.pos++
	return id, true
}

// FaceIter returns an iterator over every live face.
func (m *Mesh[E, V, F]) FaceIter() *FaceIter {
	ids := make([]FaceID, 0, m.faces.count())
	m.faces.each(func(f FaceID) { ids = append(ids, f) })
	return &FaceIter{ids: ids}
}
