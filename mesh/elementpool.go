package mesh

// elementRecord is the per-slot record shared by vertices and faces: one
// representative half-edge plus the caller's opaque payload. A vertex's
// representative edge has that vertex as its Org; a face's representative
// edge has that face as its LFace.
type elementRecord[T any] struct {
	edge    EdgeID
	payload T
}

// elementPool is the common shape of VertexPool and FacePool: a
// slot-stable arena of (representative edge, payload) pairs. Vertex and
// face semantics are otherwise identical, so both are thin, differently
// named wrappers around one implementation: vertices and faces are
// distinct peer element kinds, but their pool mechanics don't diverge.
type elementPool[T any] struct {
	a    *arena[elementRecord[T]]
	desc Descriptor[T]
}

func newElementPool[T any](desc Descriptor[T]) *elementPool[T] {
	wrapped := Descriptor[elementRecord[T]]{
		Copy: func(r elementRecord[T]) elementRecord[T] {
			if desc.Copy != nil {
				r.payload = desc.Copy(r.payload)
			}
			return r
		},
		Destroy: func(r elementRecord[T]) { desc.destroy(r.payload) },
		Alloc:   desc.Alloc,
	}
	return &elementPool[T]{a: newArena(wrapped), desc: desc}
}

func (p *elementPool[T]) make() (int32, error) { return p.a.alloc() }

func (p *elementPool[T]) kill(idx int32) { p.a.release(idx) }

func (p *elementPool[T]) live(idx int32) bool { return p.a.live(idx) }

func (p *elementPool[T]) repEdge(idx int32) EdgeID { return p.a.data(idx).edge }

func (p *elementPool[T]) setRepEdge(idx int32, e EdgeID) {
	r := p.a.data(idx)
	r.edge = e
	p.a.setData(idx, r)
}

func (p *elementPool[T]) data(idx int32) T { return p.a.data(idx).payload }

func (p *elementPool[T]) setData(idx int32, v T) {
	r := p.a.data(idx)
	r.payload = v
	p.a.setData(idx, r)
}

func (p *elementPool[T]) format(idx int32) string { return p.desc.format(p.a.data(idx).payload) }

func (p *elementPool[T]) each(fn func(idx int32)) { p.a.each(fn) }

func (p *elementPool[T]) count() int { return p.a.count() }

func (p *elementPool[T]) clear() { p.a.clear() }
