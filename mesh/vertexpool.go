package mesh

// VertexPool allocates and owns the vertices of one Mesh. A vertex
// references exactly one outgoing half-edge — its representative edge —
// whose Org is that vertex.
type VertexPool[T any] struct {
	pool *elementPool[T]
}

func newVertexPool[T any](desc Descriptor[T]) *VertexPool[T] {
	return &VertexPool[T]{pool: newElementPool(desc)}
}

func (p *VertexPool[T]) make() (VertexID, error) {
	idx, err := p.pool.make()
	return VertexID(idx), err
}

func (p *VertexPool[T]) kill(v VertexID) { p.pool.kill(int32(v)) }

func (p *VertexPool[T]) live(v VertexID) bool { return p.pool.live(int32(v)) }

func (p *VertexPool[T]) edge(v VertexID) EdgeID { return p.pool.repEdge(int32(v)) }

func (p *VertexPool[T]) setEdge(v VertexID, e EdgeID) { p.pool.setRepEdge(int32(v), e) }

// Data returns v's opaque payload.
func (p *VertexPool[T]) Data(v VertexID) T { return p.pool.data(int32(v)) }

// SetData overwrites v's opaque payload.
func (p *VertexPool[T]) SetData(v VertexID, val T) { p.pool.setData(int32(v), val) }

func (p *VertexPool[T]) format(v VertexID) string { return p.pool.format(int32(v)) }

func (p *VertexPool[T]) each(fn func(VertexID)) {
	p.pool.each(func(i int32) { fn(VertexID(i)) })
}

func (p *VertexPool[T]) count() int { return p.pool.count() }

func (p *VertexPool[T]) clear() { p.pool.clear() }
