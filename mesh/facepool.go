package mesh

// FacePool allocates and owns the faces of one Mesh. A face references
// exactly one bounding half-edge — its representative edge — whose LFace
// is that face.
type FacePool[T any] struct {
	pool *elementPool[T]
}

func newFacePool[T any](desc Descriptor[T]) *FacePool[T] {
	return &FacePool[T]{pool: newElementPool(desc)}
}

func (p *FacePool[T]) make() (FaceID, error) {
	idx, err := p.pool.make()
	return FaceID(idx), err
}

func (p *FacePool[T]) kill(f FaceID) { p.pool.kill(int32(f)) }

func (p *FacePool[T]) live(f FaceID) bool { return p.pool.live(int32(f)) }

func (p *FacePool[T]) edge(f FaceID) EdgeID { return p.pool.repEdge(int32(f)) }

func (p *FacePool[T]) setEdge(f FaceID, e EdgeID) { p.pool.setRepEdge(int32(f), e) }

// Data returns f's opaque payload.
func (p *FacePool[T]) Data(f FaceID) T { return p.pool.data(int32(f)) }

// SetData overwrites f's opaque payload.
func (p *FacePool[T]) SetData(f FaceID, val T) { p.pool.setData(int32(f), val) }

func (p *FacePool[T]) format(f FaceID) string { return p.pool.format(int32(f)) }

func (p *FacePool[T]) each(fn func(FaceID)) {
	p.pool.each(func(i int32) { fn(FaceID(i)) })
}

func (p *FacePool[T]) count() int { return p.pool.count() }

func (p *FacePool[T]) clear() { p.pool.clear() }
