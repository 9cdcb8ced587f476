package mesh

// edgeRecord is the per-half-edge record: the two stored links (onext,
// oprev) plus the two owner fields (org, lface) and the caller's opaque
// payload. oprev is cached rather than derived on every access — Splice
// maintains both onext and oprev together, which is what lets Lnext and
// Lprev stay O(1) without a rot operator.
type edgeRecord[T any] struct {
	onext   EdgeID
	oprev   EdgeID
	org     VertexID
	lface   FaceID
	payload T
}

// EdgePool allocates half-edges in co-resident twin pairs: for a pair
// allocated together, the two indices differ only in their low bit, so
// Sym is branch-free XOR and needs no stored field.
type EdgePool[T any] struct {
	records []edgeRecord[T]
	alive   []bool // indexed by pair (block) number: len(records)/2
	free    []int32
	desc    Descriptor[T]
}

func newEdgePool[T any](desc Descriptor[T]) *EdgePool[T] {
	return &EdgePool[T]{desc: desc}
}

func (p *EdgePool[T]) allocBlock() (int32, error) {
	if n := len(p.free); n > 0 {
		b := p.free[n-1]
		p.free = p.free[:n-1]
		base := b * 2
		p.records[base] = edgeRecord[T]{payload: p.desc.seedPayload()}
		p.records[base+1] = edgeRecord[T]{payload: p.desc.seedPayload()}
		p.alive[b] = true
		return b, nil
	}
	zero1, err := p.desc.newPayload()
	if err != nil {
		return 0, err
	}
	zero2, err := p.desc.newPayload()
	if err != nil {
		return 0, err
	}
	base := int32(len(p.records))
	p.records = append(p.records, edgeRecord[T]{payload: zero1}, edgeRecord[T]{payload: zero2})
	p.alive = append(p.alive, true)
	return base / 2, nil
}

// make allocates a fresh quad-edge whose origin orbit is {e} and whose
// twin's origin orbit is {sym(e)} — two disconnected self-loops, the seed
// state every Euler operator builds from.
func (p *EdgePool[T]) make() (EdgeID, error) {
	b, err := p.allocBlock()
	if err != nil {
		return NilEdge, err
	}
	e := EdgeID(b * 2)
	s := e ^ 1
	p.records[e].onext, p.records[e].oprev = e, e
	p.records[s].onext, p.records[s].oprev = s, s
	return e, nil
}

// makeLoop allocates a self-loop quad-edge of the requested rotational
// orientation: ccw gives onext(e)=e, onext(sym(e))=sym(e) (two singleton
// orbits, same as make); !ccw gives onext(e)=sym(e), onext(sym(e))=e (one
// 2-cycle orbit shared by the pair).
func (p *EdgePool[T]) makeLoop(ccw bool) (EdgeID, error) {
	b, err := p.allocBlock()
	if err != nil {
		return NilEdge, err
	}
	e := EdgeID(b * 2)
	s := e ^ 1
	if ccw {
		p.records[e].onext, p.records[e].oprev = e, e
		p.records[s].onext, p.records[s].oprev = s, s
	} else {
		p.records[e].onext, p.records[e].oprev = s, s
		p.records[s].onext, p.records[s].oprev = e, e
	}
	return e, nil
}

// kill frees the quad-edge block containing e (both e and Sym(e)). It is
// the caller's responsibility to have already unlinked e from any orbit
// it shares with other live edges.
func (p *EdgePool[T]) kill(e EdgeID) {
	b := int32(e) / 2
	if !p.alive[b] {
		return
	}
	base := b * 2
	p.desc.destroy(p.records[base].payload)
	p.desc.destroy(p.records[base+1].payload)
	p.records[base] = edgeRecord[T]{}
	p.records[base+1] = edgeRecord[T]{}
	p.alive[b] = false
	p.free = append(p.free, b)
}

func (p *EdgePool[T]) live(e EdgeID) bool {
	if e < 0 {
		return false
	}
	b := int32(e) / 2
	return int(b) < len(p.alive) && p.alive[b]
}

// Sym returns e's twin: sym(sym(e)) == e and sym(e) != e always hold.
func (p *EdgePool[T]) Sym(e EdgeID) EdgeID { return e ^ 1 }

// Onext returns the next half-edge counter-clockwise around Org(e).
func (p *EdgePool[T]) Onext(e EdgeID) EdgeID { return p.records[e].onext }

func (p *EdgePool[T]) setOnext(e, v EdgeID) { p.records[e].onext = v }

// Oprev returns the previous half-edge counter-clockwise around Org(e):
// the half-edge whose Onext is e, maintained as a cached field by Splice.
func (p *EdgePool[T]) Oprev(e EdgeID) EdgeID { return p.records[e].oprev }

func (p *EdgePool[T]) setOprev(e, v EdgeID) { p.records[e].oprev = v }

// Org returns e's origin vertex.
func (p *EdgePool[T]) Org(e EdgeID) VertexID { return p.records[e].org }

func (p *EdgePool[T]) setOrg(e EdgeID, v VertexID) { p.records[e].org = v }

// LFace returns the face to e's left when walking from Org(e) to Dst(e).
func (p *EdgePool[T]) LFace(e EdgeID) FaceID { return p.records[e].lface }

func (p *EdgePool[T]) setLFace(e EdgeID, f FaceID) { p.records[e].lface = f }

// Data returns e's opaque payload.
func (p *EdgePool[T]) Data(e EdgeID) T { return p.records[e].payload }

// SetData overwrites e's opaque payload.
func (p *EdgePool[T]) SetData(e EdgeID, v T) { p.records[e].payload = v }

// each calls fn once for every live half-edge (both members of every live
// pair), in block order.
func (p *EdgePool[T]) each(fn func(EdgeID)) {
	for b, alive := range p.alive {
		if !alive {
			continue
		}
		fn(EdgeID(b * 2))
		fn(EdgeID(b*2 + 1))
	}
}

func (p *EdgePool[T]) count() int {
	n := 0
	for _, a := range p.alive {
		if a {
			n++
		}
	}
	return n * 2
}

func (p *EdgePool[T]) clear() {
	for b, alive := range p.alive {
		if !alive {
			continue
		}
		base := b * 2
		p.desc.destroy(p.records[base].payload)
		p.desc.destroy(p.records[base+1].payload)
	}
	p.records = nil
	p.alive = nil
	p.free = nil
}
