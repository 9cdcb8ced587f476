package mesh

// spliceEdges is the single combinator every structural operator is built
// from. On the origin orbits of a and b: if they already share an orbit,
// splice separates it into two (each retaining its edges in their
// original cyclic order); if they belong to different orbits, splice
// merges them into one. It is its own inverse: spliceEdges(a,b) twice is
// the identity. Splice never touches Org or LFace — consistency of those
// fields is the caller's responsibility.
func spliceEdges[T any](p *EdgePool[T], a, b EdgeID) {
	x := p.Onext(a)
	y := p.Onext(b)

	p.setOnext(a, y)
	p.setOnext(b, x)

	p.setOprev(x, b)
	p.setOprev(y, a)
}

// lnext returns the next half-edge counter-clockwise around LFace(e):
// oprev(sym(e)).
func lnext[T any](p *EdgePool[T], e EdgeID) EdgeID {
	return p.Oprev(p.Sym(e))
}

// lprev returns the previous half-edge counter-clockwise around LFace(e):
// sym(onext(e)).
func lprev[T any](p *EdgePool[T], e EdgeID) EdgeID {
	return p.Sym(p.Onext(e))
}

// orbitEdge walks the origin orbit of e via onext until it finds a
// half-edge whose left face is f, returning NilEdge if the orbit never
// touches f. This is the primitive MakeVertexEdge uses to locate the two
// boundary edges it splices against.
func orbitEdge[T any](p *EdgePool[T], e EdgeID, f FaceID) EdgeID {
	scan := e
	for {
		if p.LFace(scan) == f {
			return scan
		}
		scan = p.Onext(scan)
		if scan == e {
			return NilEdge
		}
	}
}

// orbitFaceVertex walks the left-face orbit of e via lnext until it finds
// a half-edge whose origin is v, returning NilEdge if the orbit never
// touches v. The dual of orbitEdge, used by MakeFaceEdge.
func orbitFaceVertex[T any](p *EdgePool[T], e EdgeID, v VertexID) EdgeID {
	scan := e
	for {
		if p.Org(scan) == v {
			return scan
		}
		scan = lnext(p, scan)
		if scan == e {
			return NilEdge
		}
	}
}

// orbitOrgSet walks the origin orbit of e, writing Org = v on every
// half-edge in it. Used after any splice that has merged or split origin
// orbits, to restore invariant 3 (origin consistency). Written
// process-then-advance so a singleton orbit still gets visited once.
func orbitOrgSet[T any](p *EdgePool[T], e EdgeID, v VertexID) {
	scan := e
	for {
		p.setOrg(scan, v)
		scan = p.Onext(scan)
		if scan == e {
			return
		}
	}
}

// orbitLFaceSet walks the left-face orbit of e via lnext, writing
// LFace = f on every half-edge in it. The source this module is grounded
// on left this as dead, commented-out code that (incorrectly) walked
// onext; a face's boundary is an lnext orbit, so that's what this walks.
func orbitLFaceSet[T any](p *EdgePool[T], e EdgeID, f FaceID) {
	scan := e
	for {
		p.setLFace(scan, f)
		scan = lnext(p, scan)
		if scan == e {
			return
		}
	}
}
