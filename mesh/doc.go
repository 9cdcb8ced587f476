// Package mesh implements a half-edge / quad-edge planar subdivision and
// its Euler-operator algebra, after Guibas & Stolfi's quad-edge
// representation simplified to half-edges (no flip/rot — gbox orients all
// edges consistently and never needs one).
//
// A Mesh is three peer element pools — edges, vertices, faces — combined
// by a single primitive, Splice, on which every structural operator is
// built: MakeEdge, MakeLoopEdge, MakeVertexEdge, MakeFaceEdge and their
// inverses KillVertexEdge, KillFaceEdge. Every operator updates one or two
// orbits atomically and leaves the mesh satisfying the invariants checked
// by Mesh.Check:
//
//   - sym(sym(e)) == e, sym(e) != e
//   - the onext walk from any edge returns to it (origin orbit closure);
//     likewise the lnext walk (left-face orbit closure)
//   - every edge in an origin orbit shares Org; every edge in a left-face
//     orbit shares LFace
//   - sym(onext(lnext(e))) == e and lnext(sym(onext(e))) == e
//
// # Basic usage
//
//	m := mesh.Init[any, any, any](mesh.Descriptor[any]{}, mesh.Descriptor[any]{}, mesh.Descriptor[any]{})
//	e, err := m.MakeEdge()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(m.Org(e) != m.Dst(e))
//
// # Payloads
//
// Each element kind (edge, vertex, face) carries an opaque, independently
// typed payload. Descriptor[T] supplies the copy/destroy/format hooks for
// one kind; the zero Descriptor is valid and runs no hooks.
//
// # Concurrency
//
// A Mesh is not safe for concurrent mutation. Pin one Mesh to one
// goroutine; there are no suspension points and no operator takes a lock.
//
// # Debug checking
//
// Mesh.Check and Mesh.Dump walk the whole mesh and are intended to run at
// the boundary of every operator during testing. Build with the
// "gbrelease" tag to compile them out entirely (Check becomes a no-op
// that always returns nil, Dump becomes a no-op) for production builds
// where the O(V+E+F) walk is unwanted.
package mesh
