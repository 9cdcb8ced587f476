//go:build !gbrelease

package mesh

import (
	"fmt"
	"strings"
)

// Dump renders the mesh as indented text in three sections — edges,
// faces (each with its boundary walk), vertices (each with its orbit
// walk) — mirroring the debug trace gb_mesh_dump emits.
// Payloads are rendered through each pool's Descriptor.Format hook, or a
// generic fallback if none was supplied.
func (m *Mesh[E, V, F]) Dump() string {
	var b strings.Builder

	b.WriteString("edges:\n")
	eit := m.EdgeIter()
	for e, ok := eit.Next(); ok; e, ok = eit.Next() {
		fmt.Fprintf(&b, "    %s\n", m.edgeInfo(e))
	}

	b.WriteString("faces:\n")
	fit := m.FaceIter()
	for f, ok := fit.Next(); ok; f, ok = fit.Next() {
		fmt.Fprintf(&b, "    face: %d data: %s\n", f, m.faces.format(f))
		head := m.faces.edge(f)
		e := head
		for {
			fmt.Fprintf(&b, "        %s\n", m.edgeInfo(e))
			e = lnext(m.edges, e)
			if e == head {
				break
			}
		}
	}

	b.WriteString("vertices:\n")
	vit := m.VertexIter()
	for v, ok := vit.Next(); ok; v, ok = vit.Next() {
		fmt.Fprintf(&b, "    vertex: %d data: %s\n", v, m.vertices.format(v))
		head := m.vertices.edge(v)
		e := head
		for {
			fmt.Fprintf(&b, "        %s\n", m.edgeInfo(e))
			e = m.edges.Onext(e)
			if e == head {
				break
			}
		}
	}

	return b.String()
}

func (m *Mesh[E, V, F]) edgeInfo(e EdgeID) string {
	return fmt.Sprintf("edge: %d org: %d lface: %d data: %s", e, m.edges.Org(e), m.edges.LFace(e), m.edges.desc.format(m.edges.Data(e)))
}
