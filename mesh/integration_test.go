package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSquare grows a 4-vertex, 4-edge, 2-face square from a single
// dangling edge with two MakeVertexEdge calls and one closing
// MakeFaceEdge, exercising the operators against a larger orbit than the
// degenerate degree-1 case.
func buildSquare(t *testing.T) (m *Mesh[struct{}, struct{}, struct{}], verts []VertexID, faces []FaceID) {
	t.Helper()
	m = newTestMesh()

	e0, err := m.MakeEdge()
	require.NoError(t, err)
	v0, v1 := m.Org(e0), m.Dst(e0)
	f0 := m.LFace(e0)

	v2, e1, err := m.MakeVertexEdge(v1, f0, f0)
	require.NoError(t, err)
	require.NoError(t, m.Check())

	v3, _, err := m.MakeVertexEdge(v2, f0, f0)
	require.NoError(t, err)
	require.NoError(t, m.Check())

	// close the loop: connect v3 back to v0, splitting f0 into the
	// square's interior and its outer face
	f1, _, err := m.MakeFaceEdge(f0, v3, v0)
	require.NoError(t, err)
	require.NoError(t, m.Check())

	_ = e1
	return m, []VertexID{v0, v1, v2, v3}, []FaceID{f0, f1}
}

func TestBuildSquareHasExpectedCounts(t *testing.T) {
	m, verts, faces := buildSquare(t)

	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 2, m.FaceCount())
	assert.Equal(t, 8, m.EdgeCount())
	assert.Equal(t, 2, m.EulerCharacteristic())

	for _, v := range verts {
		assert.True(t, m.VertexLive(v))
	}
	for _, f := range faces {
		assert.True(t, m.FaceLive(f))
	}
}

func TestGrowThenShrinkReturnsToOriginalCounts(t *testing.T) {
	m := newTestMesh()

	e0, err := m.MakeEdge()
	require.NoError(t, err)
	v1 := m.Dst(e0)
	f0 := m.LFace(e0)

	baseV, baseE, baseF := m.VertexCount(), m.EdgeCount(), m.FaceCount()

	_, eNew, err := m.MakeVertexEdge(v1, f0, f0)
	require.NoError(t, err)

	require.NoError(t, m.KillVertexEdge(eNew))
	require.NoError(t, m.Check())

	assert.Equal(t, baseV, m.VertexCount())
	assert.Equal(t, baseE, m.EdgeCount())
	assert.Equal(t, baseF, m.FaceCount())
}

func TestClearDestroysEveryPayloadOnce(t *testing.T) {
	destroyedEdges, destroyedVerts, destroyedFaces := 0, 0, 0
	edgeDesc := Descriptor[int]{Destroy: func(int) { destroyedEdges++ }}
	faceDesc := Descriptor[int]{Destroy: func(int) { destroyedFaces++ }}
	vertexDesc := Descriptor[int]{Destroy: func(int) { destroyedVerts++ }}

	m := Init[int, int, int](edgeDesc, faceDesc, vertexDesc)
	_, err := m.MakeEdge()
	require.NoError(t, err)

	m.Clear()

	assert.Equal(t, 2, destroyedEdges)
	assert.Equal(t, 2, destroyedVerts)
	assert.Equal(t, 1, destroyedFaces)
	assert.Equal(t, 0, m.VertexCount())
	assert.Equal(t, 0, m.EdgeCount())
	assert.Equal(t, 0, m.FaceCount())
}

func TestDumpProducesThreeSections(t *testing.T) {
	m := newTestMesh()
	_, err := m.MakeEdge()
	require.NoError(t, err)

	out := m.Dump()
	assert.Contains(t, out, "edges:")
	assert.Contains(t, out, "faces:")
	assert.Contains(t, out, "vertices:")
}
