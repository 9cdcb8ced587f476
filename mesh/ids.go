package mesh

// EdgeID identifies one directed half-edge. Half-edges are allocated in
// co-resident twin pairs at adjacent indices, so for any live id its twin
// is id^1 — branch-free and requiring no stored field.
type EdgeID int32

// VertexID identifies a vertex: a 0-cell with exactly one representative
// outgoing half-edge.
type VertexID int32

// FaceID identifies a face: a 2-cell with exactly one representative
// bounding half-edge.
type FaceID int32

// NilEdge, NilVertex and NilFace are the sentinels returned by operators
// that fail before allocating the corresponding element kind, and by
// orbit walks that don't find what they're looking for.
const (
	NilEdge   EdgeID   = -1
	NilVertex VertexID = -1
	NilFace   FaceID   = -1
)
