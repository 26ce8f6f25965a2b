package crystal

// Mesh is an indexed triangle mesh with the animation channels the
// renderer consumes. All buffers are float32, laid out flat:
// three floats per vertex position/normal, three indices per facet,
// one float per vertex for the scalar channels.
//
// OriginalPositions snapshots the post-deformation vertices so pulse
// animation always offsets the generated shape instead of re-deriving it
type Mesh struct {
	Positions         []float32
	Normals           []float32
	Indices           []uint32
	FacetNormals      []float32 // One normal per facet, flat shading
	PulsePhase        []float32 // Per vertex, radians
	BPMMultiplier     []float32 // Per vertex, 1.0 when BPM unknown
	OriginalPositions []float32
}

// VertexCount returns the number of unique vertices
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// FacetCount returns the number of triangles
func (m *Mesh) FacetCount() int {
	return len(m.Indices) / 3
}

// Dispose releases the buffers. Idempotent; a disposed mesh reports zero
// vertices and facets
func (m *Mesh) Dispose() {
	m.Positions = nil
	m.Normals = nil
	m.Indices = nil
	m.FacetNormals = nil
	m.PulsePhase = nil
	m.BPMMultiplier = nil
	m.OriginalPositions = nil
}

// Disposed reports whether the buffers were released
func (m *Mesh) Disposed() bool {
	return m.Positions == nil && m.Indices == nil
}
