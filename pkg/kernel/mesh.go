package kernel

// Mesh is a triangle mesh, the interchange representation for
// mesh-based formats such as STL.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...]
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles
	Name     string    `json:"name"`     // solid name, if the source format carries one
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// AddTriangle appends one triangle with a shared per-vertex normal.
// Vertices are not deduplicated.
func (m *Mesh) AddTriangle(a, b, c, normal Point) {
	base := uint32(m.VertexCount())
	for _, p := range []Point{a, b, c} {
		m.Vertices = append(m.Vertices, float32(p.X), float32(p.Y), float32(p.Z))
		m.Normals = append(m.Normals, float32(normal.X), float32(normal.Y), float32(normal.Z))
	}
	m.Indices = append(m.Indices, base, base+1, base+2)
}

// Triangle returns the corner points of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c Point) {
	v := func(idx uint32) Point {
		j := int(idx) * 3
		return Point{
			X: float64(m.Vertices[j]),
			Y: float64(m.Vertices[j+1]),
			Z: float64(m.Vertices[j+2]),
		}
	}
	return v(m.Indices[i*3]), v(m.Indices[i*3+1]), v(m.Indices[i*3+2])
}
