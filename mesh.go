package arbor

import (
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// MeshBuffers holds flat, GPU-ready vertex data for one surface.
// Positions and Normals carry 3 floats per vertex, UVs 2, Indices 3 per triangle.
type MeshBuffers struct {
	Positions []float32 `json:"positions"`
	Normals   []float32 `json:"normals"`
	UVs       []float32 `json:"uvs"`
	Indices   []uint32  `json:"indices"`
}

func (m *MeshBuffers) VertexCount() int {
	return len(m.Positions) / 3
}

func (m *MeshBuffers) TriangleCount() int {
	return len(m.Indices) / 3
}

func (m *MeshBuffers) IsEmpty() bool {
	return len(m.Positions) == 0
}

// Clone returns a deep copy that shares no backing arrays with m.
func (m *MeshBuffers) Clone() MeshBuffers {
	return MeshBuffers{
		Positions: slices.Clone(m.Positions),
		Normals:   slices.Clone(m.Normals),
		UVs:       slices.Clone(m.UVs),
		Indices:   slices.Clone(m.Indices),
	}
}

func (m *MeshBuffers) addVertex(p, n mgl64.Vec3, u, v float64) {
	m.Positions = append(m.Positions, float32(p[0]), float32(p[1]), float32(p[2]))
	m.Normals = append(m.Normals, float32(n[0]), float32(n[1]), float32(n[2]))
	m.UVs = append(m.UVs, float32(u), float32(v))
}

// duplicateVertex appends a copy of vertex i with new texture coordinates.
func (m *MeshBuffers) duplicateVertex(i uint32, u, v float32) {
	m.Positions = append(m.Positions, m.Positions[3*i:3*i+3]...)
	m.Normals = append(m.Normals, m.Normals[3*i:3*i+3]...)
	m.UVs = append(m.UVs, u, v)
}

func (m *MeshBuffers) addTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

func (m *MeshBuffers) position(i uint32) mgl64.Vec3 {
	return mgl64.Vec3{float64(m.Positions[3*i]), float64(m.Positions[3*i+1]), float64(m.Positions[3*i+2])}
}

// computeVertexNormals replaces Normals with area weighted averages of the
// faces touching each vertex. Vertices whose faces have no area keep the
// normal they already had.
func (m *MeshBuffers) computeVertexNormals() {
	acc := make([]mgl64.Vec3, m.VertexCount())
	for t := 0; t+2 < len(m.Indices); t += 3 {
		ia, ib, ic := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		a, b, c := m.position(ia), m.position(ib), m.position(ic)
		face := c.Sub(b).Cross(a.Sub(b))
		acc[ia] = acc[ia].Add(face)
		acc[ib] = acc[ib].Add(face)
		acc[ic] = acc[ic].Add(face)
	}

	for i, n := range acc {
		l := n.Len()
		if l == 0 || math.IsNaN(l) {
			continue
		}
		n = n.Mul(1 / l)
		m.Normals[3*i] = float32(n[0])
		m.Normals[3*i+1] = float32(n[1])
		m.Normals[3*i+2] = float32(n[2])
	}
}
