package arbor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var leafUVs = [4][2]float64{{0, 1}, {0, 0}, {1, 0}, {1, 1}}

// emitLeaf appends one leaf quad hanging from origin along the local +Y
// axis. rotate90 turns the quad a quarter turn about its stem, which is how
// double leaves form a cross.
func (g *generator) emitLeaf(m *MeshBuffers, origin mgl64.Vec3, orientation Euler, rotate90 bool) {
	p := g.params
	base := uint32(m.VertexCount())

	size := p.Leaves.Size * (1 + spread(g.rng, p.Leaves.SizeVariance))
	// No leaf area before 75% maturity.
	size = math.Max(0, size*(p.Maturity-0.75)*4)
	w, l := size, 1.5*size

	q := orientation.Quat()
	if rotate90 {
		q = q.Mul(mgl64.QuatRotate(math.Pi/2, axisY))
	}

	corners := [4]mgl64.Vec3{
		{-w / 2, l, 0},
		{-w / 2, 0, 0},
		{w / 2, 0, 0},
		{w / 2, l, 0},
	}
	normal := q.Rotate(mgl64.Vec3{0, 0, 1})
	for i, c := range corners {
		m.addVertex(q.Rotate(c).Add(origin), normal, leafUVs[i][0], leafUVs[i][1])
	}
	m.addTriangle(base, base+1, base+2)
	m.addTriangle(base, base+2, base+3)
}
