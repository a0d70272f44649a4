package arbor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB is an axis aligned box, Min and Max inclusive. An empty box has
// Min greater than Max.
type AABB [2]mgl64.Vec3

func emptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{{inf, inf, inf}, {-inf, -inf, -inf}}
}

func (b AABB) Empty() bool {
	return b[0].X() > b[1].X()
}

func (b AABB) Size() mgl64.Vec3 {
	if b.Empty() {
		return mgl64.Vec3{}
	}
	return b[1].Sub(b[0])
}

func (b AABB) Center() mgl64.Vec3 {
	return b[0].Add(b[1]).Mul(0.5)
}

func (b *AABB) extend(p mgl64.Vec3) {
	b[0] = mgl64.Vec3{math.Min(b[0].X(), p.X()), math.Min(b[0].Y(), p.Y()), math.Min(b[0].Z(), p.Z())}
	b[1] = mgl64.Vec3{math.Max(b[1].X(), p.X()), math.Max(b[1].Y(), p.Y()), math.Max(b[1].Z(), p.Z())}
}

func (b *AABB) union(o AABB) {
	if o.Empty() {
		return
	}
	b.extend(o[0])
	b.extend(o[1])
}

func (m *MeshBuffers) ComputeAABB() AABB {
	box := emptyAABB()
	for i := 0; i+2 < len(m.Positions); i += 3 {
		box.extend(mgl64.Vec3{float64(m.Positions[i]), float64(m.Positions[i+1]), float64(m.Positions[i+2])})
	}
	return box
}

// Bounds covers the tube and leaves of b and every descendant.
func (b *Branch) Bounds() AABB {
	box := emptyAABB()
	b.walk(func(n *Branch) bool {
		box.union(n.Tube.ComputeAABB())
		box.union(n.Leaves.ComputeAABB())
		return true
	})
	return box
}

// Bounds is empty until the tree has been generated.
func (t *Tree) Bounds() AABB {
	if t.Trunk == nil {
		return emptyAABB()
	}
	return t.Trunk.Bounds()
}
