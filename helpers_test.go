package arbor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

// calmParams returns a single-branch tree with every random perturbation
// switched off.
func calmParams() Params {
	p := DefaultParams()
	p.Maturity = 1
	p.Trunk.Flare = 0
	p.Branch.Levels = 1
	p.Branch.Taper = 0
	p.Branch.Twist = 0
	p.Branch.Gnarliness = 0
	p.Branch.Gnarliness1R = 0
	p.Branch.LengthVariance = 0
	p.Geometry.Sections = 1
	p.Geometry.Segments = 4
	p.Geometry.Randomization = 0
	p.Geometry.RadiusVariance = 0
	p.Geometry.LengthVariance = 0
	p.Leaves.MinCount = 0
	p.Leaves.MaxCount = 0
	p.Leaves.SizeVariance = 0
	p.Sun.Strength = 0
	return p
}

// constSource returns the same value for every draw.
type constSource struct {
	v     float64
	draws int
}

func (c *constSource) Random() float64 {
	c.draws++
	return c.v
}

func (c *constSource) RandomRange(magnitude, offset float64) float64 {
	c.draws++
	return offset + magnitude*c.v
}

func (c *constSource) Reseed(int64) { c.draws = 0 }

func generate(t *testing.T, p Params, opts ...TreeOption) *Tree {
	t.Helper()
	tree := NewTree(p, opts...)
	require.NoError(t, tree.Generate())
	require.NotNil(t, tree.Trunk)
	return tree
}

func vertexAt(m *MeshBuffers, i int) mgl64.Vec3 {
	return mgl64.Vec3{float64(m.Positions[3*i]), float64(m.Positions[3*i+1]), float64(m.Positions[3*i+2])}
}

func normalAt(m *MeshBuffers, i int) mgl64.Vec3 {
	return mgl64.Vec3{float64(m.Normals[3*i]), float64(m.Normals[3*i+1]), float64(m.Normals[3*i+2])}
}

func requireIndexValid(t *testing.T, tree *Tree) {
	t.Helper()
	tree.Walk(func(b *Branch) bool {
		for _, m := range []*MeshBuffers{&b.Tube, &b.Leaves} {
			require.Zero(t, len(m.Indices)%3, "branch %s", b.ID)
			require.Equal(t, len(m.Positions), len(m.Normals), "branch %s", b.ID)
			require.Equal(t, len(m.Positions)/3*2, len(m.UVs), "branch %s", b.ID)
			for _, idx := range m.Indices {
				require.Less(t, int(idx), m.VertexCount(), "branch %s", b.ID)
			}
		}
		return true
	})
}

func requireSeamContinuity(t *testing.T, tree *Tree) {
	t.Helper()
	p := tree.Params
	stride := p.Geometry.Segments + 1
	tree.Walk(func(b *Branch) bool {
		m := &b.Tube
		require.Equal(t, (p.Geometry.Sections+1)*stride, m.VertexCount(), "branch %s", b.ID)
		for ring := 0; ring <= p.Geometry.Sections; ring++ {
			first := ring * stride
			seam := first + p.Geometry.Segments
			require.Equal(t, m.Positions[3*first:3*first+3], m.Positions[3*seam:3*seam+3], "branch %s ring %d", b.ID, ring)
			require.Equal(t, m.Normals[3*first:3*first+3], m.Normals[3*seam:3*seam+3], "branch %s ring %d", b.ID, ring)
			require.Equal(t, float32(1), m.UVs[2*seam])
			require.Equal(t, float32(float64(ring)/float64(p.Geometry.Sections)), m.UVs[2*seam+1])
		}
		return true
	})
}

func requireLevelBound(t *testing.T, tree *Tree) {
	t.Helper()
	levels := tree.Params.Branch.Levels
	tree.Walk(func(b *Branch) bool {
		require.LessOrEqual(t, b.Level, levels, "branch %s", b.ID)
		if b.Level == levels {
			require.Empty(t, b.Children, "terminal branch %s has children", b.ID)
		} else {
			require.Zero(t, b.LeafCount(), "inner branch %s has leaves", b.ID)
		}
		for _, c := range b.Children {
			require.Equal(t, b.Level+1, c.Level)
			require.Equal(t, b.ID, c.ParentID)
		}
		return true
	})
}
