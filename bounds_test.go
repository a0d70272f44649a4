package arbor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestBounds_Cone(t *testing.T) {
	tree := generate(t, calmParams())
	box := tree.Bounds()

	assert.False(t, box.Empty())
	assert.True(t, box[0].ApproxEqualThreshold(mgl64.Vec3{-1.5, 0, -1.5}, 1e-5), "%v", box[0])
	assert.True(t, box[1].ApproxEqualThreshold(mgl64.Vec3{1.5, 40, 1.5}, 1e-4), "%v", box[1])
	assert.InDelta(t, 20, box.Center().Y(), 1e-4)
}

func TestBounds_CoversEveryBranch(t *testing.T) {
	tree := generate(t, DefaultParams())
	box := tree.Bounds()

	tree.Walk(func(b *Branch) bool {
		inner := b.Bounds()
		for k := 0; k < 3; k++ {
			assert.LessOrEqual(t, box[0][k], inner[0][k])
			assert.GreaterOrEqual(t, box[1][k], inner[1][k])
		}
		return true
	})
}

func TestBounds_Empty(t *testing.T) {
	box := NewTree(DefaultParams()).Bounds()
	assert.True(t, box.Empty())
	assert.Equal(t, mgl64.Vec3{}, box.Size())

	var m MeshBuffers
	assert.True(t, m.ComputeAABB().Empty())
}
