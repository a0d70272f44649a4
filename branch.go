package arbor

import (
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
)

// Branch is one node of a generated tree. It owns its tube and leaf
// geometry and its children; nothing is shared between nodes.
type Branch struct {
	ID       string
	ParentID string
	Index    int
	Level    int

	Origin      mgl64.Vec3
	Orientation Euler
	Length      float64
	Radius      float64

	Tube     MeshBuffers
	Leaves   MeshBuffers
	Children []*Branch
}

func branchID(parentID string, index int) string {
	return parentID + "-" + strconv.Itoa(index)
}

// VertexCount sums tube and leaf vertices of b and all its descendants.
func (b *Branch) VertexCount() int {
	n := b.Tube.VertexCount() + b.Leaves.VertexCount()
	for _, c := range b.Children {
		n += c.VertexCount()
	}
	return n
}

func (b *Branch) TriangleCount() int {
	n := b.Tube.TriangleCount() + b.Leaves.TriangleCount()
	for _, c := range b.Children {
		n += c.TriangleCount()
	}
	return n
}

// LeafCount returns the number of leaf quads carried by b alone.
func (b *Branch) LeafCount() int {
	return b.Leaves.VertexCount() / 4
}

// walk visits b and its descendants depth first. Returning false from fn
// skips the node's children.
func (b *Branch) walk(fn func(*Branch) bool) {
	if !fn(b) {
		return
	}
	for _, c := range b.Children {
		c.walk(fn)
	}
}

// generator carries the read-only parameters and the shared random stream
// through one generation pass.
type generator struct {
	params *Params
	rng    RandomSource
	log    Logger
}

// grow builds one branch and, recursively, everything that hangs off it.
// A branch whose own rings degenerate is dropped (nil). When a descendant
// fails, the branch is returned with whatever children completed, still
// index-valid, together with the error.
func (g *generator) grow(parentID string, index int, origin mgl64.Vec3, orientation Euler, length, radius float64, level int) (*Branch, error) {
	b := &Branch{
		ID:          branchID(parentID, index),
		ParentID:    parentID,
		Index:       index,
		Level:       level,
		Origin:      origin,
		Orientation: orientation,
		Length:      length,
		Radius:      radius,
	}

	sections, err := g.buildSections(b, origin, orientation, length, radius, level)
	if err != nil {
		g.log.Warnf("dropping branch %s: %v", b.ID, err)
		return nil, err
	}
	emitTubeIndices(&b.Tube, g.params.Geometry.Sections, g.params.Geometry.Segments)

	err = g.spawnChildren(b, sections, level, length)
	// Leaf normals are smoothed once every leaf of this branch exists.
	b.Leaves.computeVertexNormals()
	return b, err
}
