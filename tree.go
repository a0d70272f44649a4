package arbor

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Tree owns the trunk of a generated tree. Every call to Generate throws the
// previous branches away and grows a new set from Params.
type Tree struct {
	Params Params
	Trunk  *Branch

	rng RandomSource
	log Logger
}

type TreeOption func(*Tree)

func WithLogger(l Logger) TreeOption {
	return func(t *Tree) {
		if l != nil {
			t.log = l
		}
	}
}

// WithRandomSource replaces the default seeded source. Generate reseeds it
// with Params.Seed before every pass.
func WithRandomSource(src RandomSource) TreeOption {
	return func(t *Tree) {
		if src != nil {
			t.rng = src
		}
	}
}

func NewTree(params Params, opts ...TreeOption) *Tree {
	t := &Tree{
		Params: params,
		log:    NewNopLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.rng == nil {
		t.rng = NewSeededRandom(params.Seed)
	}
	return t
}

// Generate validates the parameters and regrows the whole tree.
//
// A *ConfigurationError leaves the tree empty. A *GeometryError leaves the
// branches that finished before the failure in place.
func (t *Tree) Generate() error {
	t.Trunk = nil

	params := t.Params
	if err := params.Validate(); err != nil {
		return err
	}

	t.rng.Reseed(params.Seed)
	gen := &generator{params: &params, rng: t.rng, log: t.log}
	trunk, err := gen.grow("", 0, mgl64.Vec3{}, Euler{}, params.Trunk.Length, params.Trunk.Radius, 1)
	t.Trunk = trunk
	if err != nil {
		t.log.Errorf("tree seed %d: %v", params.Seed, err)
		return fmt.Errorf("generate tree with seed %d: %w", params.Seed, err)
	}

	t.log.Debugf("tree seed %d: %d branches, %d leaves, %d vertices, %d triangles",
		params.Seed, t.BranchCount(), t.LeafCount(), t.VertexCount(), t.TriangleCount())
	return nil
}

func (t *Tree) VertexCount() int {
	if t.Trunk == nil {
		return 0
	}
	return t.Trunk.VertexCount()
}

func (t *Tree) TriangleCount() int {
	if t.Trunk == nil {
		return 0
	}
	return t.Trunk.TriangleCount()
}

// Walk visits every branch depth first, parents before children.
func (t *Tree) Walk(fn func(*Branch) bool) {
	if t.Trunk == nil {
		return
	}
	t.Trunk.walk(fn)
}

func (t *Tree) BranchCount() int {
	n := 0
	t.Walk(func(*Branch) bool {
		n++
		return true
	})
	return n
}

func (t *Tree) LeafCount() int {
	n := 0
	t.Walk(func(b *Branch) bool {
		n += b.LeafCount()
		return true
	})
	return n
}

// Branch looks a node up by ID.
func (t *Tree) Branch(id string) (*Branch, bool) {
	var found *Branch
	t.Walk(func(b *Branch) bool {
		if found != nil {
			return false
		}
		if b.ID == id {
			found = b
			return false
		}
		return true
	})
	return found, found != nil
}
