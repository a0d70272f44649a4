package arbor

import (
	"fmt"

	"github.com/google/uuid"
)

type AssetId string

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}

type MeshKind int

const (
	MeshKindBranch MeshKind = iota
	MeshKindLeaves
)

func (k MeshKind) String() string {
	if k == MeshKindLeaves {
		return "leaves"
	}
	return "branch"
}

// MeshAsset is a named buffer set handed over to a renderer. Its buffers
// are owned by the asset server and never alias a live Tree.
type MeshAsset struct {
	version  uint
	Name     string
	Kind     MeshKind
	Material AssetId
	Buffers  MeshBuffers
}

// MaterialAsset describes how a renderer should shade a mesh. Nothing here
// is interpreted by arbor; the values come straight from Params.
type MaterialAsset struct {
	version     uint
	Name        string
	Color       uint32
	FlatShading bool
	Textured    bool
	LeafType    LeafType
	Emissive    float64
	Opacity     float64
	AlphaTest   float64
	DoubleSided bool
	Transparent bool
}

// AssetServer keeps generated meshes until a renderer picks them up.
type AssetServer struct {
	meshes    map[AssetId]MeshAsset
	materials map[AssetId]MaterialAsset
}

func NewAssetServer() *AssetServer {
	return &AssetServer{
		meshes:    make(map[AssetId]MeshAsset),
		materials: make(map[AssetId]MaterialAsset),
	}
}

// TreeAssets maps branch IDs to the mesh assets registered for them.
type TreeAssets struct {
	BranchMaterial AssetId
	LeafMaterial   AssetId
	Branches       map[string]AssetId
	Leaves         map[string]AssetId
}

func (server *AssetServer) LoadMesh(name string, kind MeshKind, material AssetId, buffers MeshBuffers) AssetId {
	id := makeAssetId()
	server.meshes[id] = MeshAsset{
		version:  0,
		Name:     name,
		Kind:     kind,
		Material: material,
		Buffers:  buffers,
	}
	return id
}

func (server *AssetServer) CreateMaterial(material MaterialAsset) AssetId {
	id := makeAssetId()
	server.materials[id] = material
	return id
}

func (server *AssetServer) Mesh(id AssetId) (MeshAsset, bool) {
	m, ok := server.meshes[id]
	return m, ok
}

func (server *AssetServer) Material(id AssetId) (MaterialAsset, bool) {
	m, ok := server.materials[id]
	return m, ok
}

func (server *AssetServer) MeshCount() int {
	return len(server.meshes)
}

// Unload drops every mesh registered for a tree, and its materials.
func (server *AssetServer) Unload(assets TreeAssets) {
	for _, id := range assets.Branches {
		delete(server.meshes, id)
	}
	for _, id := range assets.Leaves {
		delete(server.meshes, id)
	}
	delete(server.materials, assets.BranchMaterial)
	delete(server.materials, assets.LeafMaterial)
}

// LoadTree registers one bark material, one leaf material and a mesh per
// non-empty buffer set of every branch.
func (server *AssetServer) LoadTree(tree *Tree) (TreeAssets, error) {
	if tree.Trunk == nil {
		return TreeAssets{}, fmt.Errorf("load tree: tree has not been generated")
	}

	p := tree.Params
	assets := TreeAssets{
		BranchMaterial: server.CreateMaterial(MaterialAsset{
			Name:        "branches",
			Color:       p.Trunk.Color,
			FlatShading: p.Trunk.FlatShading,
			Textured:    p.Trunk.Textured,
		}),
		LeafMaterial: server.CreateMaterial(MaterialAsset{
			Name:        "leaves",
			Color:       p.Leaves.Color,
			Textured:    true,
			LeafType:    p.Leaves.Type,
			Emissive:    p.Leaves.Emissive,
			Opacity:     p.Leaves.Opacity,
			AlphaTest:   p.Leaves.AlphaTest,
			DoubleSided: true,
			Transparent: true,
		}),
		Branches: make(map[string]AssetId),
		Leaves:   make(map[string]AssetId),
	}

	tree.Walk(func(b *Branch) bool {
		if !b.Tube.IsEmpty() {
			assets.Branches[b.ID] = server.LoadMesh("BranchMesh"+b.ID, MeshKindBranch, assets.BranchMaterial, b.Tube.Clone())
		}
		if !b.Leaves.IsEmpty() {
			assets.Leaves[b.ID] = server.LoadMesh("LeafMesh"+b.ID, MeshKindLeaves, assets.LeafMaterial, b.Leaves.Clone())
		}
		return true
	})
	return assets, nil
}

// CreateTreeMesh generates a tree from params and registers its meshes.
func (server *AssetServer) CreateTreeMesh(params Params, opts ...TreeOption) (*Tree, TreeAssets, error) {
	tree := NewTree(params, opts...)
	if err := tree.Generate(); err != nil {
		return tree, TreeAssets{}, err
	}
	assets, err := server.LoadTree(tree)
	return tree, assets, err
}
