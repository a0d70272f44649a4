package arbor

import (
	"bufio"
	"fmt"
	"io"
)

// WriteOBJ writes every non-empty branch and leaf buffer of tree as its own
// Wavefront OBJ object, named like the meshes registered by LoadTree.
func WriteOBJ(w io.Writer, tree *Tree) error {
	if tree.Trunk == nil {
		return fmt.Errorf("write obj: tree has not been generated")
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# arbor seed %d\n", tree.Params.Seed)
	fmt.Fprintf(bw, "# vertices %d triangles %d\n", tree.VertexCount(), tree.TriangleCount())

	// OBJ indices are 1-based and global to the file.
	offset := uint32(1)
	tree.Walk(func(b *Branch) bool {
		offset = writeOBJObject(bw, "BranchMesh"+b.ID, "branches", &b.Tube, offset)
		offset = writeOBJObject(bw, "LeafMesh"+b.ID, "leaves", &b.Leaves, offset)
		return true
	})
	return bw.Flush()
}

func writeOBJObject(w *bufio.Writer, name, material string, m *MeshBuffers, offset uint32) uint32 {
	if m.IsEmpty() {
		return offset
	}

	fmt.Fprintf(w, "o %s\nusemtl %s\n", name, material)
	for i := 0; i+2 < len(m.Positions); i += 3 {
		fmt.Fprintf(w, "v %g %g %g\n", m.Positions[i], m.Positions[i+1], m.Positions[i+2])
	}
	for i := 0; i+2 < len(m.Normals); i += 3 {
		fmt.Fprintf(w, "vn %g %g %g\n", m.Normals[i], m.Normals[i+1], m.Normals[i+2])
	}
	for i := 0; i+1 < len(m.UVs); i += 2 {
		fmt.Fprintf(w, "vt %g %g\n", m.UVs[i], m.UVs[i+1])
	}
	for t := 0; t+2 < len(m.Indices); t += 3 {
		a, b, c := m.Indices[t]+offset, m.Indices[t+1]+offset, m.Indices[t+2]+offset
		fmt.Fprintf(w, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}
	return offset + uint32(m.VertexCount())
}
