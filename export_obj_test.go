package arbor

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteOBJ(t *testing.T) {
	p := DefaultParams()
	p.Seed = 21
	tree := generate(t, p)

	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, tree))

	counts := map[string]int{}
	var objects []string
	maxIndex := 0
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		counts[fields[0]]++
		switch fields[0] {
		case "o":
			objects = append(objects, fields[1])
		case "f":
			require.Len(t, fields, 4)
			for _, ref := range fields[1:] {
				var a, b, c int
				_, err := fmt.Sscanf(ref, "%d/%d/%d", &a, &b, &c)
				require.NoError(t, err)
				assert.Equal(t, a, b)
				assert.Equal(t, a, c)
				assert.GreaterOrEqual(t, a, 1)
				maxIndex = max(maxIndex, a)
			}
		}
	}
	require.NoError(t, scanner.Err())

	assert.Equal(t, tree.VertexCount(), counts["v"])
	assert.Equal(t, tree.VertexCount(), counts["vn"])
	assert.Equal(t, tree.VertexCount(), counts["vt"])
	assert.Equal(t, tree.TriangleCount(), counts["f"])
	assert.Equal(t, tree.VertexCount(), maxIndex)
	assert.Equal(t, "BranchMesh-0", objects[0])
	assert.Contains(t, objects, "LeafMesh-0-0-0")
	assert.Equal(t, counts["o"], counts["usemtl"])
}

func TestWriteOBJ_Header(t *testing.T) {
	tree := generate(t, calmParams())

	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, tree))
	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "# arbor seed 0", lines[0])
	assert.Equal(t, "# vertices 10 triangles 8", lines[1])
	assert.Equal(t, "o BranchMesh-0", lines[2])
	assert.Equal(t, "usemtl branches", lines[3])
}

func TestWriteOBJ_RequiresGeneratedTree(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteOBJ(&buf, NewTree(DefaultParams())))
	assert.Zero(t, buf.Len())
}
